package searcher

import (
	"othello/game"
)

// Bounds on any backed-up value. Disc differences never come close.
const (
	MaxValue = 1 << 30
	MinValue = -MaxValue
)

// Unlimited searches until every line reaches a terminal position.
const Unlimited = 0

// Result is the outcome of a search: the chosen root move and its backed-up value from the
// searching player's point of view. Move is game.NoMove when no move applies at the root.
type Result struct {
	Move  game.Move
	Value int
}

// better reports whether v improves on best for the side to move. Ties never improve, so
// the first successor in enumeration order wins.
func better(maximize bool, v, best int) bool {
	if maximize {
		return v > best
	}
	return v < best
}

func worst(maximize bool) int {
	if maximize {
		return MinValue
	}
	return MaxValue
}
