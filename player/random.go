package player

import (
	"sync"

	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly chosen legal move.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// GetMove returns (0, 0) when the player to move has no legal move.
func (r *Random) GetMove(view game.View) game.Move {
	moves := view.Successors(view.ActiveSymbol())
	if len(moves) == 0 {
		return game.Move{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return moves[r.rng.Intn(len(moves))]
}
