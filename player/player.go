package player

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MoveSource chooses a coordinate for the player to move. The move need not be legal: the
// engine validates it and asks again.
type MoveSource interface {
	GetMove(view game.View) game.Move
}

// Measured is implemented by move sources that search, so the engine can record what each
// move cost.
type Measured interface {
	LastMetric() metrics.SearchMetric
}
