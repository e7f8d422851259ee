package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// GetMove searches the position and returns the chosen coordinate
	GetMove(view game.View) game.Move
	// LastMetric returns the performance metrics (if collected) of the most recent search
	LastMetric() metrics.SearchMetric
}
