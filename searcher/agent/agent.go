package agent

import (
	"sync"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type minimaxAgent struct {
	search *searcher.Minimax

	mu   sync.Mutex
	last metrics.SearchMetric
}

// NewMinimaxAgent returns a move source that plays the root move of a minimax search for the
// player to move.
func NewMinimaxAgent(search *searcher.Minimax) Agent {
	return &minimaxAgent{search: search}
}

func (a *minimaxAgent) GetMove(view game.View) game.Move {
	result, metric := a.search.Search(view.Copy(), view.ActiveSymbol())

	a.mu.Lock()
	a.last = metric
	a.mu.Unlock()

	return result.Move
}

func (a *minimaxAgent) LastMetric() metrics.SearchMetric {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.last
}
