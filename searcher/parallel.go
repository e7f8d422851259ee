package searcher

import (
	"sync"

	"othello/game"
)

// bound is the root's alpha (when maximizing) or beta (when minimizing), shared by the
// goroutines searching root successors.
type bound struct {
	sync.Mutex
	maximize bool
	value    int
}

func (b *bound) load() int {
	b.Lock()
	defer b.Unlock()

	return b.value
}

func (b *bound) raise(v int) {
	b.Lock()
	defer b.Unlock()

	if better(b.maximize, v, b.value) {
		b.value = v
	}
}

// window returns the child search window for the current shared bound. It is widened by
// one so that a successor tying the best value found so far still gets an exact value,
// which keeps the first-successor tie-break identical to the sequential search.
func (b *bound) window() (alpha, beta int) {
	v := b.load()
	if b.maximize {
		if v == MinValue {
			return MinValue, MaxValue
		}
		return v - 1, MaxValue
	}
	if v == MaxValue {
		return MinValue, MaxValue
	}
	return MinValue, v + 1
}

// parallel fans the root successors out over a pool of goroutines. Each successor is
// searched on its own copy of the state; results are combined in successor order.
func (s *search) parallel(root *game.Othello, maximize bool, goroutines int) Result {
	if root.IsOver() {
		move, value := s.minimax(root, maximize, 0, MinValue, MaxValue)
		return Result{Move: move, Value: value}
	}

	turn := s.turn(maximize)
	successors := root.Successors(turn)
	if len(successors) <= 1 {
		// Nothing to fan out: a forced move or a pass.
		move, value := s.minimax(root, maximize, 0, MinValue, MaxValue)
		return Result{Move: move, Value: value}
	}

	s.metrics.AddNode() // The root itself
	shared := &bound{maximize: maximize, value: worst(maximize)}
	values := make([]int, len(successors))

	task := make(chan int, len(successors))
	for i := range successors {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(goroutines, len(successors)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				move := successors[i]
				child := root.Copy()
				child.PlayMove(move.Row, move.Col, turn)

				alpha, beta := MinValue, MaxValue
				if s.pruning {
					alpha, beta = shared.window()
				}
				_, value := s.minimax(child, !maximize, 1, alpha, beta)
				values[i] = value
				shared.raise(value)
			}
		}()
	}
	wg.Wait()

	best := Result{Move: successors[0], Value: values[0]}
	for i, value := range values[1:] {
		if better(maximize, value, best.Value) {
			best = Result{Move: successors[i+1], Value: value}
		}
	}
	return best
}
