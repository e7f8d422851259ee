package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax chooses moves by exhaustive game-tree search, optionally with alpha-beta
// pruning, a depth limit and a parallel fan-out over the root successors.
type Minimax struct {
	depth          int
	pruning        bool
	goroutines     int
	transpositions bool
	evaluate       game.Evaluate
	metrics        metrics.Collector
}

// WithDepth limits the search to depth plies. Positions at the limit are scored with the
// evaluation function.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithPruning() Option {
	return func(m *Minimax) {
		m.pruning = true
	}
}

// WithGoroutines searches the root successors on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

// WithTranspositions remembers exact values of repeated positions. It has no effect when
// pruning is enabled.
func WithTranspositions() Option {
	return func(m *Minimax) {
		m.transpositions = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      Unlimited,
		goroutines: 1,
		evaluate:   game.DiscDifference,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Pruning() bool {
	return m.pruning
}

func (m *Minimax) Goroutines() int {
	return m.goroutines
}

// Search finds the best move for self in state. The state is never modified: every
// explored position is a deep copy. The root maximizes when self is the player to move.
func (m *Minimax) Search(state *game.Othello, self rune) (Result, metrics.SearchMetric) {
	s := &search{
		self:     self,
		other:    state.OtherSymbol(self),
		depth:    m.depth,
		pruning:  m.pruning,
		evaluate: m.evaluate,
		metrics:  m.metrics,
	}
	if m.transpositions && !m.pruning {
		s.cache = newCache()
	}

	m.metrics.Start(m.goroutines, m.depth, m.pruning)

	root := state.Copy()
	maximize := root.ActiveSymbol() == self

	var result Result
	if m.goroutines > 1 {
		result = s.parallel(root, maximize, m.goroutines)
	} else {
		move, value := s.minimax(root, maximize, 0, MinValue, MaxValue)
		result = Result{Move: move, Value: value}
	}

	metric := m.metrics.Complete(result.Value)
	log.Debug().
		Str("self", string(self)).
		Int("row", result.Move.Row).
		Int("col", result.Move.Col).
		Int("value", result.Value).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return result, metric
}

// search holds the fixed parameters of one Search call.
type search struct {
	self     rune
	other    rune
	depth    int
	pruning  bool
	evaluate game.Evaluate
	cache    *cache
	metrics  metrics.Collector
}

// turn returns the symbol placing a piece at a node.
func (s *search) turn(maximize bool) rune {
	if maximize {
		return s.self
	}
	return s.other
}

// minimax returns the best successor of state and its backed-up value. When maximizing,
// self is to move; otherwise the opponent is. alpha and beta are ignored without pruning.
func (s *search) minimax(state *game.Othello, maximize bool, ply int, alpha, beta int) (game.Move, int) {
	s.metrics.AddNode()

	if state.IsOver() {
		return game.NoMove, game.DiscDifference(state, s.self)
	}
	if s.depth != Unlimited && ply >= s.depth {
		return game.NoMove, s.evaluate(state, s.self)
	}

	turn := s.turn(maximize)
	successors := state.Successors(turn)

	// The game is not over but this side cannot move: the other side moves instead,
	// without consuming a ply.
	if len(successors) == 0 {
		if !state.SymbolHasMoreMoves(s.turn(!maximize)) {
			panic("no legal move for either player in a position that is not over")
		}
		passed := state.Copy()
		passed.ChangeActivePlayer()
		_, value := s.minimax(passed, !maximize, ply, alpha, beta)
		return game.NoMove, value
	}

	// Only values matter below the root, so cached positions skip the move.
	cached := s.cache != nil && ply > 0
	var key cacheKey
	if cached {
		key = cacheKey{hash: state.Hash(), maximize: maximize}
		if s.depth != Unlimited {
			key.remaining = s.depth - ply
		}
		if value, ok := s.cache.get(key); ok {
			s.metrics.AddCacheHit()
			return game.NoMove, value
		}
	}

	best := worst(maximize)
	bestMove := game.NoMove
	for _, move := range successors {
		child := state.Copy()
		child.PlayMove(move.Row, move.Col, turn)
		_, value := s.minimax(child, !maximize, ply+1, alpha, beta)

		if bestMove == game.NoMove || better(maximize, value, best) {
			best = value
			bestMove = move
		}

		if s.pruning {
			if maximize {
				alpha = max(alpha, best)
			} else {
				beta = min(beta, best)
			}
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
	}

	if cached {
		s.cache.put(key, best)
	}
	return bestMove, best
}
