package engine

import (
	"fmt"
	"io"
	"strings"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const banner = "================================"

type Option func(e *LocalEngine)

// WithOutput writes turn announcements and the final result to w.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.out = w
	}
}

// WithRender also prints the scores and the board before every turn. It needs WithOutput.
func WithRender() Option {
	return func(e *LocalEngine) {
		e.render = true
	}
}

func WithGameID(id string) Option {
	return func(e *LocalEngine) {
		e.id = id
	}
}

type LocalEngine struct {
	id      string
	state   *game.Othello
	sources [2]player.MoveSource
	out     io.Writer
	render  bool

	outcome     TurnOutcome
	history     []Update
	moveMetrics []metrics.MoveMetric
	passes      int
}

// NewLocalEngine runs state with sources[0] playing for player one and sources[1] for player
// two. The engine owns state from here on.
func NewLocalEngine(state *game.Othello, sources [2]player.MoveSource, options ...Option) *LocalEngine {
	if sources[0] == nil || sources[1] == nil {
		panic("need a move source for each player")
	}

	e := &LocalEngine{
		id:      uuid.NewString(),
		state:   state,
		sources: sources,
		out:     io.Discard,
		outcome: AwaitingMove,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) ID() string {
	return e.id
}

// State returns a copy of the game in its current position.
func (e *LocalEngine) State() *game.Othello {
	return e.state.Copy()
}

func (e *LocalEngine) History() []Update {
	return append([]Update(nil), e.history...)
}

// Outcome is the result of the most recent NextTurn, AwaitingMove before the first.
func (e *LocalEngine) Outcome() TurnOutcome {
	return e.outcome
}

// NextTurn plays one turn for the active player. The source is asked until it returns a
// legal move; a player without any legal move passes instead. Either way the turn goes to
// the other player.
func (e *LocalEngine) NextTurn() TurnOutcome {
	e.outcome = AwaitingMove
	if e.render {
		fmt.Fprintln(e.out, e.state)
	}

	p := e.state.ActivePlayer()
	symbol := e.state.ActiveSymbol()
	fmt.Fprintf(e.out, "Player %d (%c) move:\n", p, symbol)

	source := e.sources[p-1]
	for e.state.PlayerHasMoreMoves(p) {
		started := time.Now()
		move := source.GetMove(e.state.Copy())
		if !e.state.IsLegalMove(move.Row, move.Col, symbol) {
			log.Warn().Str("game", e.id).Msgf("player %d tried illegal move %v", p, move)
			fmt.Fprintln(e.out, "Invalid move.")
			continue
		}

		fmt.Fprintf(e.out, "[Selected] %v\n", move)
		flipped := e.state.PlayMove(move.Row, move.Col, symbol)
		e.history = append(e.history, Update{
			Player:  p,
			Move:    move,
			Flipped: flipped,
			Hash:    e.state.Hash(),
		})

		moveMetric := metrics.MoveMetric{
			Step:    len(e.history),
			Player:  int(p),
			Row:     move.Row,
			Col:     move.Col,
			Flipped: flipped,
		}
		if measured, ok := source.(player.Measured); ok {
			moveMetric.SearchMetric = measured.LastMetric()
		} else {
			moveMetric.SearchMetric.Duration = time.Since(started)
		}
		e.moveMetrics = append(e.moveMetrics, moveMetric)

		log.Debug().Str("game", e.id).Msgf("player %d played %v flipping %d", p, move, flipped)
		e.outcome = MoveApplied
		return e.outcome
	}

	fmt.Fprintf(e.out, "Couldn't find valid move for Player %d (%c)\n", p, symbol)
	log.Debug().Str("game", e.id).Msgf("player %d passes", p)
	e.state.ChangeActivePlayer()
	e.passes++
	e.outcome = NoLegalMove
	return e.outcome
}

// Run plays turns until the game is over. Two passes in a row also stop the game, since
// neither player can make progress.
func (e *LocalEngine) Run() Result {
	startTime := time.Now()
	starting := e.state.ActiveNumber()
	log.Info().Str("game", e.id).Msgf("player %d is starting", starting)

	failures := 0
	for !e.state.IsOver() {
		if e.NextTurn() == NoLegalMove {
			failures++
		} else {
			failures = 0
		}
		if failures >= 2 {
			log.Warn().Str("game", e.id).Msg("both players failed to play")
			break
		}
	}

	summary, ok := e.state.Winner()
	if !ok {
		summary = "The game ended with more moves left."
	}
	fmt.Fprintf(e.out, "\n%s\n%s\n%s\n\nBoard: \n%s\n", banner, summary, banner, e.state)

	endTime := time.Now()
	p1, p2 := e.state.SymbolFor(game.PlayerOne), e.state.SymbolFor(game.PlayerTwo)
	result := Result{
		Winner:  e.state.WinnerNumber(),
		Summary: summary,
		Moves:   len(e.history),
		Passes:  e.passes,
		Game: metrics.GameMetric{
			GameID:         e.id,
			StartingPlayer: starting,
			Winner:         e.state.WinnerNumber(),
			Scores:         [2]int{e.state.Score(p1), e.state.Score(p2)},
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     len(e.history),
			Passes:         e.passes,
		},
		MoveMetrics: e.moveMetrics,
	}

	log.Info().Str("game", e.id).Msgf("%s (%d moves, %d passes)", strings.TrimSuffix(summary, "!"), result.Moves, result.Passes)
	return result
}
