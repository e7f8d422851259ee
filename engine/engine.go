package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Engine drives one game between two move sources.
type Engine interface {
	// Run plays until the game is over and reports the result
	Run() Result
}

// TurnOutcome is the state of the turn state machine.
type TurnOutcome int

const (
	// AwaitingMove: the active player's source is being asked for a coordinate.
	AwaitingMove TurnOutcome = iota
	// MoveApplied: a legal move was played and the turn passed.
	MoveApplied
	// NoLegalMove: the active player could not move and passed.
	NoLegalMove
)

func (t TurnOutcome) String() string {
	switch t {
	case AwaitingMove:
		return "awaiting-move"
	case MoveApplied:
		return "move-applied"
	case NoLegalMove:
		return "no-legal-move"
	default:
		return "unknown"
	}
}

// Update is one applied move.
type Update struct {
	Player  game.Player
	Move    game.Move
	Flipped int
	Hash    game.StateHash
}

type Result struct {
	Winner      int // 0 for a tie
	Summary     string
	Moves       int
	Passes      int
	Game        metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}
