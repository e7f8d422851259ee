package agent

import (
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func TestMinimaxAgent(t *testing.T) {
	t.Run("plays the searched root move", func(t *testing.T) {
		state := game.NewOthello('X', 'O', 4, 4)
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithPruning()))

		move := a.GetMove(state)

		require.Equal(t, game.Move{Row: 0, Col: 2}, move, "First of the four tied openings")
		require.True(t, state.IsLegalMove(move.Row, move.Col, 'X'))
	})

	t.Run("searches for the player to move", func(t *testing.T) {
		state := game.NewOthello('X', 'O', 4, 4)
		state.PlayMove(0, 2, 'X')
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithPruning()))

		move := a.GetMove(state)

		require.True(t, state.IsLegalMove(move.Row, move.Col, 'O'), "The reply should be legal for O")
	})

	t.Run("does not touch the game", func(t *testing.T) {
		state := game.NewOthello('X', 'O', 5, 5)
		before := state.Hash()

		NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(3))).GetMove(state)

		require.Equal(t, before, state.Hash())
	})

	t.Run("records the last search", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()))
		require.Zero(t, a.LastMetric().Nodes, "Nothing searched yet")

		a.GetMove(game.NewOthello('X', 'O', 5, 5))

		metric := a.LastMetric()
		require.Equal(t, 5, metric.Nodes)
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 3, metric.Value)
	})
}
