package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpening() *Othello {
	return NewOthello('X', 'O', 4, 4)
}

func cell(t *testing.T, o *Othello, row, col int) rune {
	t.Helper()
	symbol, _ := o.Board().Get(row, col)
	return symbol
}

func TestNewOthello(t *testing.T) {
	t.Run("seeds the standard opening", func(t *testing.T) {
		o := newOpening()

		require.Equal(t, 'X', cell(t, o, 1, 1))
		require.Equal(t, 'X', cell(t, o, 2, 2))
		require.Equal(t, 'O', cell(t, o, 2, 1))
		require.Equal(t, 'O', cell(t, o, 1, 2))
		require.Equal(t, 4, o.Board().Occupied())
		require.Equal(t, PlayerOne, o.ActivePlayer())
		require.Equal(t, 'X', o.ActiveSymbol())
	})

	t.Run("rectangular boards seed around the centre", func(t *testing.T) {
		o := NewOthello('X', 'O', 6, 8)

		require.Equal(t, 'X', cell(t, o, 2, 3))
		require.Equal(t, 'X', cell(t, o, 3, 4))
		require.Equal(t, 'O', cell(t, o, 3, 3))
		require.Equal(t, 'O', cell(t, o, 2, 4))
	})

	t.Run("rejects invalid setups", func(t *testing.T) {
		require.Panics(t, func() { NewOthello('X', 'X', 4, 4) }, "Symbols must differ")
		require.Panics(t, func() { NewOthello('X', Empty, 4, 4) }, "Empty symbol is reserved")
		require.Panics(t, func() { NewOthello('X', 'O', 1, 4) }, "Board must fit the opening")
	})

	t.Run("rejects boards holding a third symbol", func(t *testing.T) {
		b := NewBoardFromRows("XZ", "OX")
		require.Panics(t, func() { NewOthelloFromBoard(b, 'X', 'O', PlayerOne) })
	})
}

func TestSymbols(t *testing.T) {
	o := newOpening()

	require.Equal(t, 'O', o.OtherSymbol('X'))
	require.Equal(t, 'X', o.OtherSymbol('O'))
	require.Panics(t, func() { o.OtherSymbol('Z') }, "Unregistered symbols are a programming error")

	p, ok := o.PlayerFor('O')
	require.True(t, ok)
	require.Equal(t, PlayerTwo, p)
	_, ok = o.PlayerFor('Z')
	require.False(t, ok)

	o.ChangeActivePlayer()
	require.Equal(t, PlayerTwo, o.ActivePlayer())
	require.Equal(t, 2, o.ActiveNumber())
	require.Equal(t, 'O', o.ActiveSymbol())
}

func TestIsLegalMove(t *testing.T) {
	t.Run("four opening moves for player one", func(t *testing.T) {
		o := newOpening()

		require.Equal(t, []Move{{0, 2}, {1, 3}, {2, 0}, {3, 1}}, o.Successors('X'))
	})

	t.Run("legality follows the placing symbol, not the active player", func(t *testing.T) {
		o := newOpening()
		require.Equal(t, PlayerOne, o.ActivePlayer())

		require.Equal(t, []Move{{0, 1}, {1, 0}, {2, 3}, {3, 2}}, o.Successors('O'))
	})

	t.Run("occupied and out of bounds cells are never legal", func(t *testing.T) {
		o := newOpening()

		for _, symbol := range []rune{'X', 'O'} {
			for _, m := range []Move{{1, 1}, {2, 2}, {1, 2}, {2, 1}, {-1, 0}, {0, -1}, {4, 0}, {0, 4}, {9, 9}} {
				require.False(t, o.IsLegalMove(m.Row, m.Col, symbol), "%c at %v", symbol, m)
			}
		}
	})

	t.Run("a gap breaks the outflank", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			".....",
			".....",
			"XO.OX",
			".....",
			".....",
		), 'X', 'O', PlayerOne)

		require.False(t, o.IsLegalMove(2, 2, 'O'), "O next to O captures nothing")
		require.True(t, o.IsLegalMove(2, 2, 'X'), "X outflanks both single O cells")
	})

	t.Run("running off the board is not an outflank", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"...",
			"OO.",
			"...",
		), 'X', 'O', PlayerOne)

		require.False(t, o.IsLegalMove(1, 2, 'X'), "West run of O ends at the board edge")
	})
}

func TestCheckEndpoint(t *testing.T) {
	o := NewOthelloFromBoard(NewBoardFromRows(
		"X...",
		"O...",
		"O...",
		"....",
	), 'X', 'O', PlayerOne)

	require.True(t, o.CheckEndpoint(0, 0, 'X', N), "Two O cells then X")
	require.False(t, o.CheckEndpoint(0, 0, 'O', N), "Own cell first is not a capture")
	require.False(t, o.CheckEndpoint(0, 0, 'X', E), "Empty neighbour")
	require.False(t, o.CheckEndpoint(0, 0, 'X', S), "Underflow")
	require.False(t, o.CheckEndpoint(2, 0, 'X', N), "Adjacent own cell captures nothing")
	require.False(t, o.CheckEndpoint(3, 0, 'X', N), "Walk leaves the board")
}

func TestFlipPieces(t *testing.T) {
	t.Run("flips every outflanked line", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"X.X.X",
			".OOO.",
			"XO.OX",
			".OOO.",
			"X.X.X",
		), 'X', 'O', PlayerOne)

		flipped := o.PlayMove(2, 2, 'X')

		require.Equal(t, 8, flipped)
		require.Equal(t, 17, o.Score('X'))
		require.Equal(t, 0, o.Score('O'))
	})

	t.Run("stops at the first own cell", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"......",
			".OXOOX",
			"......",
		), 'X', 'O', PlayerOne)

		flipped := o.PlayMove(1, 0, 'X')

		require.Equal(t, 1, flipped)
		require.Equal(t, 'X', cell(t, o, 1, 1))
		require.Equal(t, 'O', cell(t, o, 1, 3), "Cells beyond the first X keep their owner")
		require.Equal(t, 'O', cell(t, o, 1, 4), "Cells beyond the first X keep their owner")
	})
}

func TestPlayMove(t *testing.T) {
	t.Run("opening line from the worked example", func(t *testing.T) {
		o := newOpening()

		require.True(t, o.IsLegalMove(3, 1, 'X'))
		flipped := o.PlayMove(3, 1, 'X')
		require.Equal(t, 1, flipped)
		require.Equal(t, 4, o.Score('X'))
		require.Equal(t, 1, o.Score('O'))
		require.Equal(t, PlayerTwo, o.ActivePlayer())

		require.True(t, o.IsLegalMove(3, 0, 'O'))
		flipped = o.PlayMove(3, 0, 'O')
		require.Equal(t, 1, flipped)
		require.Equal(t, 3, o.Score('X'))
		require.Equal(t, 3, o.Score('O'))
		require.Equal(t, 'O', cell(t, o, 2, 1))
		require.Equal(t, PlayerOne, o.ActivePlayer())
	})

	t.Run("occupancy grows by exactly one per move", func(t *testing.T) {
		o := NewOthello('X', 'O', 6, 6)
		for !o.IsOver() {
			symbol := o.ActiveSymbol()
			moves := o.Successors(symbol)
			require.NotEmpty(t, moves)

			before := o.Board().Occupied()
			flipped := o.PlayMove(moves[0].Row, moves[0].Col, symbol)
			require.GreaterOrEqual(t, flipped, 1, "A legal move always flips")
			require.Equal(t, before+1, o.Board().Occupied())
		}
	})

	t.Run("unregistered symbol panics", func(t *testing.T) {
		o := newOpening()
		require.Panics(t, func() { o.PlayMove(0, 2, 'Z') })
	})
}

func TestCopy(t *testing.T) {
	o := newOpening()
	clone := o.Copy()

	clone.PlayMove(3, 1, 'X')

	require.Equal(t, 4, o.Board().Occupied(), "Playing on a copy should not touch the original")
	require.Equal(t, PlayerOne, o.ActivePlayer())
	require.Equal(t, 5, clone.Board().Occupied())
	require.NotEqual(t, o.Hash(), clone.Hash())
}

func TestBoardSnapshot(t *testing.T) {
	o := newOpening()

	snapshot := o.Board()
	snapshot.Set(0, 0, 'O')

	require.True(t, o.Board().IsEmpty(0, 0), "Board() should hand out a copy")
}

func TestHasMoreMoves(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"XXOO",
			"XXOO",
			"OOXX",
			"OOXX",
		), 'X', 'O', PlayerOne)

		require.True(t, o.Board().IsFull())
		require.False(t, o.HasMoreMoves())
		require.False(t, o.HasAnyMoves())
		require.True(t, o.IsOver())
	})

	t.Run("matches a scan of every cell", func(t *testing.T) {
		o := newOpening()
		for !o.IsOver() {
			x := len(o.Successors('X')) > 0
			y := len(o.Successors('O')) > 0
			require.Equal(t, x && y, o.HasMoreMoves())
			symbol := o.ActiveSymbol()
			m := o.Successors(symbol)[0]
			o.PlayMove(m.Row, m.Col, symbol)
		}
		require.False(t, len(o.Successors('X')) > 0 && len(o.Successors('O')) > 0)
	})
}

func blockedPosition(options ...Option) *Othello {
	// O has no legal move; X can still take (0, 3).
	return NewOthelloFromBoard(NewBoardFromRows(
		"XXXX",
		"XXXX",
		"XXXO",
		"....",
	), 'X', 'O', PlayerTwo, options...)
}

func TestEndRule(t *testing.T) {
	t.Run("default ends when either player is blocked", func(t *testing.T) {
		o := blockedPosition()

		require.False(t, o.PlayerHasMoreMoves(PlayerTwo))
		require.True(t, o.PlayerHasMoreMoves(PlayerOne))
		require.False(t, o.HasMoreMoves())
		require.True(t, o.HasAnyMoves())
		require.True(t, o.IsOver())
	})

	t.Run("both-blocked rule lets the game continue", func(t *testing.T) {
		o := blockedPosition(WithEndRule(EndWhenBothBlocked))

		require.Equal(t, EndWhenBothBlocked, o.EndRule())
		require.False(t, o.IsOver())

		o.ChangeActivePlayer()
		o.PlayMove(0, 3, 'X')
		require.True(t, o.IsOver())
		require.Equal(t, 1, o.WinnerNumber())
	})

	t.Run("copy keeps the rule", func(t *testing.T) {
		o := blockedPosition(WithEndRule(EndWhenBothBlocked))
		require.Equal(t, EndWhenBothBlocked, o.Copy().EndRule())
	})
}

func TestWinner(t *testing.T) {
	t.Run("no winner while play continues", func(t *testing.T) {
		_, over := newOpening().Winner()
		require.False(t, over)
	})

	t.Run("more cells wins", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"XXXX",
			"XXXX",
			"XXOO",
			"OOOO",
		), 'X', 'O', PlayerOne)

		result, over := o.Winner()
		require.True(t, over)
		assert.Equal(t, "Player 1 wins with 10 points!", result)
		assert.Equal(t, 1, o.WinnerNumber())
	})

	t.Run("player two", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"OOOO",
			"OOOO",
			"OOXX",
			"XXXX",
		), 'X', 'O', PlayerOne)

		result, _ := o.Winner()
		assert.Equal(t, "Player 2 wins with 10 points!", result)
		assert.Equal(t, 2, o.WinnerNumber())
	})

	t.Run("equal counts tie", func(t *testing.T) {
		o := NewOthelloFromBoard(NewBoardFromRows(
			"XXOO",
			"XXOO",
			"OOXX",
			"OOXX",
		), 'X', 'O', PlayerOne)

		result, over := o.Winner()
		require.True(t, over)
		assert.Equal(t, "It's a tie!", result)
		assert.Equal(t, 0, o.WinnerNumber())
	})
}

func TestDiscDifference(t *testing.T) {
	o := NewOthelloFromBoard(NewBoardFromRows(
		"XXXX",
		"XXXX",
		"XXOO",
		"OOOO",
	), 'X', 'O', PlayerOne)

	require.Equal(t, 4, DiscDifference(o, 'X'))
	require.Equal(t, -4, DiscDifference(o, 'O'), "Utility should be antisymmetric")
	require.Equal(t, 0, DiscDifference(newOpening(), 'X'))
}

func TestOthelloString(t *testing.T) {
	o := newOpening()

	require.Equal(t, "Player 1 (X) score: 2\nPlayer 2 (O) score: 2\n\n"+
		"3:| . . . .\n"+
		"2:| . O X .\n"+
		"1:| . X O .\n"+
		"0:| . . . .\n"+
		"   ---------\n"+
		"    0 1 2 3", o.String())
}
