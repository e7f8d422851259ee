package game

import "fmt"

// Move is a board coordinate chosen by a player.
type Move struct {
	Row int
	Col int
}

// NoMove is returned where no coordinate applies, e.g. the value of a terminal search node.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("Row: %d, Col: %d", m.Row, m.Col)
}

// Player identifies one of the two seats in a game.
type Player int

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

// Other returns the opposing seat.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

type StateHash uint64

// View is the read-only access a move source gets to a game in progress. The engine hands
// out a copy, so changes made through it never reach the game being played.
type View interface {
	Board() *Board
	ActivePlayer() Player
	ActiveSymbol() rune
	OtherSymbol(symbol rune) rune
	IsLegalMove(row, col int, symbol rune) bool
	Successors(symbol rune) []Move
	HasMoreMoves() bool
	IsOver() bool
	Copy() *Othello
}

// Evaluate scores a position from self's point of view. Larger is better for self.
type Evaluate func(state *Othello, self rune) int
