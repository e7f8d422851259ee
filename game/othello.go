package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// EndRule decides when a game is over.
type EndRule int

const (
	// EndWhenEitherBlocked ends the game as soon as one player has no legal move.
	EndWhenEitherBlocked EndRule = iota
	// EndWhenBothBlocked lets a blocked player pass and ends the game only when neither
	// player can move (tournament Othello).
	EndWhenBothBlocked
)

func (r EndRule) String() string {
	switch r {
	case EndWhenEitherBlocked:
		return "either-blocked"
	case EndWhenBothBlocked:
		return "both-blocked"
	default:
		return fmt.Sprintf("EndRule(%d)", int(r))
	}
}

type Option func(o *Othello)

func WithEndRule(rule EndRule) Option {
	return func(o *Othello) {
		o.rule = rule
	}
}

// Othello is the rules engine: a board, two player symbols and whose turn it is.
// The only way to change occupancy is PlayMove.
type Othello struct {
	board  *Board
	p1     rune
	p2     rune
	active Player
	rule   EndRule
}

// NewOthello creates a game on a rows x cols board seeded with the standard opening:
// p1 on the two central cells of one diagonal, p2 on the other two. Player one moves first.
func NewOthello(p1, p2 rune, rows, cols int, options ...Option) *Othello {
	if p1 == p2 {
		panic(fmt.Sprintf("players must use distinct symbols, both are %q", p1))
	}
	if p1 == Empty || p2 == Empty {
		panic("players cannot use the empty symbol")
	}
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("board must be at least 2x2, got %dx%d", rows, cols))
	}

	board := NewBoard(rows, cols)
	board.Set(rows/2-1, cols/2-1, p1)
	board.Set(rows/2, cols/2, p1)
	board.Set(rows/2, cols/2-1, p2)
	board.Set(rows/2-1, cols/2, p2)

	o := &Othello{
		board:  board,
		p1:     p1,
		p2:     p2,
		active: PlayerOne,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// NewOthelloFromBoard wraps an existing position, e.g. a mid-game test fixture. Every
// occupied cell must hold p1 or p2.
func NewOthelloFromBoard(board *Board, p1, p2 rune, active Player, options ...Option) *Othello {
	if p1 == p2 {
		panic(fmt.Sprintf("players must use distinct symbols, both are %q", p1))
	}
	for symbol := range board.Counts() {
		if symbol != p1 && symbol != p2 {
			panic(fmt.Sprintf("board holds unregistered symbol %q", symbol))
		}
	}
	o := &Othello{
		board:  board.Copy(),
		p1:     p1,
		p2:     p2,
		active: active,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Copy returns an independent deep copy. Mutating the copy never affects o.
func (o *Othello) Copy() *Othello {
	return &Othello{
		board:  o.board.Copy(),
		p1:     o.p1,
		p2:     o.p2,
		active: o.active,
		rule:   o.rule,
	}
}

// Board returns a snapshot of the board. Changes to it do not affect the game.
func (o *Othello) Board() *Board {
	return o.board.Copy()
}

func (o *Othello) Rows() int {
	return o.board.Rows()
}

func (o *Othello) Cols() int {
	return o.board.Cols()
}

func (o *Othello) EndRule() EndRule {
	return o.rule
}

func (o *Othello) ActivePlayer() Player {
	return o.active
}

// ActiveNumber returns 1 or 2 for the player to move.
func (o *Othello) ActiveNumber() int {
	return int(o.active)
}

func (o *Othello) ActiveSymbol() rune {
	return o.SymbolFor(o.active)
}

func (o *Othello) ChangeActivePlayer() {
	o.active = o.active.Other()
}

func (o *Othello) SymbolFor(p Player) rune {
	if p == PlayerOne {
		return o.p1
	}
	return o.p2
}

// PlayerFor returns the seat using symbol, if any.
func (o *Othello) PlayerFor(symbol rune) (Player, bool) {
	switch symbol {
	case o.p1:
		return PlayerOne, true
	case o.p2:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// OtherSymbol returns the opponent's symbol. It panics for a symbol not in this game.
func (o *Othello) OtherSymbol(symbol rune) rune {
	p, ok := o.PlayerFor(symbol)
	if !ok {
		panic(fmt.Sprintf("symbol %q is not registered in this game", symbol))
	}
	return o.SymbolFor(p.Other())
}

// captures walks from (row, col) in direction d and returns how many opponent cells a
// symbol placed at (row, col) would flip along that line. Zero means no outflank: the walk
// left the board, hit an empty cell, or met symbol before any opponent cell.
func (o *Othello) captures(row, col int, symbol rune, d Direction) int {
	run := 0
	for {
		var ok bool
		row, col, ok = d.Step(row, col)
		if !ok || !o.board.InBounds(row, col) {
			return 0
		}
		cell, occupied := o.board.Get(row, col)
		if !occupied {
			return 0
		}
		if cell == symbol {
			return run
		}
		run++
	}
}

// CheckEndpoint reports whether a symbol placed at (row, col) outflanks a run of at least
// one opponent cell in direction d. Legality is always judged for symbol, never for the
// player whose turn the game records.
func (o *Othello) CheckEndpoint(row, col int, symbol rune, d Direction) bool {
	return o.captures(row, col, symbol, d) > 0
}

// IsLegalMove reports whether symbol may be placed at (row, col): the cell must be on the
// board, empty, and outflank opponent cells in at least one direction.
func (o *Othello) IsLegalMove(row, col int, symbol rune) bool {
	if !o.board.InBounds(row, col) || !o.board.IsEmpty(row, col) {
		return false
	}
	for _, d := range Directions {
		if o.CheckEndpoint(row, col, symbol, d) {
			return true
		}
	}
	return false
}

// FlipPieces converts every outflanked opponent cell around (row, col) to symbol and
// returns how many cells changed owner.
func (o *Othello) FlipPieces(row, col int, symbol rune) int {
	flipped := 0
	for _, d := range Directions {
		n := o.captures(row, col, symbol, d)
		r, c := row, col
		for k := 0; k < n; k++ {
			r, c, _ = d.Step(r, c)
			o.board.Set(r, c, symbol)
		}
		flipped += n
	}
	return flipped
}

// PlayMove places symbol at (row, col), flips the captured cells and hands the turn to the
// other player. It returns the number of flipped cells.
//
// The move must already have been validated with IsLegalMove; PlayMove does not check.
func (o *Othello) PlayMove(row, col int, symbol rune) int {
	if _, ok := o.PlayerFor(symbol); !ok {
		panic(fmt.Sprintf("symbol %q is not registered in this game", symbol))
	}
	o.board.Set(row, col, symbol)
	flipped := o.FlipPieces(row, col, symbol)
	o.ChangeActivePlayer()
	return flipped
}

// Successors lists every legal move for symbol in row-major order.
func (o *Othello) Successors(symbol rune) []Move {
	var moves []Move
	for row := 0; row < o.board.Rows(); row++ {
		for col := 0; col < o.board.Cols(); col++ {
			if o.IsLegalMove(row, col, symbol) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (o *Othello) SymbolHasMoreMoves(symbol rune) bool {
	for row := 0; row < o.board.Rows(); row++ {
		for col := 0; col < o.board.Cols(); col++ {
			if o.IsLegalMove(row, col, symbol) {
				return true
			}
		}
	}
	return false
}

func (o *Othello) PlayerHasMoreMoves(p Player) bool {
	return o.SymbolHasMoreMoves(o.SymbolFor(p))
}

// HasMoreMoves reports whether both players have at least one legal move.
func (o *Othello) HasMoreMoves() bool {
	return o.PlayerHasMoreMoves(PlayerOne) && o.PlayerHasMoreMoves(PlayerTwo)
}

// HasAnyMoves reports whether at least one player has a legal move.
func (o *Othello) HasAnyMoves() bool {
	return o.PlayerHasMoreMoves(PlayerOne) || o.PlayerHasMoreMoves(PlayerTwo)
}

// IsOver is the terminal test under the game's end rule.
func (o *Othello) IsOver() bool {
	if o.rule == EndWhenBothBlocked {
		return !o.HasAnyMoves()
	}
	return !o.HasMoreMoves()
}

// Score returns the number of cells held by symbol.
func (o *Othello) Score(symbol rune) int {
	return o.board.Counts()[symbol]
}

// WinnerNumber compares the two players' cell counts: 1 or 2 for the player with strictly
// more cells, 0 for a tie.
func (o *Othello) WinnerNumber() int {
	counts := o.board.Counts()
	one, two := counts[o.p1], counts[o.p2]
	switch {
	case one > two:
		return int(PlayerOne)
	case two > one:
		return int(PlayerTwo)
	default:
		return 0
	}
}

// Winner describes the result once the game is over. It returns false while play continues.
func (o *Othello) Winner() (string, bool) {
	if !o.IsOver() {
		return "", false
	}
	switch o.WinnerNumber() {
	case 1:
		return fmt.Sprintf("Player 1 wins with %d points!", o.Score(o.p1)), true
	case 2:
		return fmt.Sprintf("Player 2 wins with %d points!", o.Score(o.p2)), true
	default:
		return "It's a tie!", true
	}
}

// Hash identifies the position: the player to move and every cell.
func (o *Othello) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int32(o.active))
	binary.Write(hasher, binary.LittleEndian, int32(o.board.rows))
	binary.Write(hasher, binary.LittleEndian, int32(o.board.cols))
	for _, symbol := range o.board.cells {
		binary.Write(hasher, binary.LittleEndian, symbol)
	}

	return StateHash(hasher.Sum64())
}
