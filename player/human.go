package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"othello/game"
)

// ErrInputClosed is the panic value of Human.GetMove when its input ends before a move was
// entered.
var ErrInputClosed = errors.New("human input closed")

// Human asks a person for a move, row first and then column. Bad input is reported and
// asked for again; it never reaches the caller.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

// GetMove returns an empty cell on the board. Whether the cell is a legal move is left to
// the engine.
func (h *Human) GetMove(view game.View) game.Move {
	board := view.Board()
	symbol := view.ActiveSymbol()
	row, col := -1, -1

	for {
		if row < 0 {
			row = h.ask("Enter row (or ?): ", board.Rows(), view, symbol, &row)
			if row < 0 {
				continue
			}
		}
		if col < 0 {
			col = h.ask("Enter col (or ?): ", board.Cols(), view, symbol, &row)
			if col < 0 {
				continue
			}
		}

		if board.IsEmpty(row, col) {
			return game.Move{Row: row, Col: col}
		}
		fmt.Fprintln(h.out, "That cell is occupied")
		row, col = -1, -1
	}
}

// ask reads one coordinate below bound. It returns -1 when nothing usable was entered. "?"
// lists the legal moves, restricted to the chosen row once there is one; a row without legal
// moves is dropped so the row is asked again.
func (h *Human) ask(prompt string, bound int, view game.View, symbol rune, row *int) int {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		panic(ErrInputClosed)
	}
	text := strings.TrimSpace(h.in.Text())

	if text == "?" {
		listed := false
		for _, move := range view.Successors(symbol) {
			if *row >= 0 && move.Row != *row {
				continue
			}
			listed = true
			fmt.Fprintln(h.out, move)
		}
		if *row >= 0 && !listed {
			fmt.Fprintln(h.out, "No valid moves found. Resetting to row.")
			*row = -1
		}
		return -1
	}

	value, err := strconv.Atoi(text)
	switch {
	case err != nil || value < 0:
		fmt.Fprintln(h.out, "You must enter a non-negative number.")
		return -1
	case value >= bound:
		fmt.Fprintln(h.out, "Your entry is out of range.")
		return -1
	default:
		return value
	}
}
