package game

import (
	"fmt"
	"strings"
)

// Placeholder is drawn for empty cells.
const Placeholder = '.'

// Lines renders the board with the highest row at the top, one line per row, followed by a
// rule and the column indices.
func (b *Board) Lines() []string {
	rowWidth := len(fmt.Sprint(b.rows - 1))
	colWidth := len(fmt.Sprint(b.cols - 1))

	lines := make([]string, 0, b.rows+2)
	for row := b.rows - 1; row >= 0; row-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%*d:|", rowWidth, row)
		for col := 0; col < b.cols; col++ {
			symbol, ok := b.Get(row, col)
			if !ok {
				symbol = Placeholder
			}
			fmt.Fprintf(&sb, " %*c", colWidth, symbol)
		}
		lines = append(lines, sb.String())
	}

	indent := strings.Repeat(" ", rowWidth+2)
	lines = append(lines, indent+strings.Repeat("-", b.cols*(colWidth+1)+1))

	var sb strings.Builder
	sb.WriteString(indent)
	for col := 0; col < b.cols; col++ {
		fmt.Fprintf(&sb, " %*d", colWidth, col)
	}
	lines = append(lines, sb.String())
	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

// String renders both scores followed by the board.
func (o *Othello) String() string {
	counts := o.board.Counts()
	return fmt.Sprintf("Player 1 (%c) score: %d\nPlayer 2 (%c) score: %d\n\n%s",
		o.p1, counts[o.p1], o.p2, counts[o.p2], o.board)
}
