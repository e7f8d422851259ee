package game

// Direction is one of the eight compass directions on the board. North increases the row
// index and east increases the column index.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists every direction once, clockwise from north.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

var deltas = [8][2]int{
	N:  {1, 0},
	NE: {1, 1},
	E:  {0, 1},
	SE: {-1, 1},
	S:  {-1, 0},
	SW: {-1, -1},
	W:  {0, -1},
	NW: {1, -1},
}

var names = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < N || d > NW {
		return "?"
	}
	return names[d]
}

// Delta returns the (row, col) offset of one step in this direction.
func (d Direction) Delta() (int, int) {
	delta := deltas[d]
	return delta[0], delta[1]
}

// Step translates (row, col) one cell in this direction. It fails when the result would
// have a negative row or column. There is no upper bound check: callers test the result
// against the board.
func (d Direction) Step(row, col int) (int, int, bool) {
	dr, dc := d.Delta()
	row, col = row+dr, col+dc
	if row < 0 || col < 0 {
		return 0, 0, false
	}
	return row, col, true
}

// Next returns the following direction clockwise, wrapping from NW back to N.
func (d Direction) Next() Direction {
	return (d + 1) % 8
}

// From returns all eight directions in clockwise order starting with d.
func From(d Direction) [8]Direction {
	var rotated [8]Direction
	for i := range rotated {
		rotated[i] = Directions[(int(d)+i)%8]
	}
	return rotated
}
