package game

// Evaluations names the evaluation functions that can be chosen for a depth-limited search.
var Evaluations = map[string]Evaluate{
	"disc":     DiscDifference,
	"mobility": Mobility,
}

// DiscDifference is self's cell count minus the opponent's. It is the terminal utility and
// the default evaluation at a depth cutoff.
func DiscDifference(state *Othello, self rune) int {
	counts := state.board.Counts()
	return counts[self] - counts[state.OtherSymbol(self)]
}

// Mobility weighs disc difference with the difference in available moves, which is a
// better guide than discs alone before the board fills up.
func Mobility(state *Othello, self rune) int {
	other := state.OtherSymbol(self)
	moves := len(state.Successors(self)) - len(state.Successors(other))
	return DiscDifference(state, self) + 2*moves
}
