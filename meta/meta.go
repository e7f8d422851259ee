// meta/meta.go
package meta

// ROWS and COLS are the default board size.
const ROWS = 4
const COLS = 4

// PLAYER_ONE and PLAYER_TWO are the default symbols.
const PLAYER_ONE = 'X'
const PLAYER_TWO = 'O'

// DEPTH of 0 searches to the end of the game.
const DEPTH = 0

// GO_ROUTINES defines the number of goroutines searching the root successors.
const GO_ROUTINES = 1

// EVAL names the evaluation used at the search depth limit.
const EVAL = "disc"

// GAMES defines the default number of games in a tournament.
const GAMES = 1000

// EXPERIMENTS_DIR is where experiment records are written.
const EXPERIMENTS_DIR = "experiments"

// PLAYER_KINDS lists the move sources selectable on the command line.
var PLAYER_KINDS = []string{"human", "minimax", "alphabeta", "random"}
