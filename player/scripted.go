package player

import (
	"sync"

	"othello/game"
)

// Scripted replays a fixed sequence of moves, one per call.
type Scripted struct {
	mu    sync.Mutex
	moves []game.Move
}

func NewScripted(moves ...game.Move) *Scripted {
	return &Scripted{moves: append([]game.Move(nil), moves...)}
}

// GetMove pops the front of the queue. Running out of moves means the script does not fit
// the game, so it panics.
func (s *Scripted) GetMove(game.View) game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.moves) == 0 {
		panic("scripted move queue exhausted")
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move
}

func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.moves)
}
