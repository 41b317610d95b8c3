package session

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/mines"
)

var Log = logrus.New()

// Session is one game from first move to terminal outcome. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	ID         uuid.UUID
	Difficulty mines.Difficulty
	Board      *mines.Board
	Moves      int

	log *logrus.Entry
}

func New(d mines.Difficulty, seed mines.SeedPolicy) (*Session, error) {
	board, err := mines.New(d, seed)
	if err != nil {
		return nil, err
	}
	s := newSession(d, board)
	s.log.WithFields(logrus.Fields{
		"seed":  seed.String(),
		"board": board.String(),
	}).Info("session started")
	return s, nil
}

func newSession(d mines.Difficulty, board *mines.Board) *Session {
	id := uuid.New()
	return &Session{
		ID:         id,
		Difficulty: d,
		Board:      board,
		log: Log.WithFields(logrus.Fields{
			"session":    id.String(),
			"difficulty": d.String(),
		}),
	}
}

// Move reveals one cell. Rejected moves (out of bounds, game already over)
// are not counted.
func (s *Session) Move(row, col int) (mines.Outcome, error) {
	outcome, err := s.Board.Reveal(row, col)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"row": row,
			"col": col,
		}).Warn("move rejected")
		return outcome, err
	}
	s.Moves++

	entry := s.log.WithFields(logrus.Fields{
		"move":     s.Moves,
		"row":      row,
		"col":      col,
		"revealed": s.Board.RevealedCount(),
		"outcome":  outcome.String(),
	})
	if outcome == mines.Continue {
		entry.Debug("move")
	} else {
		entry.Info("game over")
	}
	return outcome, nil
}
