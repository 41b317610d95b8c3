package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/render"
)

// Play prompts for moves until the board reaches Win or Loss, drawing the
// player view after every accepted move and the full view at the end.
func (s *Session) Play(ctx context.Context, p *Prompter, out io.Writer) (mines.Outcome, error) {
	if err := render.Player(out, s.Board); err != nil {
		return mines.Continue, err
	}

	for {
		pos, err := readPosition(ctx, p, out)
		if err != nil {
			s.log.WithError(err).WithField("moves", s.Moves).Info("session abandoned")
			return s.Board.Outcome(), err
		}

		outcome, err := s.Move(pos.Row, pos.Col)
		if errors.Is(err, mines.ErrOutOfBounds) {
			fmt.Fprintln(out, "Chosen cell does not exist!")
			continue
		}
		if err != nil {
			return outcome, err
		}

		switch outcome {
		case mines.Loss:
			fmt.Fprintln(out, "You hit a bomb! Game Over!")
			return outcome, render.Full(out, s.Board)
		case mines.Win:
			if err := render.Player(out, s.Board); err != nil {
				return outcome, err
			}
			fmt.Fprintln(out, "Congratulations! You won!")
			return outcome, render.Full(out, s.Board)
		}

		if err := render.Player(out, s.Board); err != nil {
			return outcome, err
		}
	}
}
