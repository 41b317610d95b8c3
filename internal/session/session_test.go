package session

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	mines.Log.SetOutput(io.Discard)
	m.Run()
}

// smallSession is a 4x4 board with one bomb at a seeded position.
func smallSession(t *testing.T) (*Session, mines.Position) {
	t.Helper()
	board, err := mines.NewBoard(mines.Params{Length: 4, Bombs: 1}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	for pos, cell := range board.All() {
		if cell.IsBomb() {
			return newSession(mines.Easy, board), pos
		}
	}
	t.Fatal("no bomb placed")
	return nil, mines.Position{}
}

func safeMoves(s *Session) string {
	var b strings.Builder
	for pos, cell := range s.Board.All() {
		if !cell.IsBomb() {
			fmt.Fprintf(&b, "%d %d\n", pos.Row, pos.Col)
		}
	}
	return b.String()
}

func TestNewSession(t *testing.T) {
	s, err := New(mines.Medium, mines.FixedSeed)
	require.NoError(t, err)
	assert.Equal(t, mines.Medium, s.Difficulty)
	assert.Equal(t, 15, s.Board.Length())
	assert.Equal(t, 0, s.Moves)
	assert.NotEqual(t, s.ID.String(), "")

	_, err = New(mines.Difficulty(9), mines.FixedSeed)
	var ce *mines.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestMoveCountsAcceptedMovesOnly(t *testing.T) {
	s, bomb := smallSession(t)

	_, err := s.Move(7, 7)
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)
	assert.Equal(t, 0, s.Moves)

	outcome, err := s.Move(bomb.Row, bomb.Col)
	require.NoError(t, err)
	assert.Equal(t, mines.Loss, outcome)
	assert.Equal(t, 1, s.Moves)

	_, err = s.Move(0, 0)
	assert.ErrorIs(t, err, mines.ErrGameOver)
	assert.Equal(t, 1, s.Moves)
}

func TestPlayRetriesBadInputThenLoses(t *testing.T) {
	s, bomb := smallSession(t)
	input := fmt.Sprintf("hello\n1\n9 9\n%d %d\n", bomb.Row, bomb.Col)

	var out strings.Builder
	p := NewPrompter(strings.NewReader(input))
	defer p.Close()

	outcome, err := s.Play(context.Background(), p, &out)
	require.NoError(t, err)
	assert.Equal(t, mines.Loss, outcome)
	assert.Equal(t, 1, s.Moves)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Please enter two numbers"))
	assert.Contains(t, text, "Chosen cell does not exist!")
	assert.Contains(t, text, "You hit a bomb! Game Over!")
	assert.Contains(t, text, "  X |")
}

func TestPlayWins(t *testing.T) {
	s, _ := smallSession(t)

	var out strings.Builder
	p := NewPrompter(strings.NewReader(safeMoves(s)))
	defer p.Close()

	outcome, err := s.Play(context.Background(), p, &out)
	require.NoError(t, err)
	assert.Equal(t, mines.Win, outcome)
	assert.Equal(t, s.Board.SafeCells(), s.Board.RevealedCount())
	assert.Contains(t, out.String(), "Congratulations! You won!")
	assert.Contains(t, out.String(), "  B |")
}

func TestPlayInputClosed(t *testing.T) {
	s, _ := smallSession(t)

	p := NewPrompter(strings.NewReader(""))
	defer p.Close()

	outcome, err := s.Play(context.Background(), p, io.Discard)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, mines.Continue, outcome)
}

func TestPlayCancelled(t *testing.T) {
	s, _ := smallSession(t)

	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Play(ctx, p, io.Discard)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChooseDifficulty(t *testing.T) {
	tests := []struct {
		input  string
		want   mines.Difficulty
		notice bool
	}{
		{"1\n", mines.Easy, false},
		{"2\n", mines.Medium, false},
		{"hard\n", mines.Hard, false},
		{"7\n", mines.Easy, true},
	}

	for _, test := range tests {
		t.Run(strings.TrimSpace(test.input), func(t *testing.T) {
			var out strings.Builder
			p := NewPrompter(strings.NewReader(test.input))
			defer p.Close()

			d, err := ChooseDifficulty(context.Background(), p, &out)
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
			assert.Equal(t, test.notice, strings.Contains(out.String(), "not recognised"))
		})
	}
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition("  3   4 ")
	require.NoError(t, err)
	assert.Equal(t, mines.Position{Row: 3, Col: 4}, pos)

	for _, line := range []string{"", "3", "3 4 5", "a b", "3 b"} {
		_, err := parsePosition(line)
		assert.ErrorIs(t, err, errBadPosition, line)
	}
}

func TestPrompterCloseStopsDelivery(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Close()
		}()
	}
	wg.Wait()
	p.Close()

	_, err := p.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)
}
