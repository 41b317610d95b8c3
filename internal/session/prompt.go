package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/vancomm/minefield/internal/mines"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	errBadPosition = errors.New("expected two numbers: row col")
)

// Prompter reads input lines on its own goroutine so that waiting for the
// player can be abandoned through a context.
type Prompter struct {
	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
	err       error // set before lines is closed
}

func NewPrompter(in io.Reader) *Prompter {
	p := &Prompter{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Prompter) scan(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.done:
			return
		}
	}
	p.err = scanner.Err()
}

// Close stops delivering lines and may be called more than once. A read
// already blocked on the underlying reader is not interrupted.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrInputClosed
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("unable to read input: %w", p.err)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (p *Prompter) Prompt(ctx context.Context, out io.Writer, msg string) (string, error) {
	fmt.Fprintln(out, msg)
	return p.ReadLine(ctx)
}

func parsePosition(line string) (mines.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mines.Position{}, errBadPosition
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return mines.Position{}, errBadPosition
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return mines.Position{}, errBadPosition
	}
	return mines.Position{Row: row, Col: col}, nil
}

// readPosition asks until the player types two integers. Bounds are left to
// the board.
func readPosition(ctx context.Context, p *Prompter, out io.Writer) (mines.Position, error) {
	for {
		line, err := p.Prompt(ctx, out, "Please choose a cell using row col:")
		if err != nil {
			return mines.Position{}, err
		}
		pos, err := parsePosition(line)
		if err == nil {
			return pos, nil
		}
		fmt.Fprintln(out, "Please enter two numbers, for example: 3 4")
	}
}

// ChooseDifficulty runs the start-up menu. Anything unrecognised falls back
// to easy.
func ChooseDifficulty(ctx context.Context, p *Prompter, out io.Writer) (mines.Difficulty, error) {
	line, err := p.Prompt(ctx, out, "Please enter a difficulty: easy (1), medium (2) or hard (3)")
	if err != nil {
		return 0, err
	}
	d, err := mines.ParseDifficulty(line)
	if err != nil {
		Log.WithField("input", line).Warn("unrecognised difficulty, using easy")
		fmt.Fprintln(out, "Entered difficulty not recognised. Difficulty will be set to easy.")
		return mines.Easy, nil
	}
	return d, nil
}
