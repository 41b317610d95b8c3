package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

type Outcome int8

const (
	Continue Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

type State int8

const (
	Playing State = iota
	Won
	Lost
)

type SeedPolicy int8

const (
	RandomSeed SeedPolicy = iota
	FixedSeed
)

// DebugSeed is used by FixedSeed so that layouts are reproducible.
const DebugSeed uint64 = 14

// Rand is the only place a board's randomness comes from. Unknown policies
// are a configuration error rather than a silent random seed.
func (s SeedPolicy) Rand() (*rand.Rand, error) {
	var seed uint64
	switch s {
	case FixedSeed:
		seed = DebugSeed
	case RandomSeed:
		seed = uint64(time.Now().UnixNano())
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown seed policy %d", int8(s))}
	}
	return rand.New(rand.NewPCG(seed, seed)), nil
}

func (s SeedPolicy) String() string {
	switch s {
	case FixedSeed:
		return "fixed"
	case RandomSeed:
		return "random"
	default:
		return fmt.Sprintf("SeedPolicy(%d)", int8(s))
	}
}

// Board owns a square grid of cells. The layout is fixed at construction;
// afterwards only reveal flags and the revealed counter change.
type Board struct {
	params   Params
	cells    []Cell // row-major
	revealed int
	state    State
	exploded *Position
}

// New builds a board for one of the fixed difficulty tiers.
func New(d Difficulty, seed SeedPolicy) (*Board, error) {
	params, err := d.Params()
	if err != nil {
		return nil, err
	}
	r, err := seed.Rand()
	if err != nil {
		return nil, err
	}
	b, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"difficulty": d.String(),
		"params":     params.String(),
		"seed":       seed.String(),
	}).Debug("board generated")
	return b, nil
}

// NewBoard places params.Bombs bombs using r. Bomb counts that leave no safe
// cell are rejected up front so placement always terminates.
func NewBoard(params Params, r *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(params)
	if err != nil {
		return nil, err
	}
	length, bombs := params.Unpack()
	for placed := 0; placed < bombs; {
		pos := Position{r.IntN(length), r.IntN(length)}
		if b.placeBomb(pos) {
			placed++
		}
	}
	return b, nil
}

func newEmptyBoard(params Params) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		cells:  make([]Cell, 0, params.Cells()),
	}
	for r := range params.Length {
		for c := range params.Length {
			b.cells = append(b.cells, NewCell(r, c))
		}
	}
	return b, nil
}

// placeBomb reports false when pos already holds a bomb.
func (b *Board) placeBomb(pos Position) bool {
	cell := b.at(pos)
	if cell.IsBomb() {
		return false
	}
	cell.setBomb()
	for n := range b.neighbours(pos) {
		if nc := b.at(n); !nc.IsBomb() {
			nc.incrementAdjacency()
		}
	}
	return true
}

func (b *Board) at(pos Position) *Cell {
	return &b.cells[pos.Row*b.params.Length+pos.Col]
}

func (b *Board) InBounds(row, col int) bool {
	n := b.params.Length
	return 0 <= row && row < n && 0 <= col && col < n
}

// neighbours yields the in-bounds Moore neighbourhood of pos, excluding pos.
func (b *Board) neighbours(pos Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := pos.Row+dr, pos.Col+dc
				if !b.InBounds(r, c) {
					continue
				}
				if !yield(Position{r, c}) {
					return
				}
			}
		}
	}
}

// Reveal opens the cell at row, col. Revealing a cell that is already open is
// a no-op that returns Continue. Coordinates outside the grid yield
// ErrOutOfBounds and leave the board untouched.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if b.state != Playing {
		return b.Outcome(), ErrGameOver
	}
	if !b.InBounds(row, col) {
		return Continue, fmt.Errorf(
			"%w: %v on a %dx%d board", ErrOutOfBounds, Position{row, col}, b.params.Length, b.params.Length,
		)
	}

	pos := Position{row, col}
	cell := b.at(pos)
	switch {
	case cell.IsBomb():
		cell.reveal()
		b.exploded = &pos
		b.state = Lost
	case cell.IsRevealed():
		return Continue, nil
	case cell.AdjacencyCount() == 0:
		b.cascade(pos)
	default:
		b.revealCell(cell)
	}

	if b.state == Playing && b.revealed == b.SafeCells() {
		b.state = Won
	}

	Log.WithFields(logrus.Fields{
		"pos":      pos.String(),
		"revealed": b.revealed,
		"outcome":  b.Outcome().String(),
	}).Debug("cell revealed")

	return b.Outcome(), nil
}

// cascade reveals the zero region connected to start plus its numbered
// border. A cell is enqueued only when it is first revealed, so every cell
// enters the queue at most once.
func (b *Board) cascade(start Position) {
	b.revealCell(b.at(start))
	queue := []Position{start}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for n := range b.neighbours(pos) {
			cell := b.at(n)
			if cell.IsBomb() || cell.IsRevealed() {
				continue
			}
			b.revealCell(cell)
			if cell.AdjacencyCount() == 0 {
				queue = append(queue, n)
			}
		}
	}
}

func (b *Board) revealCell(cell *Cell) {
	cell.reveal()
	b.revealed++
}

// Outcome is Continue while the game is in progress.
func (b *Board) Outcome() Outcome {
	switch b.state {
	case Won:
		return Win
	case Lost:
		return Loss
	default:
		return Continue
	}
}

func (b *Board) State() State { return b.state }
func (b *Board) RevealedCount() int { return b.revealed }
func (b *Board) Length() int { return b.params.Length }
func (b *Board) Bombs() int { return b.params.Bombs }
func (b *Board) Params() Params { return b.params }

// SafeCells is the number of reveals needed to win.
func (b *Board) SafeCells() int {
	return b.params.Cells() - b.params.Bombs
}

// Exploded returns the bomb that ended the game, if any.
func (b *Board) Exploded() (Position, bool) {
	if b.exploded == nil {
		return Position{}, false
	}
	return *b.exploded, true
}

func (b *Board) Cell(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, Position{row, col})
	}
	return *b.at(Position{row, col}), nil
}

// All yields a copy of every cell in row-major order.
func (b *Board) All() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for _, cell := range b.cells {
			if !yield(cell.Position(), cell) {
				return
			}
		}
	}
}

func (b *Board) String() string {
	return b.params.String()
}
