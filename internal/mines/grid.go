package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown      CellStatus = -2
	Mine         CellStatus = -1
	ExplodedMine CellStatus = 65
	// 0-8 for an open cell with the given number of neighbouring bombs
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "?"
	case Mine:
		return "B"
	case ExplodedMine:
		return "X"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major snapshot of what a view shows for every cell.
type Grid struct {
	Length int
	Status []CellStatus
}

func (g Grid) At(row, col int) CellStatus {
	return g.Status[row*g.Length+col]
}

func (g Grid) String() string {
	var b strings.Builder
	for row := range g.Length {
		for col := range g.Length {
			fmt.Fprint(&b, g.At(row, col).String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// PlayerGrid shows counts for revealed cells and hides everything else.
func (b *Board) PlayerGrid() Grid {
	return b.grid(func(pos Position, cell Cell) CellStatus {
		switch {
		case !cell.IsRevealed():
			return Unknown
		case cell.IsBomb():
			return b.bombStatus(pos)
		default:
			return CellStatus(cell.AdjacencyCount())
		}
	})
}

// FullGrid shows every bomb and every count regardless of reveal state.
func (b *Board) FullGrid() Grid {
	return b.grid(func(pos Position, cell Cell) CellStatus {
		if cell.IsBomb() {
			return b.bombStatus(pos)
		}
		return CellStatus(cell.AdjacencyCount())
	})
}

func (b *Board) bombStatus(pos Position) CellStatus {
	if b.exploded != nil && *b.exploded == pos {
		return ExplodedMine
	}
	return Mine
}

func (b *Board) grid(status func(Position, Cell) CellStatus) Grid {
	g := Grid{
		Length: b.params.Length,
		Status: make([]CellStatus, 0, len(b.cells)),
	}
	for pos, cell := range b.All() {
		g.Status = append(g.Status, status(pos, cell))
	}
	return g
}
