// Package render draws board views as boxed text tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

// Player draws what the player knows: counts for opened cells, ? elsewhere.
func Player(w io.Writer, b *mines.Board) error {
	return Grid(w, b.PlayerGrid())
}

// Full draws every bomb and count, used once the game is over.
func Full(w io.Writer, b *mines.Board) error {
	return Grid(w, b.FullGrid())
}

func Grid(w io.Writer, g mines.Grid) error {
	var sb strings.Builder

	separator := func() {
		sb.WriteString("    |")
		for range g.Length {
			sb.WriteString(" -- |")
		}
		sb.WriteString("\n")
	}

	separator()
	for row := range g.Length {
		fmt.Fprintf(&sb, "%3d |", row)
		for col := range g.Length {
			fmt.Fprintf(&sb, "%3s |", g.At(row, col).String())
		}
		sb.WriteString("\n")
		separator()
	}

	sb.WriteString("\n    |")
	for col := range g.Length {
		fmt.Fprintf(&sb, "%3d |", col)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
