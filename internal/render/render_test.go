package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
)

func TestGridLayout(t *testing.T) {
	g := mines.Grid{
		Length: 2,
		Status: []mines.CellStatus{mines.Unknown, 1, mines.Mine, mines.ExplodedMine},
	}

	var b strings.Builder
	require.NoError(t, Grid(&b, g))

	want := "" +
		"    | -- | -- |\n" +
		"  0 |  ? |  1 |\n" +
		"    | -- | -- |\n" +
		"  1 |  B |  X |\n" +
		"    | -- | -- |\n" +
		"\n" +
		"    |  0 |  1 |\n"
	assert.Equal(t, want, b.String())
}

func TestWideGridIndices(t *testing.T) {
	board, err := mines.NewBoard(mines.Params{Length: 12, Bombs: 0}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Player(&b, board))

	lines := strings.Split(b.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[1+2*11], " 11 |"), lines[1+2*11])
	assert.True(t, strings.HasSuffix(lines[len(lines)-2], " 10 | 11 |"))
	assert.Equal(t, 12, strings.Count(lines[1], "?"))
}

func TestFullViewShowsBombs(t *testing.T) {
	board, err := mines.New(mines.Easy, mines.FixedSeed)
	require.NoError(t, err)

	var player, full strings.Builder
	require.NoError(t, Player(&player, board))
	require.NoError(t, Full(&full, board))

	assert.Equal(t, 100, strings.Count(player.String(), "?"))
	assert.Equal(t, 0, strings.Count(full.String(), "?"))
	assert.Equal(t, board.Bombs(), strings.Count(full.String(), "B"))
}
