package mines

// bombCount is the adjacency value carried by a cell that holds a bomb.
const bombCount = -1

// Cell is a single grid position. Only the board mutates cells; everyone else
// reads copies through the accessors.
type Cell struct {
	row, col int
	count    int
	revealed bool
}

func NewCell(row, col int) Cell {
	return Cell{row: row, col: col}
}

func (c *Cell) setBomb() {
	c.count = bombCount
}

// incrementAdjacency must not be called on a bomb cell.
func (c *Cell) incrementAdjacency() {
	c.count++
}

func (c *Cell) reveal() {
	c.revealed = true
}

func (c Cell) IsBomb() bool { return c.count == bombCount }
func (c Cell) AdjacencyCount() int { return c.count }
func (c Cell) IsRevealed() bool { return c.revealed }
func (c Cell) Row() int { return c.row }
func (c Cell) Col() int { return c.col }
func (c Cell) Position() Position { return Position{c.row, c.col} }
