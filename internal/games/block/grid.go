package block

// Rows is the fixed number of block rows.
const Rows = 5

// Cell addresses one block of the grid.
type Cell struct {
	Column, Row int
}

// Grid tracks which blocks have been cleared. Cleared cells stay cleared
// until Reset.
type Grid struct {
	columns int
	cleared []bool // Indexed by row*columns + column
	order   []Cell // Clearance order
}

// NewGrid creates a grid with all blocks present.
func NewGrid(columns int) *Grid {
	columns = max(columns, 1)
	return &Grid{
		columns: columns,
		cleared: make([]bool, columns*Rows),
	}
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Total returns the number of cells.
func (g *Grid) Total() int {
	return g.columns * Rows
}

// Contains reports whether c is a valid cell.
func (g *Grid) Contains(c Cell) bool {
	return c.Column >= 0 && c.Column < g.columns && c.Row >= 0 && c.Row < Rows
}

// IsCleared reports whether the block at c is gone.
func (g *Grid) IsCleared(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	return g.cleared[c.Row*g.columns+c.Column]
}

// Clear removes the block at c. Returns true only if it was present.
func (g *Grid) Clear(c Cell) bool {
	if !g.Contains(c) || g.IsCleared(c) {
		return false
	}
	g.cleared[c.Row*g.columns+c.Column] = true
	g.order = append(g.order, c)
	return true
}

// ClearedCount returns how many blocks are gone.
func (g *Grid) ClearedCount() int {
	return len(g.order)
}

// Full reports whether every block has been cleared.
func (g *Grid) Full() bool {
	return len(g.order) == g.Total()
}

// Order returns cleared cells in clearance order.
func (g *Grid) Order() []Cell {
	return g.order
}

// Reset brings every block back.
func (g *Grid) Reset() {
	clear(g.cleared)
	g.order = nil
}
