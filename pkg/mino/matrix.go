package mino

import (
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Matrix is the playfield. Rows run top to bottom: M[0] is the topmost
// row and every row holds exactly W blocks.
type Matrix struct {
	W int // Width
	H int // Height

	M [][]Block
}

func NewMatrix(w int, h int) *Matrix {
	m := &Matrix{W: w, H: h}
	m.M = m.newM()

	return m
}

func (m *Matrix) newM() [][]Block {
	rows := make([][]Block, m.H)
	for y := range rows {
		rows[y] = make([]Block, m.W)
	}
	return rows
}

func (m *Matrix) inBounds(x int, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Block returns the block at x, y. Out of bounds coordinates read as
// BlockNone.
func (m *Matrix) Block(x int, y int) Block {
	if !m.inBounds(x, y) {
		return BlockNone
	}

	return m.M[y][x]
}

func (m *Matrix) Empty(loc Point) bool {
	return m.Block(loc.X, loc.Y) == BlockNone
}

// SetBlock stores b at x, y and reports whether the coordinates were
// inside the matrix.
func (m *Matrix) SetBlock(x int, y int, b Block) bool {
	if !m.inBounds(x, y) {
		return false
	}

	m.M[y][x] = b
	return true
}

// Collides reports whether p translated by dx, dy would leave the
// horizontal bounds, reach past the bottom row or overlap a filled cell.
// Cells above the top row only collide with the side walls.
func (m *Matrix) Collides(p Piece, dx int, dy int) bool {
	for _, c := range p.Cells() {
		x, y := c.X+dx, c.Y+dy

		if x < 0 || x >= m.W || y >= m.H {
			return true
		}
		if y >= 0 && m.M[y][x] != BlockNone {
			return true
		}
	}

	return false
}

// Lock writes the cells of p into the matrix using the piece's block and
// returns the cells that were written. Cells outside the matrix are
// skipped.
func (m *Matrix) Lock(p Piece) Mino {
	var (
		b      = p.Block()
		placed Mino
	)

	for _, c := range p.Cells() {
		if m.SetBlock(c.X, c.Y, b) {
			placed = append(placed, c)
		}
	}

	return placed
}

func (m *Matrix) LineFilled(y int) bool {
	for _, b := range m.M[y] {
		if b == BlockNone {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every full row and shifts the rows above it
// down. All rows are tested against the same snapshot, so adjacent full
// rows are all removed in one call. It returns the cleared row indices in
// top to bottom order along with a copy of each cleared row's blocks.
func (m *Matrix) ClearCompletedRows() ([]int, [][]Block) {
	var (
		cleared []int
		blocks  [][]Block
		kept    = make([][]Block, 0, m.H)
	)

	for y, row := range m.M {
		if m.LineFilled(y) {
			cleared = append(cleared, y)
			blocks = append(blocks, append([]Block(nil), row...))
			continue
		}
		kept = append(kept, row)
	}

	if len(cleared) == 0 {
		return nil, nil
	}

	rows := make([][]Block, 0, m.H)
	for range cleared {
		rows = append(rows, make([]Block, m.W))
	}
	m.M = append(rows, kept...)

	return cleared, blocks
}

// GhostDrop returns p moved down to the lowest position it can occupy
// without colliding.
func (m *Matrix) GhostDrop(p Piece) Piece {
	dy := 0
	for !m.Collides(p, 0, dy+1) {
		dy++
	}

	return p.Translate(0, dy)
}

func (m *Matrix) Clone() *Matrix {
	c := &Matrix{W: m.W, H: m.H, M: make([][]Block, len(m.M))}
	for y, row := range m.M {
		c.M[y] = append([]Block(nil), row...)
	}

	return c
}

func (m *Matrix) Clear() {
	m.M = m.newM()
}

// Filled returns the number of non-empty cells.
func (m *Matrix) Filled() int {
	n := 0
	for _, row := range m.M {
		for _, b := range row {
			if b != BlockNone {
				n++
			}
		}
	}
	return n
}

// Render returns the matrix as text, one line per row starting with the
// top row.
func (m *Matrix) Render() string {
	var b strings.Builder

	for y, row := range m.M {
		for _, block := range row {
			b.WriteRune(block.Rune())
		}

		if y < len(m.M)-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
