package mino

import (
	"sort"
	"strings"
)

// Mino is a set of cell offsets or absolute cell coordinates.
type Mino []Point

func (m Mino) Equal(other Mino) bool {
	if len(m) != len(other) {
		return false
	}

	for i := 0; i < len(m); i++ {
		if !m.HasPoint(other[i]) {
			return false
		}
	}

	return true
}

func (m Mino) String() string {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	var b strings.Builder
	for i := range newMino {
		if i > 0 {
			b.WriteRune(',')
		}

		b.WriteString(newMino[i].String())
	}

	return b.String()
}

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

// Size returns the width and height of the bounding box of m, measured
// from its minimum coordinates.
func (m Mino) Size() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}

	o := m.Origin()

	var x, y int
	for _, p := range o {
		if p.X > x {
			x = p.X
		}
		if p.Y > y {
			y = p.Y
		}
	}

	return x + 1, y + 1
}

func (m Mino) minCoords() (int, int) {
	minx := m[0].X
	miny := m[0].Y
	for i := 1; i < len(m); i++ {
		if m[i].X < minx {
			minx = m[i].X
		}
		if m[i].Y < miny {
			miny = m[i].Y
		}
	}
	return minx, miny
}

// Origin translates m so that its minimum coordinates are (0,0).
func (m Mino) Origin() Mino {
	if len(m) == 0 {
		return Mino{}
	}

	minx, miny := m.minCoords()

	newMino := make(Mino, len(m))
	for i := 0; i < len(m); i++ {
		newMino[i] = Point{m[i].X - minx, m[i].Y - miny}
	}

	return newMino
}

func (m Mino) Translate(offset Point) Mino {
	newMino := make(Mino, len(m))
	for i := range m {
		newMino[i] = m[i].Add(offset)
	}

	return newMino
}
