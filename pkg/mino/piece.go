package mino

import (
	"fmt"
)

const (
	// ShapeSize is the side length of the square occupancy pattern every
	// rotation state is drawn in.
	ShapeSize = 5

	// PieceCells is the number of occupied cells of every tetromino.
	PieceCells = 4
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// AllPieceTypes lists every piece type in table order.
var AllPieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// pattern is one rotation state: '#' marks an occupied cell, anything else
// is empty. Rows run top to bottom.
type pattern [ShapeSize]string

var shapeTable = [...][]pattern{
	PieceI: {
		{".....",
			"..#..",
			"..#..",
			"..#..",
			"..#.."},
		{".....",
			".....",
			"####.",
			".....",
			"....."},
	},
	PieceO: {
		{".....",
			".....",
			".##..",
			".##..",
			"....."},
	},
	PieceT: {
		{".....",
			".....",
			".#...",
			"###..",
			"....."},
		{".....",
			".....",
			".#...",
			".##..",
			".#..."},
		{".....",
			".....",
			".....",
			"###..",
			".#..."},
		{".....",
			".....",
			".#...",
			"##...",
			".#..."},
	},
	PieceS: {
		{".....",
			".....",
			".##..",
			"##...",
			"....."},
		{".....",
			".#...",
			".##..",
			"..#..",
			"....."},
	},
	PieceZ: {
		{".....",
			".....",
			"##...",
			".##..",
			"....."},
		{".....",
			"..#..",
			".##..",
			".#...",
			"....."},
	},
	PieceJ: {
		{".....",
			".#...",
			".#...",
			"##...",
			"....."},
		{".....",
			".....",
			"#....",
			"###..",
			"....."},
		{".....",
			".##..",
			".#...",
			".#...",
			"....."},
		{".....",
			".....",
			"###..",
			"..#..",
			"....."},
	},
	PieceL: {
		{".....",
			"..#..",
			"..#..",
			".##..",
			"....."},
		{".....",
			".....",
			"###..",
			"#....",
			"....."},
		{".....",
			"##...",
			".#...",
			".#...",
			"....."},
		{".....",
			".....",
			"..#..",
			"###..",
			"....."},
	},
}

var pieceBlocks = [...]Block{
	PieceI: BlockSolidCyan,
	PieceO: BlockSolidYellow,
	PieceT: BlockSolidMagenta,
	PieceS: BlockSolidGreen,
	PieceZ: BlockSolidRed,
	PieceJ: BlockSolidBlue,
	PieceL: BlockSolidOrange,
}

var pieceNames = [...]string{
	PieceI: "I",
	PieceO: "O",
	PieceT: "T",
	PieceS: "S",
	PieceZ: "Z",
	PieceJ: "J",
	PieceL: "L",
}

// shapes holds the parsed offsets of shapeTable, indexed by type and then
// rotation.
var shapes = func() [][]Mino {
	s := make([][]Mino, len(shapeTable))
	for t, rotations := range shapeTable {
		s[t] = make([]Mino, len(rotations))
		for r, pat := range rotations {
			s[t][r] = pat.offsets()
		}
	}
	return s
}()

func (pat pattern) offsets() Mino {
	var m Mino
	for y, row := range pat {
		for x, c := range row {
			if c == '#' {
				m = append(m, Point{x, y})
			}
		}
	}
	return m
}

func (t PieceType) Valid() bool {
	return t >= PieceI && int(t) < len(shapeTable)
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
	return pieceNames[t]
}

// Rotations returns the number of distinct rotation states of t.
func (t PieceType) Rotations() int {
	return len(shapeTable[t])
}

func (t PieceType) Block() Block {
	return pieceBlocks[t]
}

// Shape returns the origin-relative offsets of t in the given rotation
// state. The rotation is taken modulo the type's state count.
func (t PieceType) Shape(rotation int) Mino {
	n := t.Rotations()
	rotation %= n
	if rotation < 0 {
		rotation += n
	}

	src := shapes[t][rotation]
	m := make(Mino, len(src))
	copy(m, src)
	return m
}

// SpawnPoint is the anchor every new piece starts at on a board of the
// given width.
func SpawnPoint(width int) Point {
	return Point{width/2 - 2, 0}
}

// Piece is a single tetromino instance. It is a value type: every
// transform returns a new Piece and leaves the receiver untouched.
type Piece struct {
	Point
	Type     PieceType
	Rotation int
}

// NewPiece returns a piece of type t in rotation 0 at the spawn point of
// a board with the given width.
func NewPiece(t PieceType, width int) Piece {
	return Piece{Point: SpawnPoint(width), Type: t}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s r%d %s", p.Type, p.Rotation, p.Point)
}

// Shape returns the origin-relative offsets of the current rotation state.
func (p Piece) Shape() Mino {
	return p.Type.Shape(p.Rotation)
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() Mino {
	return p.Shape().Translate(p.Point)
}

func (p Piece) Block() Block {
	return p.Type.Block()
}

// Rotate advances the rotation state by one. Validity is not checked.
func (p Piece) Rotate() Piece {
	p.Rotation = (p.Rotation + 1) % p.Type.Rotations()
	return p
}

func (p Piece) Translate(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// ResetToSpawn moves the piece back to the spawn point of a board with
// the given width, optionally keeping its rotation state.
func (p Piece) ResetToSpawn(width int, keepRotation bool) Piece {
	p.Point = SpawnPoint(width)
	if !keepRotation {
		p.Rotation = 0
	}
	return p
}
