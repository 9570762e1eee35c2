package mino

// Block is the content of a single matrix cell. Only BlockNone is empty;
// every other value records which kind of piece (or garbage) filled it and
// is used for rendering only.
type Block int

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch {
	case b == BlockNone:
		return ' '
	case b.IsGhost():
		return '▓'
	case b == BlockGarbage || b.IsSolid():
		return '█'
	default:
		return '?'
	}
}

const (
	BlockNone Block = iota
	BlockGarbage
	BlockGhostBlue
	BlockGhostCyan
	BlockGhostRed
	BlockGhostYellow
	BlockGhostMagenta
	BlockGhostGreen
	BlockGhostOrange
	BlockSolidBlue
	BlockSolidCyan
	BlockSolidRed
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidOrange
)

func (b Block) IsGhost() bool {
	return b >= BlockGhostBlue && b <= BlockGhostOrange
}

func (b Block) IsSolid() bool {
	return b >= BlockSolidBlue && b <= BlockSolidOrange
}

// Ghost returns the ghost variant of a solid block. Other blocks are
// returned unchanged.
func (b Block) Ghost() Block {
	if !b.IsSolid() {
		return b
	}

	return b - (BlockSolidBlue - BlockGhostBlue)
}

// Solid returns the solid variant of a ghost block. Other blocks are
// returned unchanged.
func (b Block) Solid() Block {
	if !b.IsGhost() {
		return b
	}

	return b + (BlockSolidBlue - BlockGhostBlue)
}
