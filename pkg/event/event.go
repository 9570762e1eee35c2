package event

import (
	"github.com/qnkhuat/blockterm/pkg/mino"
)

type EffectKind int

const (
	// EffectPlace is emitted for every cell of a piece that locks into the
	// matrix.
	EffectPlace EffectKind = iota

	// EffectExplode is emitted for every cell of a cleared row.
	EffectExplode
)

func (k EffectKind) String() string {
	switch k {
	case EffectPlace:
		return "place"
	case EffectExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// Effect is a visual effect trigger. Point is a matrix cell and Block the
// content of that cell when the effect was emitted.
type Effect struct {
	Kind EffectKind
	mino.Point
	Block mino.Block
}
