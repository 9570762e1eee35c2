package mino

import (
	"math/rand"
	"sync"
)

// Generator supplies the type of each newly generated piece.
type Generator interface {
	Next() PieceType
}

// RandomGenerator picks every piece type independently and uniformly.
type RandomGenerator struct {
	r *rand.Rand
	*sync.Mutex
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{r: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

func (g *RandomGenerator) Next() PieceType {
	g.Lock()
	defer g.Unlock()

	return AllPieceTypes[g.r.Intn(len(AllPieceTypes))]
}

// Sequence cycles through a fixed list of piece types. An empty sequence
// always yields PieceO.
type Sequence struct {
	Types []PieceType

	i int
}

func NewSequence(types ...PieceType) *Sequence {
	return &Sequence{Types: types}
}

func (s *Sequence) Next() PieceType {
	if len(s.Types) == 0 {
		return PieceO
	}

	t := s.Types[s.i%len(s.Types)]
	s.i++
	return t
}
