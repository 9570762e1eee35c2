package gui

import (
	"math"
	"math/rand"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	ParticleLife         = 60
	PlaceParticleCount   = 3
	ExplodeParticleCount = 5
	particleGravity      = 0.2
	particleUnitsPerCell = 32.0
)

// Particle is a short lived decoration drawn over empty matrix cells.
// Positions are in matrix cells and move once per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Block  mino.Block
	Life   int
}

func newParticle(r *rand.Rand, x, y float64, b mino.Block) *Particle {
	return &Particle{
		X:     x,
		Y:     y,
		VX:    (r.Float64()*6 - 3) / particleUnitsPerCell,
		VY:    (r.Float64()*4 - 5) / particleUnitsPerCell,
		Block: b,
		Life:  ParticleLife,
	}
}

// particlesFor returns the particles spawned by e
func particlesFor(r *rand.Rand, e event.Effect) []*Particle {
	var ps []*Particle

	switch e.Kind {
	case event.EffectPlace:
		for i := 0; i < PlaceParticleCount; i++ {
			ps = append(ps, newParticle(r, float64(e.X)+0.5, float64(e.Y)+0.5, e.Block))
		}
	case event.EffectExplode:
		for i := 0; i < ExplodeParticleCount; i++ {
			ps = append(ps, newParticle(r, float64(e.X)+r.Float64(), float64(e.Y)+r.Float64(), e.Block))
		}
	}

	return ps
}

func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += particleGravity / particleUnitsPerCell
	p.Life--
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

func (p *Particle) Cell() mino.Point {
	return mino.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// updateParticles advances every particle one frame and drops the dead
func updateParticles(ps []*Particle) []*Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(ps); i++ {
		ps[i] = nil
	}
	return alive
}
