package game

import (
	"time"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

// View is a read-only snapshot of the engine for rendering. Its matrix
// is a copy and may be kept across ticks.
type View struct {
	State State
	Mode  Mode

	Matrix *mino.Matrix

	Current    mino.Piece
	Ghost      mino.Piece
	HasCurrent bool
	Next       mino.Piece
	HasNext    bool
	Hold       mino.Piece
	HasHold    bool
	CanHold    bool

	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration

	Timed       bool
	Remaining   time.Duration
	TargetLines int
	Progress    float64
	Won         bool
}

func (g *Game) View() View {
	v := View{
		State:        g.state,
		Mode:         g.mode,
		Level:        1,
		DropInterval: InitialDropInterval,
		TargetLines:  g.mode.Policy().TargetLines,
	}

	s := g.session
	if s == nil || g.state == StateMenu {
		v.Matrix = mino.NewMatrix(g.W, g.H)
		v.Timed = g.mode.Policy().Duration > 0
		v.Remaining = g.mode.Policy().Duration
		return v
	}

	policy := g.mode.Policy()

	v.Matrix = s.Matrix.Clone()
	v.Current, v.HasCurrent = s.Current, s.HasCurrent
	if s.HasCurrent {
		v.Ghost = s.Matrix.GhostDrop(s.Current)
	}
	v.Next, v.HasNext = s.Next, s.HasNext
	v.Hold, v.HasHold, v.CanHold = s.Hold, s.HasHold, s.CanHold
	v.Score, v.Lines, v.Level, v.DropInterval = s.Score, s.Lines, s.Level, s.DropInterval
	v.Timed = s.Clock.Timed()
	v.Remaining = s.Clock.Remaining()
	v.Progress = policy.Progress(s)
	v.Won = policy.Won(s)

	return v
}
