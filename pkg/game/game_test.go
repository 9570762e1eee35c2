package game

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

func newTestGame(t *testing.T, mode Mode, preset mino.Mino, types ...mino.PieceType) (*Game, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()

	g := NewGame(Config{
		Mode:      mode,
		Generator: mino.NewSequence(types...),
		Logger:    logger,
		Preset:    preset,
	})
	return g, hook
}

func startTestGame(t *testing.T, mode Mode, preset mino.Mino, types ...mino.PieceType) (*Game, *test.Hook) {
	t.Helper()

	g, hook := newTestGame(t, mode, preset, types...)
	g.Tick(0, event.ActionConfirm)
	require.Equal(t, StatePlaying, g.State())
	return g, hook
}

// rowExcept returns every cell of row y other than the given columns.
func rowExcept(y int, gaps ...int) mino.Mino {
	var m mino.Mino
	for x := 0; x < mino.DefaultWidth; x++ {
		skip := false
		for _, gap := range gaps {
			if x == gap {
				skip = true
			}
		}
		if !skip {
			m = append(m, mino.Point{X: x, Y: y})
		}
	}
	return m
}

func repeat(a event.Action, n int) []event.Action {
	actions := make([]event.Action, n)
	for i := range actions {
		actions[i] = a
	}
	return actions
}

func TestGameStart(t *testing.T) {
	g, _ := newTestGame(t, ModeClassic, nil, mino.PieceT, mino.PieceO)

	assert.Equal(t, StateMenu, g.State())
	_, ok := g.Result()
	assert.False(t, ok)

	g.Tick(time.Second, event.ActionConfirm)

	v := g.View()
	require.Equal(t, StatePlaying, v.State)
	assert.True(t, v.HasCurrent)
	assert.Equal(t, mino.PieceT, v.Current.Type)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)
	assert.Equal(t, 0, v.Current.Rotation)
	assert.Equal(t, mino.PieceO, v.Next.Type)
	assert.False(t, v.HasHold)
	assert.True(t, v.CanHold)
	assert.Equal(t, 0, v.Score)
	assert.Equal(t, 0, v.Lines)
	assert.Equal(t, 1, v.Level)
	assert.Equal(t, InitialDropInterval, v.DropInterval)
	assert.Zero(t, v.Matrix.Filled())
	assert.Equal(t, time.Duration(0), g.session.dropElapsed, "timers advanced on the starting tick")
}

func TestGameMenuModeCycle(t *testing.T) {
	g, _ := newTestGame(t, ModeClassic, nil)

	g.Tick(0, event.ActionModeCycleUp)
	assert.Equal(t, ModeMarathon, g.Mode())

	g.Tick(0, event.ActionModeCycleDown, event.ActionModeCycleDown)
	assert.Equal(t, ModeTimeAttack, g.Mode())

	g.Tick(0, event.ActionEscape)
	assert.Equal(t, StateMenu, g.State())

	g.Tick(0, event.ActionConfirm, event.ActionModeCycleDown)
	assert.Equal(t, ModeTimeAttack, g.Mode(), "mode changed during play")

	g.SetMode(ModeClassic)
	assert.Equal(t, ModeTimeAttack, g.Mode(), "mode changed during play")
}

func TestGameMove(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceO)

	g.Tick(0, repeat(event.ActionMoveLeft, 4)...)
	assert.Equal(t, -1, g.View().Current.X)

	g.Tick(0, event.ActionMoveLeft)
	assert.Equal(t, -1, g.View().Current.X, "moved through the left wall")

	g.Tick(0, repeat(event.ActionMoveRight, 20)...)
	assert.Equal(t, 7, g.View().Current.X, "moved through the right wall")
	assert.Equal(t, 0, g.View().Current.Y)
}

func TestGameRotate(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceI)

	g.Tick(0, event.ActionRotateCW)
	v := g.View()
	assert.Equal(t, 1, v.Current.Rotation)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)

	g.Tick(0, event.ActionRotateCW)
	assert.Equal(t, 0, g.View().Current.Rotation)

	// Against the left wall the horizontal state does not fit and there is
	// no kick.
	g.Tick(0, repeat(event.ActionMoveLeft, 5)...)
	v = g.View()
	require.Equal(t, -2, v.Current.X)

	g.Tick(0, event.ActionRotateCW)
	assert.Equal(t, v.Current, g.View().Current)
}

func TestGameSoftDrop(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceO)

	g.Tick(0, event.ActionSoftDrop, event.ActionSoftDrop)
	v := g.View()
	assert.Equal(t, 2, v.Current.Y)
	assert.Equal(t, 2*SoftDropScore, v.Score)

	g.Tick(0, repeat(event.ActionSoftDrop, 20)...)
	v = g.View()
	assert.Equal(t, 16, v.Current.Y)
	assert.Equal(t, 16*SoftDropScore, v.Score, "scored a blocked soft drop")
	assert.Zero(t, v.Matrix.Filled(), "soft drop locked the piece")
}

func TestGameHardDrop(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceO, mino.PieceT)

	g.Tick(0, event.ActionHardDrop)

	v := g.View()
	assert.Equal(t, 16*HardDropScore, v.Score)
	assert.Equal(t, 4, v.Matrix.Filled())
	for _, p := range []mino.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, mino.BlockSolidYellow, v.Matrix.Block(p.X, p.Y), "cell %s", p)
	}
	assert.Equal(t, mino.PieceT, v.Current.Type)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)

	effects := g.DrainEffects()
	require.Len(t, effects, 4)
	for _, e := range effects {
		assert.Equal(t, event.EffectPlace, e.Kind)
		assert.Equal(t, mino.BlockSolidYellow, e.Block)
	}
	assert.Empty(t, g.DrainEffects())
}

func TestGameLineClear(t *testing.T) {
	preset := append(rowExcept(19, 4, 5), rowExcept(18, 4, 5)...)
	preset = append(preset, mino.Point{X: 0, Y: 17})

	g, _ := startTestGame(t, ModeClassic, preset, mino.PieceO)
	g.Tick(0, event.ActionHardDrop)

	v := g.View()
	assert.Equal(t, 2, v.Lines)
	assert.Equal(t, 16*HardDropScore+300, v.Score)
	assert.Equal(t, 1, v.Level)
	assert.Equal(t, 1, v.Matrix.Filled())
	assert.Equal(t, mino.BlockGarbage, v.Matrix.Block(0, 19))

	var place, explode int
	for _, e := range g.DrainEffects() {
		switch e.Kind {
		case event.EffectPlace:
			place++
		case event.EffectExplode:
			explode++
			assert.True(t, e.Y == 18 || e.Y == 19)
			assert.NotEqual(t, mino.BlockNone, e.Block)
		}
	}
	assert.Equal(t, 4, place)
	assert.Equal(t, 2*mino.DefaultWidth, explode)
}

func TestGameLevelUp(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, rowExcept(19, 4, 5), mino.PieceO)
	g.session.Lines = 9
	g.session.Level = LevelFor(9)

	g.Tick(0, event.ActionHardDrop)

	v := g.View()
	assert.Equal(t, 10, v.Lines)
	assert.Equal(t, 2, v.Level)
	assert.Equal(t, 950*time.Millisecond, v.DropInterval)
	assert.Equal(t, 16*HardDropScore+100, v.Score, "line score did not use the level before the clear")
}

func TestGameHold(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceT, mino.PieceO, mino.PieceI)

	g.Tick(0, event.ActionRotateCW, event.ActionMoveRight, event.ActionHold)

	v := g.View()
	require.True(t, v.HasHold)
	assert.Equal(t, mino.PieceT, v.Hold.Type)
	assert.Equal(t, mino.PieceO, v.Current.Type)
	assert.Equal(t, mino.PieceI, v.Next.Type)
	assert.False(t, v.CanHold)

	g.Tick(0, event.ActionHold)
	assert.Equal(t, v, g.View(), "second hold changed the state")

	g.Tick(0, event.ActionHardDrop)
	v = g.View()
	assert.True(t, v.CanHold)
	assert.Equal(t, mino.PieceI, v.Current.Type)

	g.Tick(0, event.ActionMoveLeft, event.ActionHold)
	v = g.View()
	assert.Equal(t, mino.PieceT, v.Current.Type)
	assert.Equal(t, 0, v.Current.Rotation)
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)
	assert.Equal(t, mino.PieceI, v.Hold.Type)
	assert.Equal(t, 0, v.Hold.Rotation)
	assert.False(t, v.CanHold)
}

func TestGameAutoDrop(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceO)

	g.Tick(InitialDropInterval)
	assert.Equal(t, 0, g.View().Current.Y, "dropped at exactly the interval")

	g.Tick(time.Millisecond)
	assert.Equal(t, 1, g.View().Current.Y)

	g.Tick(InitialDropInterval + time.Millisecond)
	assert.Equal(t, 2, g.View().Current.Y)

	g.Tick(0, repeat(event.ActionSoftDrop, 20)...)
	g.Tick(InitialDropInterval + time.Millisecond)
	v := g.View()
	assert.Equal(t, 4, v.Matrix.Filled(), "blocked auto drop did not lock")
	assert.Equal(t, 0, v.Current.Y)
}

func TestGamePause(t *testing.T) {
	g, _ := startTestGame(t, ModeTimeAttack, nil, mino.PieceO)

	g.Tick(600 * time.Millisecond)
	g.Tick(0, event.ActionPause)
	require.Equal(t, StatePaused, g.State())

	g.Tick(10*time.Second, event.ActionMoveLeft, event.ActionHardDrop)
	v := g.View()
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)
	assert.Equal(t, TimeAttackDuration-600*time.Millisecond, v.Remaining)

	g.Tick(0, event.ActionEscape)
	assert.Equal(t, StatePaused, g.State())

	g.Tick(0, event.ActionPause)
	require.Equal(t, StatePlaying, g.State())

	g.Tick(400 * time.Millisecond)
	assert.Equal(t, 0, g.View().Current.Y, "pause reset the drop timer")
	g.Tick(time.Millisecond)
	assert.Equal(t, 1, g.View().Current.Y)
}

func TestGameTimeAttack(t *testing.T) {
	g, hook := startTestGame(t, ModeTimeAttack, nil, mino.PieceO)

	g.Tick(TimeAttackDuration - time.Millisecond)
	require.Equal(t, StatePlaying, g.State())
	assert.Equal(t, time.Millisecond, g.View().Remaining)

	g.Tick(time.Millisecond)
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, "mode finished", hook.LastEntry().Message)

	r, ok := g.Result()
	require.True(t, ok)
	assert.True(t, r.Finished)
	assert.False(t, r.Won)
	assert.Equal(t, ModeTimeAttack, r.Mode)
}

func TestGameMarathonWin(t *testing.T) {
	g, hook := startTestGame(t, ModeMarathon, rowExcept(19, 4, 5), mino.PieceO)
	g.session.Lines = MarathonTargetLines - 1
	g.session.Level = LevelFor(MarathonTargetLines - 1)

	g.Tick(0, event.ActionHardDrop, event.ActionConfirm, event.ActionHardDrop)

	v := g.View()
	require.Equal(t, StateGameOver, v.State)
	assert.True(t, v.Won)
	assert.Equal(t, MarathonTargetLines, v.Lines)
	assert.Equal(t, 16*HardDropScore+100*15+MarathonCompletionBonus, v.Score)
	assert.Equal(t, 1.0, v.Progress)

	bonuses := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "line target reached" {
			bonuses++
		}
	}
	assert.Equal(t, 1, bonuses)

	r, ok := g.Result()
	require.True(t, ok)
	assert.True(t, r.Won)
	assert.True(t, r.Finished)
}

func TestGameTopOut(t *testing.T) {
	g, hook := newTestGame(t, ModeClassic, mino.Mino{{X: 4, Y: 3}}, mino.PieceO)

	g.Tick(0, event.ActionConfirm, event.ActionMoveLeft)

	v := g.View()
	assert.Equal(t, StateGameOver, v.State)
	assert.Equal(t, 1, v.Matrix.Filled(), "spawned piece was locked")
	assert.Equal(t, mino.Point{X: 3, Y: 0}, v.Current.Point)
	assert.Empty(t, g.DrainEffects())
	assert.Equal(t, "top out", hook.LastEntry().Message)

	r, ok := g.Result()
	require.True(t, ok)
	assert.True(t, r.Finished)
	assert.False(t, r.Won)
}

func TestGameRestart(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, nil, mino.PieceO)
	g.Tick(0, event.ActionHardDrop)
	require.NotZero(t, g.View().Score)

	g.Tick(0, event.ActionEscape)
	assert.Equal(t, StateMenu, g.State())
	_, ok := g.Result()
	assert.False(t, ok, "abandoned run reported a result")

	g.Tick(0, event.ActionConfirm)
	v := g.View()
	assert.Equal(t, StatePlaying, v.State)
	assert.Zero(t, v.Score)
	assert.Zero(t, v.Matrix.Filled())

	g.session.Score = 10
	g.setState(StateGameOver)
	g.Tick(0, event.ActionConfirm)
	assert.Equal(t, StatePlaying, g.State())
	assert.Zero(t, g.View().Score)

	g.setState(StateGameOver)
	g.Tick(0, event.ActionEscape)
	assert.Equal(t, StateMenu, g.State())
}

func TestGameMenuView(t *testing.T) {
	g, _ := newTestGame(t, ModeTimeAttack, nil)

	v := g.View()
	assert.Equal(t, StateMenu, v.State)
	assert.False(t, v.HasCurrent)
	assert.True(t, v.Timed)
	assert.Equal(t, TimeAttackDuration, v.Remaining)
	assert.Equal(t, mino.DefaultHeight, len(v.Matrix.M))
}

func TestGameGhost(t *testing.T) {
	g, _ := startTestGame(t, ModeClassic, rowExcept(19, 0), mino.PieceO)

	v := g.View()
	assert.Equal(t, mino.Point{X: 3, Y: 15}, v.Ghost.Point)
	assert.Equal(t, 0, v.Current.Y)
}
