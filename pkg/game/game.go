package game

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

type Config struct {
	Mode Mode

	// Width and Height default to mino.DefaultWidth and mino.DefaultHeight.
	Width  int
	Height int

	// Generator defaults to a time seeded mino.RandomGenerator.
	Generator mino.Generator

	// Logger defaults to the logrus standard logger.
	Logger log.FieldLogger

	// Preset cells are filled with garbage at the start of every run.
	Preset mino.Mino
}

// Game is the rules engine. It is driven by Tick and must only be used
// from a single goroutine.
type Game struct {
	W int
	H int

	state   State
	mode    Mode
	session *Session

	generator mino.Generator
	preset    mino.Mino
	effects   []event.Effect

	logger log.FieldLogger
}

func NewGame(cfg Config) *Game {
	if cfg.Width <= 0 {
		cfg.Width = mino.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = mino.DefaultHeight
	}
	if cfg.Generator == nil {
		cfg.Generator = mino.NewRandomGenerator(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	if !cfg.Mode.valid() {
		cfg.Mode = ModeClassic
	}

	return &Game{
		W:         cfg.Width,
		H:         cfg.Height,
		state:     StateMenu,
		mode:      cfg.Mode,
		generator: cfg.Generator,
		preset:    cfg.Preset,
		logger:    cfg.Logger,
	}
}

func (g *Game) log() *log.Entry {
	return g.logger.WithFields(log.Fields{"mode": g.mode, "state": g.state})
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Mode() Mode {
	return g.mode
}

// SetMode selects the mode of the next run. It has no effect outside of
// the menu.
func (g *Game) SetMode(m Mode) {
	if g.state != StateMenu || !m.valid() {
		return
	}
	g.mode = m
}

// Tick applies actions in order and then advances the timers by dt. The
// timers only move when the game was in play for the whole tick. Actions
// that follow the end of a run within the same tick are dropped.
func (g *Game) Tick(dt time.Duration, actions ...event.Action) {
	wasPlaying := g.state == StatePlaying

	for _, a := range actions {
		before := g.state
		g.apply(a)

		if before == StatePlaying && g.state == StateGameOver {
			return
		}
	}

	if !wasPlaying || g.state != StatePlaying {
		return
	}

	g.advance(dt)
}

func (g *Game) apply(a event.Action) {
	switch g.state {
	case StateMenu:
		switch a {
		case event.ActionConfirm:
			g.start()
		case event.ActionModeCycleUp:
			g.mode = g.mode.Prev()
		case event.ActionModeCycleDown:
			g.mode = g.mode.Next()
		}
	case StatePlaying:
		switch a {
		case event.ActionMoveLeft:
			g.move(-1, 0)
		case event.ActionMoveRight:
			g.move(1, 0)
		case event.ActionSoftDrop:
			g.softDrop()
		case event.ActionHardDrop:
			g.hardDrop()
		case event.ActionRotateCW:
			g.rotate()
		case event.ActionHold:
			g.hold()
		case event.ActionPause:
			g.session.Clock.Pause()
			g.setState(StatePaused)
		case event.ActionEscape:
			g.log().WithField("score", g.session.Score).Debug("run abandoned")
			g.setState(StateMenu)
		}
	case StatePaused:
		if a == event.ActionPause {
			g.session.Clock.Resume()
			g.setState(StatePlaying)
		}
	case StateGameOver:
		switch a {
		case event.ActionConfirm:
			g.start()
		case event.ActionEscape:
			g.setState(StateMenu)
		}
	}
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}

	g.log().WithField("next", s).Debug("state change")
	g.state = s
}

func (g *Game) start() {
	s := newSession(g.W, g.H, g.mode)
	for _, p := range g.preset {
		s.Matrix.SetBlock(p.X, p.Y, mino.BlockGarbage)
	}

	g.session = s
	g.setState(StatePlaying)
	g.spawn()
}

func (g *Game) newPiece() mino.Piece {
	return mino.NewPiece(g.generator.Next(), g.W)
}

func (g *Game) spawn() {
	s := g.session

	if !s.HasNext {
		s.Next = g.newPiece()
		s.HasNext = true
	}

	s.Current = s.Next
	s.HasCurrent = true
	s.Next = g.newPiece()
	s.CanHold = true

	if s.Matrix.Collides(s.Current, 0, 0) {
		g.topOut()
	}
}

func (g *Game) topOut() {
	g.log().WithFields(log.Fields{"score": g.session.Score, "lines": g.session.Lines}).Info("top out")
	g.setState(StateGameOver)
}

func (g *Game) move(dx int, dy int) bool {
	s := g.session
	if s.Matrix.Collides(s.Current, dx, dy) {
		return false
	}

	s.Current = s.Current.Translate(dx, dy)
	return true
}

func (g *Game) softDrop() {
	if g.move(0, 1) {
		g.session.Score += SoftDropScore
	}
}

func (g *Game) hardDrop() {
	for g.move(0, 1) {
		g.session.Score += HardDropScore
	}

	g.place()
}

func (g *Game) rotate() {
	s := g.session

	rotated := s.Current.Rotate()
	if s.Matrix.Collides(rotated, 0, 0) {
		return
	}
	s.Current = rotated
}

func (g *Game) hold() {
	s := g.session
	if !s.CanHold {
		return
	}

	if !s.HasHold {
		s.Hold = s.Current
		s.HasHold = true
		g.spawn()
	} else {
		outgoing := s.Current
		s.Current = s.Hold.ResetToSpawn(g.W, false)
		s.Hold = outgoing.ResetToSpawn(g.W, false)

		if s.Matrix.Collides(s.Current, 0, 0) {
			g.topOut()
		}
	}

	s.CanHold = false
}

// place locks the current piece, clears completed rows, scores them and
// spawns the next piece.
func (g *Game) place() {
	s := g.session

	b := s.Current.Block()
	for _, c := range s.Matrix.Lock(s.Current) {
		g.effects = append(g.effects, event.Effect{Kind: event.EffectPlace, Point: c, Block: b})
	}
	s.HasCurrent = false

	rows, blocks := s.Matrix.ClearCompletedRows()
	if len(rows) > 0 {
		for i, y := range rows {
			for x, cell := range blocks[i] {
				g.effects = append(g.effects, event.Effect{Kind: event.EffectExplode, Point: mino.Point{X: x, Y: y}, Block: cell})
			}
		}

		linesBefore := s.Lines
		s.Lines += len(rows)
		s.Score += LineScore(len(rows), s.Level)
		s.Level = LevelFor(s.Lines)
		s.DropInterval = DropInterval(s.Level)

		if bonus := g.mode.Policy().Bonus(s, linesBefore); bonus > 0 {
			s.Score += bonus
			g.log().WithField("bonus", bonus).Info("line target reached")
		}
	}

	g.spawn()

	if g.state == StatePlaying {
		g.checkFinished()
	}
}

func (g *Game) checkFinished() {
	s := g.session
	if !g.mode.Policy().Finished(s) {
		return
	}

	g.log().WithFields(log.Fields{"score": s.Score, "lines": s.Lines, "elapsed": s.Clock.Elapsed}).Info("mode finished")
	g.setState(StateGameOver)
}

func (g *Game) advance(dt time.Duration) {
	s := g.session

	s.Clock.Advance(dt)

	s.dropElapsed += dt
	if s.dropElapsed > s.DropInterval {
		if !g.move(0, 1) {
			g.place()
		}
		s.dropElapsed = 0
	}

	if g.state == StatePlaying {
		g.checkFinished()
	}
}

// DrainEffects returns the effects emitted since the previous call.
func (g *Game) DrainEffects() []event.Effect {
	e := g.effects
	g.effects = nil
	return e
}

type Result struct {
	Mode     Mode
	Score    int
	Lines    int
	Level    int
	Won      bool
	Finished bool
}

// Result returns the outcome of the current run. ok is false when no run
// has been started or the last one was abandoned for the menu.
func (g *Game) Result() (r Result, ok bool) {
	if g.session == nil || g.state == StateMenu {
		return Result{}, false
	}

	s := g.session
	return Result{
		Mode:     g.mode,
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		Won:      g.mode.Policy().Won(s),
		Finished: g.state == StateGameOver,
	}, true
}
