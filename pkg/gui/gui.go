package gui

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/score"
)

const DefaultFPS = 60

const (
	pageMenu  = "menu"
	pagePlay  = "play"
	pagePause = "pause"
	pageOver  = "over"
)

type Config struct {
	Game     *game.Game
	Scores   score.Scores
	Nickname string
	FPS      int
	Theme    *Theme
	Logger   log.FieldLogger

	// Seed drives particle motion only.
	Seed int64
}

// GUI is the terminal front end. Key events and frame steps both run on
// the tview event goroutine, so the engine has a single writer.
type GUI struct {
	app   *tview.Application
	pages *tview.Pages

	menu *tview.TextView
	info *tview.TextView
	mtx  *tview.TextView
	side *tview.TextView
	over *tview.TextView
	paus *tview.TextView

	game     *game.Game
	scores   score.Scores
	nickname string
	fps      int
	render   *Renderer
	rand     *rand.Rand
	logger   log.FieldLogger

	pending   []event.Action
	particles []*Particle
	state     game.State
	page      string

	recorded bool
	newBest  bool
}

func New(cfg Config) *GUI {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Theme == nil {
		cfg.Theme = &ThemeNeon
	}
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	if cfg.Scores == nil {
		cfg.Scores = score.DefaultScores()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &GUI{
		game:     cfg.Game,
		scores:   cfg.Scores,
		nickname: cfg.Nickname,
		fps:      cfg.FPS,
		render:   NewRenderer(*cfg.Theme),
		rand:     rand.New(rand.NewSource(cfg.Seed)),
		logger:   cfg.Logger,
		state:    cfg.Game.State(),
	}

	g.app = tview.NewApplication()

	g.menu = newTextView(tview.AlignCenter)
	g.info = newTextView(tview.AlignCenter)
	g.mtx = newTextView(tview.AlignLeft)
	g.side = newTextView(tview.AlignLeft)
	g.over = newTextView(tview.AlignCenter)
	g.paus = newTextView(tview.AlignCenter)

	g.over.SetBorder(true)
	g.paus.SetBorder(true)

	w := g.game.W*blockWidth + 2
	h := g.game.H + 2

	playGrid := tview.NewGrid().
		SetRows(1, h, -1).
		SetColumns(-1, w, 2, 28, -1).
		AddItem(g.info, 0, 0, 1, 5, 0, 0, false).
		AddItem(g.mtx, 1, 1, 1, 1, 0, 0, false).
		AddItem(g.side, 1, 3, 1, 1, 0, 0, false)

	menuGrid := tview.NewGrid().
		SetRows(-1, 20, -1).
		SetColumns(-1, 60, -1).
		AddItem(g.menu, 1, 1, 1, 1, 0, 0, true)

	g.pages = tview.NewPages().
		AddPage(pageMenu, menuGrid, true, true).
		AddPage(pagePlay, playGrid, true, false).
		AddPage(pagePause, centered(g.paus, 30, 5), true, false).
		AddPage(pageOver, centered(g.over, 34, 9), true, false)
	g.page = pageMenu

	g.app.SetInputCapture(g.handleKeypress)
	g.app.SetRoot(g.pages, true)

	g.draw()

	return g
}

func newTextView(align int) *tview.TextView {
	tv := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(align).
		SetWrap(false).
		SetWordWrap(false)

	tv.SetDynamicColors(true)
	return tv
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, false).
			AddItem(nil, 0, 1, false), width, 1, false).
		AddItem(nil, 0, 1, false)
}

// Run drives the engine at the configured frame rate until the player
// quits or ctx is cancelled.
func (g *GUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go g.loop(ctx)

	return g.app.Run()
}

func (g *GUI) loop(ctx context.Context) {
	t := time.NewTicker(time.Second / time.Duration(g.fps))
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			g.app.Stop()
			return
		case now := <-t.C:
			dt := now.Sub(last)
			last = now

			g.app.QueueUpdateDraw(func() {
				g.Step(dt)
			})
		}
	}
}

func (g *GUI) Stop() {
	g.app.Stop()
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if quitKey(g.game.State(), ev) {
		g.app.Stop()
		return nil
	}

	if a, ok := Decode(g.game.State(), ev); ok {
		g.pending = append(g.pending, a)
	}
	return nil
}

// Step advances the engine by dt with the actions received since the
// previous step and redraws.
func (g *GUI) Step(dt time.Duration) {
	actions := g.pending
	g.pending = nil

	g.game.Tick(dt, actions...)

	for _, e := range g.game.DrainEffects() {
		g.particles = append(g.particles, particlesFor(g.rand, e)...)
	}
	g.particles = updateParticles(g.particles)

	g.observe()
	g.draw()
}

// observe tracks state transitions that matter to the front end
func (g *GUI) observe() {
	s := g.game.State()
	if s == g.state {
		return
	}

	if s == game.StatePlaying && (g.state == game.StateMenu || g.state == game.StateGameOver) {
		g.recorded = false
		g.newBest = false
		g.particles = nil
	}
	if s == game.StateGameOver {
		g.Record()
	}

	g.state = s
}

// Record stores the current run's score as a best score once per run and
// returns the run result. newBest reports whether the run set a best.
func (g *GUI) Record() (r game.Result, ok bool, newBest bool) {
	r, ok = g.game.Result()
	if !ok {
		return r, false, false
	}

	if !g.recorded {
		g.recorded = true
		if g.scores.Record(r.Mode.Key(), r.Score) {
			g.newBest = true
			g.logger.WithFields(log.Fields{"mode": r.Mode, "score": r.Score}).Info("new best score")
		}
	}

	return r, true, g.newBest
}

func (g *GUI) showPage(name string) {
	if name == g.page {
		return
	}

	switch name {
	case pageMenu:
		g.pages.SwitchToPage(pageMenu)
	case pagePlay:
		g.pages.SwitchToPage(pagePlay)
	default:
		g.pages.SwitchToPage(pagePlay)
		g.pages.ShowPage(name)
	}
	g.page = name
}

func (g *GUI) draw() {
	v := g.game.View()

	switch v.State {
	case game.StateMenu:
		g.menu.SetText(g.render.Menu(v.Mode, g.scores))
		g.showPage(pageMenu)
		return
	case game.StatePaused:
		g.paus.SetText(g.render.Pause())
		g.showPage(pagePause)
	case game.StateGameOver:
		g.over.SetText(g.render.GameOver(v, g.newBest))
		g.showPage(pageOver)
	default:
		g.showPage(pagePlay)
	}

	g.info.SetText(g.render.ModeInfo(v.Mode))
	g.mtx.SetText(g.render.Board(v, g.particles))
	g.side.SetText(g.render.Side(v, g.nickname, g.scores.Best(v.Mode.Key())))
}
