package gui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/score"
)

const (
	// blockWidth is the number of terminal columns a matrix cell uses
	blockWidth = 2

	progressWidth = 20
	timerLowAt    = 10 * time.Second
	particleRune  = '•'
)

var (
	renderHLine    = string(tcell.RuneHLine)
	renderVLine    = string(tcell.RuneVLine)
	renderULCorner = string(tcell.RuneULCorner)
	renderURCorner = string(tcell.RuneURCorner)
	renderLLCorner = string(tcell.RuneLLCorner)
	renderLRCorner = string(tcell.RuneLRCorner)
)

// Renderer turns engine snapshots into tview tagged text
type Renderer struct {
	Theme Theme

	block map[mino.Block]string
	buf   bytes.Buffer
}

func NewRenderer(t Theme) *Renderer {
	r := &Renderer{Theme: t, block: make(map[mino.Block]string)}

	r.block[mino.BlockNone] = strings.Repeat(" ", blockWidth)
	for b := mino.BlockGarbage; b <= mino.BlockSolidOrange; b++ {
		r.block[b] = tag(t.BlockColor(b)) + strings.Repeat(string(b.Rune()), blockWidth) + "[-]"
	}

	return r
}

// Board renders the matrix of v with the ghost, the falling piece and
// particles drawn over it.
func (r *Renderer) Board(v game.View, particles []*Particle) string {
	m := v.Matrix.Clone()

	if v.HasCurrent && v.State != game.StateMenu {
		ghost := v.Ghost.Block().Ghost()
		for _, c := range v.Ghost.Cells() {
			if m.Empty(c) {
				m.SetBlock(c.X, c.Y, ghost)
			}
		}
		for _, c := range v.Current.Cells() {
			m.SetBlock(c.X, c.Y, v.Current.Block())
		}
	}

	sparks := make(map[mino.Point]mino.Block)
	for _, p := range particles {
		c := p.Cell()
		if m.Empty(c) {
			sparks[c] = p.Block
		}
	}

	r.buf.Reset()
	r.border(renderULCorner, renderURCorner, m.W)

	for y := 0; y < m.H; y++ {
		r.buf.WriteString(tag(r.Theme.Border) + renderVLine + "[-]")
		for x := 0; x < m.W; x++ {
			b := m.Block(x, y)
			if spark, ok := sparks[mino.Point{X: x, Y: y}]; ok && b == mino.BlockNone {
				r.buf.WriteString(tag(r.Theme.BlockColor(spark)) + string(particleRune) + "[-]" + strings.Repeat(" ", blockWidth-1))
				continue
			}
			r.buf.WriteString(r.block[b])
		}
		r.buf.WriteString(tag(r.Theme.Border) + renderVLine + "[-]\n")
	}

	r.border(renderLLCorner, renderLRCorner, m.W)

	return r.buf.String()
}

func (r *Renderer) border(left, right string, w int) {
	r.buf.WriteString(tag(r.Theme.Border) + left)
	r.buf.WriteString(strings.Repeat(renderHLine, w*blockWidth))
	r.buf.WriteString(right + "[-]\n")
}

// Preview renders a piece type in its spawn rotation
func (r *Renderer) Preview(t mino.PieceType, dim bool) string {
	shape := t.Shape(0).Origin()
	w, h := shape.Size()

	cell := r.block[t.Block()]
	if dim {
		cell = tag(r.Theme.Disabled) + strings.Repeat(string(t.Block().Rune()), blockWidth) + "[-]"
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString("  ")
		for x := 0; x < w; x++ {
			if shape.HasPoint(mino.Point{X: x, Y: y}) {
				b.WriteString(cell)
			} else {
				b.WriteString(r.block[mino.BlockNone])
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

// Side renders the score panel next to the matrix
func (r *Renderer) Side(v game.View, nick string, best int) string {
	t := r.Theme

	var b strings.Builder
	label := func(s string) {
		b.WriteString(tag(t.Label) + s + "[-]\n")
	}

	label("PLAYER")
	b.WriteString(tag(t.Text) + nick + "[-]\n\n")

	label("SCORE")
	b.WriteString(tag(t.Score) + FormatScore(v.Score) + "[-]\n\n")

	label("LEVEL")
	b.WriteString(tag(t.Level) + strconv.Itoa(v.Level) + "[-]\n\n")

	label("LINES")
	b.WriteString(tag(t.Lines) + strconv.Itoa(v.Lines) + "[-]\n\n")

	if v.Timed {
		label("TIME LEFT")
		c := t.Timer
		if v.Remaining <= timerLowAt {
			c = t.TimerLow
		}
		b.WriteString(tag(c) + FormatRemaining(v.Remaining) + "[-]\n\n")
	}
	if v.TargetLines > 0 {
		label("PROGRESS")
		b.WriteString(r.ProgressBar(v.Progress, progressWidth) + "\n")
		b.WriteString(tag(t.Text) + fmt.Sprintf("%d/%d lines", v.Lines, v.TargetLines) + "[-]\n\n")
	}

	label("NEXT")
	if v.HasNext {
		b.WriteString(r.Preview(v.Next.Type, false))
	}
	b.WriteRune('\n')

	label("HOLD")
	if v.HasHold {
		b.WriteString(r.Preview(v.Hold.Type, !v.CanHold))
	}
	b.WriteRune('\n')

	label("BEST")
	b.WriteString(tag(t.Score) + FormatScore(best) + "[-]\n")

	return b.String()
}

// ProgressBar renders fraction f as a bar of the given width
func (r *Renderer) ProgressBar(f float64, width int) string {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}

	filled := int(f * float64(width))
	return tag(r.Theme.ProgressFg) + strings.Repeat("█", filled) + "[-]" +
		tag(r.Theme.ProgressBg) + strings.Repeat("█", width-filled) + "[-]"
}

// Menu renders the mode selection screen
func (r *Renderer) Menu(selected game.Mode, scores score.Scores) string {
	t := r.Theme

	var b strings.Builder
	b.WriteString(tag(t.Title) + "B L O C K T E R M" + "[-]\n\n\n")

	for _, m := range game.Modes {
		p := m.Policy()
		if m == selected {
			b.WriteString(tag(t.Selected) + "> " + p.Title + "[-]")
		} else {
			b.WriteString(tag(t.Text) + "  " + p.Title + "[-]")
		}
		b.WriteString(tag(t.Hint) + "  best " + FormatScore(scores.Best(m.Key())) + "[-]\n")
	}

	b.WriteString("\n" + tag(t.Label) + selected.Policy().Description + "[-]\n\n\n")

	for _, line := range []string{
		"Use ARROW KEYS or HJKL to move and rotate",
		"SPACE to hard drop",
		"C to hold piece",
		"P to pause",
		"ENTER to start game",
		"ESC or Q to quit",
	} {
		b.WriteString(tag(t.Hint) + line + "[-]\n")
	}

	return b.String()
}

// ModeInfo renders the one line mode summary shown above the matrix
func (r *Renderer) ModeInfo(m game.Mode) string {
	p := m.Policy()
	return tag(r.Theme.Label) + strings.SplitN(p.Title, " ", 2)[0] + ": " + p.Description + "[-]"
}

func (r *Renderer) Pause() string {
	return tag(r.Theme.Text) + "PAUSED\n\n" + "[-]" + tag(r.Theme.Hint) + "Press P to resume" + "[-]"
}

// GameOver renders the end of run overlay
func (r *Renderer) GameOver(v game.View, newBest bool) string {
	t := r.Theme

	var b strings.Builder
	if v.Won {
		b.WriteString(tag(t.Win) + "YOU WIN!" + "[-]\n\n")
	} else {
		b.WriteString(tag(t.Lose) + "GAME OVER" + "[-]\n\n")
	}

	b.WriteString(tag(t.Text) + "Final Score: " + FormatScore(v.Score) + "[-]\n")
	if newBest {
		b.WriteString(tag(t.Score) + "NEW BEST!" + "[-]\n")
	}

	b.WriteString("\n" + tag(t.Hint) + "Press ENTER to restart" + "[-]\n")
	b.WriteString(tag(t.Hint) + "Press ESC for menu" + "[-]")

	return b.String()
}

// FormatScore renders n with thousands separators
func FormatScore(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + FormatScore(-n)
	}

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatRemaining renders the time left, rounded up to whole seconds
func FormatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02ds", secs)
}
