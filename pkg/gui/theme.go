package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string
	Title      tcell.Color
	Text       tcell.Color
	Label      tcell.Color
	Border     tcell.Color
	Selected   tcell.Color
	Hint       tcell.Color
	Score      tcell.Color
	Level      tcell.Color
	Lines      tcell.Color
	Timer      tcell.Color
	TimerLow   tcell.Color
	ProgressFg tcell.Color
	ProgressBg tcell.Color
	Win        tcell.Color
	Lose       tcell.Color
	Garbage    tcell.Color
	Disabled   tcell.Color

	// Pieces is indexed by mino.PieceType
	Pieces [7]tcell.Color
}

// fmtHex returns the tview color name for a color value. ColorDefault
// maps to the reset tag instead of black.
func fmtHex(v int32) string {
	if v == -1 {
		return "-"
	}
	return fmt.Sprintf("#%06x", v)
}

// tag returns a tview color tag for c
func tag(c tcell.Color) string {
	return "[" + fmtHex(c.Hex()) + "]"
}

// BlockColor returns the color used to draw b
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	if b == mino.BlockGarbage {
		return t.Garbage
	}
	for _, pt := range mino.AllPieceTypes {
		if pt.Block() == b.Solid() {
			return t.Pieces[pt]
		}
	}
	return tcell.ColorDefault
}

// ThemeNeon is the default theme
var ThemeNeon = Theme{
	Name:       "neon",
	Title:      tcell.NewRGBColor(0, 255, 255),
	Text:       tcell.NewRGBColor(240, 240, 255),
	Label:      tcell.NewRGBColor(180, 200, 255),
	Border:     tcell.NewRGBColor(100, 120, 200),
	Selected:   tcell.NewRGBColor(255, 255, 120),
	Hint:       tcell.NewRGBColor(180, 200, 255),
	Score:      tcell.NewRGBColor(255, 255, 120),
	Level:      tcell.NewRGBColor(80, 255, 180),
	Lines:      tcell.NewRGBColor(0, 255, 255),
	Timer:      tcell.NewRGBColor(255, 255, 120),
	TimerLow:   tcell.NewRGBColor(255, 80, 120),
	ProgressFg: tcell.NewRGBColor(80, 255, 180),
	ProgressBg: tcell.NewRGBColor(40, 50, 80),
	Win:        tcell.NewRGBColor(80, 255, 180),
	Lose:       tcell.NewRGBColor(255, 80, 120),
	Garbage:    tcell.NewRGBColor(187, 187, 187),
	Disabled:   tcell.NewRGBColor(60, 70, 100),
	Pieces: [7]tcell.Color{
		mino.PieceI: tcell.NewRGBColor(0, 255, 255),
		mino.PieceO: tcell.NewRGBColor(255, 255, 180),
		mino.PieceT: tcell.NewRGBColor(200, 120, 255),
		mino.PieceS: tcell.NewRGBColor(120, 255, 180),
		mino.PieceZ: tcell.NewRGBColor(255, 120, 180),
		mino.PieceJ: tcell.NewRGBColor(120, 180, 255),
		mino.PieceL: tcell.NewRGBColor(255, 200, 80),
	},
}
