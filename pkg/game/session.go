package game

import (
	"time"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

// Session is the state of a single run. It is owned by Game.
type Session struct {
	Matrix *mino.Matrix

	Current    mino.Piece
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

	Clock       *Clock
	dropElapsed time.Duration
}

func newSession(w int, h int, mode Mode) *Session {
	return &Session{
		Matrix:       mino.NewMatrix(w, h),
		CanHold:      true,
		Level:        1,
		DropInterval: InitialDropInterval,
		Clock:        NewClock(mode.Policy().Duration),
	}
}
