package game

import (
	"fmt"
	"strings"
	"time"
)

type Mode int

const (
	ModeClassic Mode = iota
	ModeTimeAttack
	ModeMarathon
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeClassic, ModeTimeAttack, ModeMarathon}

const (
	TimeAttackDuration      = 120 * time.Second
	MarathonTargetLines     = 150
	MarathonCompletionBonus = 5000
)

// Policy holds the rules that differ between modes. A zero Duration or
// TargetLines means the mode has no limit of that kind.
type Policy struct {
	Key         string
	Title       string
	Description string

	Duration        time.Duration
	TargetLines     int
	CompletionBonus int
}

var policies = [...]Policy{
	ModeClassic: {
		Key:         "classic",
		Title:       "Classic Mode",
		Description: "Play endlessly, speed increases every 10 lines.",
	},
	ModeTimeAttack: {
		Key:         "time_attack",
		Title:       "Time Attack (2 min)",
		Description: "Score as high as possible in 2 minutes.",
		Duration:    TimeAttackDuration,
	},
	ModeMarathon: {
		Key:             "marathon",
		Title:           "Marathon (150 lines)",
		Description:     "Clear 150 lines to win.",
		TargetLines:     MarathonTargetLines,
		CompletionBonus: MarathonCompletionBonus,
	},
}

func (m Mode) valid() bool {
	return m >= ModeClassic && int(m) < len(policies)
}

func (m Mode) Policy() Policy {
	if !m.valid() {
		return policies[ModeClassic]
	}
	return policies[m]
}

// Key is the name the mode's best score is persisted under.
func (m Mode) Key() string {
	return m.Policy().Key
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return m.Key()
}

// Next returns the following mode in menu order, wrapping around.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(policies))
}

// Prev returns the preceding mode in menu order, wrapping around.
func (m Mode) Prev() Mode {
	return Mode((int(m) + len(policies) - 1) % len(policies))
}

func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, m := range Modes {
		if m.Key() == name {
			return m, nil
		}
	}

	return ModeClassic, fmt.Errorf("unknown mode %q: expected classic, time_attack or marathon", s)
}

// Finished reports whether the mode ends the run in its current state.
func (p Policy) Finished(s *Session) bool {
	if p.Duration > 0 && s.Clock.Expired() {
		return true
	}
	return p.TargetLines > 0 && s.Lines >= p.TargetLines
}

// Bonus returns the completion bonus earned by the clear that moved the
// line count from linesBefore to its current value. It is paid only on
// the clear that reaches the target.
func (p Policy) Bonus(s *Session, linesBefore int) int {
	if p.TargetLines <= 0 || linesBefore >= p.TargetLines || s.Lines < p.TargetLines {
		return 0
	}
	return p.CompletionBonus
}

// Won reports whether the run reached the mode's line target.
func (p Policy) Won(s *Session) bool {
	return p.TargetLines > 0 && s.Lines >= p.TargetLines
}

// Progress returns the fraction of the mode's limit used so far, or 0 for
// modes without one.
func (p Policy) Progress(s *Session) float64 {
	var f float64
	switch {
	case p.TargetLines > 0:
		f = float64(s.Lines) / float64(p.TargetLines)
	case p.Duration > 0:
		f = s.Clock.Progress()
	}

	if f > 1 {
		f = 1
	}
	return f
}
