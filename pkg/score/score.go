package score

import (
	"context"
	"fmt"
	"strings"
)

// Keys of the best score mapping, one per game mode.
const (
	KeyClassic    = "classic"
	KeyTimeAttack = "time_attack"
	KeyMarathon   = "marathon"
)

// Scores maps a mode key to the best score achieved in that mode.
type Scores map[string]int

// DefaultScores returns a mapping with every mode at zero.
func DefaultScores() Scores {
	return Scores{KeyClassic: 0, KeyTimeAttack: 0, KeyMarathon: 0}
}

func (s Scores) Best(mode string) int {
	return s[mode]
}

// Record stores score for mode if it beats the current best and reports
// whether it did.
func (s Scores) Record(mode string, score int) bool {
	if score <= s[mode] {
		return false
	}

	s[mode] = score
	return true
}

func (s Scores) clamp() {
	for k, v := range s {
		if v < 0 {
			s[k] = 0
		}
	}
}

// Store persists best scores. Load always returns a usable mapping: on
// failure it is DefaultScores and the error says why.
type Store interface {
	Load(ctx context.Context) (Scores, error)
	Save(ctx context.Context, scores Scores) error
	Close() error
}

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendJSON, BackendSQLite:
		return b, nil
	default:
		return "", fmt.Errorf("unknown score store %q: expected json or sqlite", s)
	}
}

func Open(ctx context.Context, backend Backend, path string) (Store, error) {
	switch backend {
	case BackendJSON:
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("unknown score store %q", backend)
	}
}
