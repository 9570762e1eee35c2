package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

// parseMatrix reads a comma separated list of x,y pairs
func parseMatrix(s string) (mino.Mino, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("failed to parse initial matrix: odd number of coordinates")
	}

	var (
		m mino.Mino
		x int
	)
	for i := range tokens {
		token, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse initial matrix on token #%d: %w", i, err)
		}

		if i%2 == 1 {
			if x < 0 || x >= mino.DefaultWidth || token < 0 || token >= mino.DefaultHeight {
				return nil, fmt.Errorf("failed to parse initial matrix: point (%d,%d) out of bounds", x, token)
			}
			m = append(m, mino.Point{X: x, Y: token})
		} else {
			x = token
		}
	}

	return m, nil
}
