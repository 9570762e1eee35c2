package game

import "time"

const (
	InitialDropInterval = 1000 * time.Millisecond
	MinDropInterval     = 50 * time.Millisecond
	LevelSpeedup        = 50 * time.Millisecond
	LinesPerLevel       = 10

	SoftDropScore = 1
	HardDropScore = 2
)

var lineScores = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

// LineScore returns the score for clearing count rows at the given
// level. Counts outside 1 to 4 score nothing.
func LineScore(count int, level int) int {
	return lineScores[count] * level
}

func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

func DropInterval(level int) time.Duration {
	d := InitialDropInterval - time.Duration(level-1)*LevelSpeedup
	if d < MinDropInterval {
		return MinDropInterval
	}
	return d
}
