package gui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// quickJumpIndex matches typed text against piece names: exact match beats
// prefix match beats close-enough edit distance. Returns -1 when nothing is
// close enough to be worth jumping to.
func quickJumpIndex(names []string, typed string) int {
	typed = strings.ToLower(strings.TrimSpace(typed))
	if typed == "" {
		return -1
	}
	best := -1
	bestScore := 0.0
	for i, name := range names {
		cand := strings.ToLower(name)
		score := 0.0
		switch {
		case cand == typed:
			score = 1.0
		case strings.HasPrefix(cand, typed):
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(typed, cand)
			if dist > editDistanceLimit(len(cand)) {
				continue
			}
			score = 0.7 - 0.08*float64(dist)
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

func editDistanceLimit(candLen int) int {
	switch {
	case candLen <= 3:
		return 1
	case candLen <= 6:
		return 2
	default:
		return 3
	}
}
