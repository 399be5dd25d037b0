package utils

import (
	"context"

	"github.com/agnivade/levenshtein"
)

// FindClosestString returns the candidate with the smallest edit distance to v, candidates
// with more than maxDifferences differences are ignored. The search stops early if ctx is done.
func FindClosestString(ctx context.Context, candidates []string, v string, maxDifferences int) (closest string, distance int, ok bool) {
	distance = maxDifferences + 1

	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			return "", 0, false
		default:
		}

		d := levenshtein.ComputeDistance(candidate, v)
		if d < distance {
			closest = candidate
			distance = d
			ok = true
		}
	}

	if !ok {
		distance = 0
	}
	return
}
