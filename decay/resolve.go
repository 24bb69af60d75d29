package decay

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/scheme"
)

// ResolveNextLevel computes level − gamma and returns the registry level whose
// energy lies in the open window (candidate−eps, candidate+eps), choosing
// among several per tb. Returns ErrUnresolvedSuccessor when the window is empty.
// Complexity: O(L).
func ResolveNextLevel(s *scheme.Scheme, level, gamma energy.Energy, eps float64, tb TieBreak) (scheme.Level, error) {
	if s == nil {
		return scheme.Level{}, ErrSchemeNil
	}
	if !validTolerance(eps) {
		return scheme.Level{}, ErrBadTolerance
	}

	candidate := level.Value - gamma.Value
	best := scheme.NoLevel
	bestDist := math.Inf(1)

	for i := 0; i < s.LevelCount(); i++ {
		l, _ := s.Level(i)
		if !l.Energy.Within(candidate, eps) {
			continue
		}
		if tb == FirstMatch {
			return l, nil
		}
		// strict < keeps the smallest index on equal distance
		if d := math.Abs(l.Energy.Value - candidate); d < bestDist {
			best, bestDist = i, d
		}
	}

	if best == scheme.NoLevel {
		return scheme.Level{}, fmt.Errorf("%w: %s - %s = %g, none within ±%g",
			ErrUnresolvedSuccessor, level.Text, gamma.Text, candidate, eps)
	}
	l, _ := s.Level(best)

	return l, nil
}

// validTolerance reports whether eps is a positive finite number.
func validTolerance(eps float64) bool {
	return eps > 0 && !math.IsInf(eps, 0) && !math.IsNaN(eps)
}
