package scheme

import (
	"errors"

	"github.com/katalvlaran/gammapath/energy"
)

// ErrUnknownLevel indicates a gamma origin index outside the level registry.
var ErrUnknownLevel = errors.New("scheme: unknown origin level")

// NoLevel is the index value meaning "no level".
const NoLevel = -1

// Level is a discrete excitation energy of the daughter nuclide.
type Level struct {
	// Index is the position of the level in the registry (file order).
	Index int

	// Energy of the level.
	Energy energy.Energy

	// Line is the 0-based line of the level record in the source file.
	Line int
}

// Gamma is a single gamma-ray transition.
type Gamma struct {
	// Index is the position of the gamma in the registry (file order).
	Index int

	// Energy of the emitted photon.
	Energy energy.Energy

	// Origin is the Index of the level that emits this gamma.
	Origin int

	// Line is the 0-based line of the gamma record in the source file.
	Line int
}

// Scheme is the frozen registry produced by Builder.Build.
// All methods are safe for concurrent use.
type Scheme struct {
	levels []Level
	gammas []Gamma

	// byOrigin[levelIndex] lists gamma indexes emitted by that level, file order.
	byOrigin [][]int

	// ground is the index of the first level with exactly zero energy, or NoLevel.
	ground int
}

// Builder accumulates levels and gammas. It is not safe for concurrent use.
type Builder struct {
	levels []Level
	gammas []Gamma
}
