package scheme

import (
	"fmt"

	"github.com/katalvlaran/gammapath/energy"
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddLevel appends a level and returns its index.
func (b *Builder) AddLevel(e energy.Energy, line int) int {
	idx := len(b.levels)
	b.levels = append(b.levels, Level{Index: idx, Energy: e, Line: line})

	return idx
}

// AddGamma appends a gamma emitted by the level at origin and returns its index.
func (b *Builder) AddGamma(e energy.Energy, origin, line int) (int, error) {
	if origin < 0 || origin >= len(b.levels) {
		return NoLevel, fmt.Errorf("%w: %d", ErrUnknownLevel, origin)
	}
	idx := len(b.gammas)
	b.gammas = append(b.gammas, Gamma{Index: idx, Energy: e, Origin: origin, Line: line})

	return idx, nil
}

// Build freezes the accumulated records into a Scheme. The Builder may keep
// being used afterwards; the returned Scheme does not share its slices.
// Complexity: O(L + G).
func (b *Builder) Build() *Scheme {
	s := &Scheme{
		levels:   append([]Level(nil), b.levels...),
		gammas:   append([]Gamma(nil), b.gammas...),
		byOrigin: make([][]int, len(b.levels)),
		ground:   NoLevel,
	}
	for _, g := range s.gammas {
		s.byOrigin[g.Origin] = append(s.byOrigin[g.Origin], g.Index)
	}
	for _, l := range s.levels {
		if l.Energy.IsGround() {
			s.ground = l.Index
			break
		}
	}

	return s
}

// LevelCount returns the number of levels.
func (s *Scheme) LevelCount() int { return len(s.levels) }

// GammaCount returns the number of gammas.
func (s *Scheme) GammaCount() int { return len(s.gammas) }

// Levels returns a copy of all levels in registry order.
func (s *Scheme) Levels() []Level {
	return append([]Level(nil), s.levels...)
}

// Gammas returns a copy of all gammas in registry order.
func (s *Scheme) Gammas() []Gamma {
	return append([]Gamma(nil), s.gammas...)
}

// Level returns the level at index i.
func (s *Scheme) Level(i int) (Level, bool) {
	if i < 0 || i >= len(s.levels) {
		return Level{}, false
	}

	return s.levels[i], true
}

// Gamma returns the gamma at index i.
func (s *Scheme) Gamma(i int) (Gamma, bool) {
	if i < 0 || i >= len(s.gammas) {
		return Gamma{}, false
	}

	return s.gammas[i], true
}

// GammasFrom returns the gammas emitted by the level at index level, in file order.
func (s *Scheme) GammasFrom(level int) []Gamma {
	if level < 0 || level >= len(s.byOrigin) {
		return nil
	}
	ids := s.byOrigin[level]
	out := make([]Gamma, len(ids))
	for i, id := range ids {
		out[i] = s.gammas[id]
	}

	return out
}

// Ground returns the first level with exactly zero energy.
func (s *Scheme) Ground() (Level, bool) {
	if s.ground == NoLevel {
		return Level{}, false
	}

	return s.levels[s.ground], true
}

// LevelEnergies returns the energies of all levels in registry order.
func (s *Scheme) LevelEnergies() []energy.Energy {
	out := make([]energy.Energy, len(s.levels))
	for i, l := range s.levels {
		out[i] = l.Energy
	}

	return out
}

// GammaMap returns gamma energy text → origin level energy text.
// Gammas sharing the same text collapse to the last one in file order;
// use GammasFrom or Gammas when every transition matters.
func (s *Scheme) GammaMap() map[string]string {
	out := make(map[string]string, len(s.gammas))
	for _, g := range s.gammas {
		out[g.Energy.Text] = s.levels[g.Origin].Energy.Text
	}

	return out
}
