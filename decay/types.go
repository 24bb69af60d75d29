package decay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/scheme"
)

// DefaultTolerance is the energy slack used when none is configured.
const DefaultTolerance = 1.0

var (
	// ErrSchemeNil is returned when a nil *scheme.Scheme is passed in.
	ErrSchemeNil = errors.New("decay: scheme is nil")

	// ErrBadTolerance is returned when ε is zero, negative, NaN or infinite.
	ErrBadTolerance = errors.New("decay: tolerance must be a positive finite number")

	// ErrUnresolvedSuccessor indicates no level lies within ε of level − gamma.
	ErrUnresolvedSuccessor = errors.New("decay: unresolved successor level")

	// ErrCyclicDecayPath indicates a walk resolved to a level it already visited.
	ErrCyclicDecayPath = errors.New("decay: cyclic decay path")

	// ErrIncompletePath indicates a walk ended before the ground state.
	ErrIncompletePath = errors.New("decay: incomplete decay path")
)

// TieBreak selects among several levels inside the tolerance window.
type TieBreak int

const (
	// Closest picks the level nearest to level − gamma; equal distances go to
	// the smallest registry index.
	Closest TieBreak = iota

	// FirstMatch picks the smallest registry index inside the window.
	FirstMatch
)

// String returns the configuration name of t.
func (t TieBreak) String() string {
	switch t {
	case Closest:
		return "closest"
	case FirstMatch:
		return "first"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "closest" and "first" to their TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "closest":
		return Closest, nil
	case "first", "first-match", "firstmatch":
		return FirstMatch, nil
	default:
		return Closest, fmt.Errorf("decay: unknown tie-break %q", s)
	}
}

// Option configures Reconstruct and DetectCycles.
type Option func(*Options)

// Options holds configurable parameters for path reconstruction.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Tolerance is ε, the half-width of the open matching window.
	Tolerance float64

	// TieBreak resolves several levels inside the window.
	TieBreak TieBreak

	// MaxSteps caps the transitions of one walk. Zero or negative means the
	// number of levels in the scheme.
	MaxSteps int

	// Workers is the number of concurrent walks. Values below 2 walk sequentially.
	Workers int

	// OnStep, if non-nil, is called for every resolved transition before it
	// is checked against the visited set. Returning an error aborts
	// Reconstruct. With Workers > 1 it must be safe for concurrent use.
	OnStep func(Step) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - Tolerance 1.0
//   - Closest tie-break
//   - MaxSteps bounded by the level count
//   - Sequential walking, no hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Tolerance: DefaultTolerance,
		TieBreak:  Closest,
		MaxSteps:  0,
		Workers:   1,
		OnStep:    nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance sets ε.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithTieBreak sets the tie-break policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithMaxSteps caps the number of transitions per walk.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithWorkers walks up to n anchors concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOnStep installs fn as the per-transition hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Step is one transition From --Gamma--> To.
type Step struct {
	From  scheme.Level
	Gamma scheme.Gamma
	To    scheme.Level
}

// Residual returns |From − Gamma − To|, the mismatch absorbed by ε.
func (s Step) Residual() float64 {
	r := s.From.Energy.Value - s.Gamma.Energy.Value - s.To.Energy.Value
	if r < 0 {
		return -r
	}

	return r
}

// Path is a chain of transitions from an excited level to the ground state.
type Path struct {
	Steps []Step
}

// Start returns the level the path begins at.
func (p Path) Start() scheme.Level { return p.Steps[0].From }

// Anchor returns the first gamma of the path.
func (p Path) Anchor() scheme.Gamma { return p.Steps[0].Gamma }

// Tail returns the last level of the path.
func (p Path) Tail() scheme.Level { return p.Steps[len(p.Steps)-1].To }

// Gammas returns the gammas of the path in emission order.
func (p Path) Gammas() []scheme.Gamma {
	out := make([]scheme.Gamma, len(p.Steps))
	for i, st := range p.Steps {
		out[i] = st.Gamma
	}

	return out
}

// Sequence returns the alternating energies [Level, Gamma, Level, ..., Level].
func (p Path) Sequence() []energy.Energy {
	if len(p.Steps) == 0 {
		return nil
	}
	out := make([]energy.Energy, 0, 2*len(p.Steps)+1)
	out = append(out, p.Steps[0].From.Energy)
	for _, st := range p.Steps {
		out = append(out, st.Gamma.Energy, st.To.Energy)
	}

	return out
}

// Keys returns record identities in path order: "L<text>" for levels,
// "G<text>" for gammas. These match the record-type column plus energy
// field of the source lines.
func (p Path) Keys() []string {
	seq := p.Sequence()
	out := make([]string, len(seq))
	for i, e := range seq {
		if i%2 == 0 {
			out[i] = "L" + e.Text
		} else {
			out[i] = "G" + e.Text
		}
	}

	return out
}

// String renders the path as "1250.0 -[665.0]-> 585.1 -[585.1]-> 0.0".
func (p Path) String() string {
	if len(p.Steps) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.Steps[0].From.Energy.Text)
	for _, st := range p.Steps {
		sb.WriteString(" -[")
		sb.WriteString(st.Gamma.Energy.Text)
		sb.WriteString("]-> ")
		sb.WriteString(st.To.Energy.Text)
	}

	return sb.String()
}

// PathError reports a (start level, anchor gamma) combination that could not
// be walked to the ground state.
type PathError struct {
	Start  scheme.Level
	Anchor scheme.Gamma

	// Step is the number of transitions completed before the failure.
	Step int

	// Partial holds the transitions completed before the failure.
	Partial Path

	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("decay: level %s gamma %s: step %d: %v",
		e.Start.Energy.Text, e.Anchor.Energy.Text, e.Step, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Result collects the outcome of Reconstruct.
type Result struct {
	// Paths lists completed paths ordered by start level, then anchor gamma.
	Paths []Path

	// Failures lists skipped combinations in the same order.
	Failures []*PathError
}

// Err joins all failures, or returns nil when every walk completed.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}

	return errors.Join(errs...)
}
