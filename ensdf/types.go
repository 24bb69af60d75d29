package ensdf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/scheme"
)

var (
	// ErrEmptyDaughter is returned when no daughter identifier is given.
	ErrEmptyDaughter = errors.New("ensdf: daughter identifier is empty")

	// ErrMalformedRecord marks a level or gamma record whose energy field is
	// missing or not a decimal.
	ErrMalformedRecord = errors.New("ensdf: malformed record")

	// ErrOrphanGamma marks a gamma record with no preceding level record.
	ErrOrphanGamma = errors.New("ensdf: gamma has no originating level")
)

// Kind is the record-type field of a line.
type Kind byte

const (
	// KindLevel marks a level record.
	KindLevel Kind = 'L'

	// KindGamma marks a gamma record.
	KindGamma Kind = 'G'
)

// String returns the single-letter record type.
func (k Kind) String() string { return string(k) }

// Record is one parsed level or gamma line.
type Record struct {
	Kind    Kind
	Nuclide string
	Energy  energy.Energy
	Line    int // 0-based
}

// RecordParseError reports a line that declares a level or gamma record but
// cannot be read as one.
type RecordParseError struct {
	Line int    // 0-based line number
	Text string // raw line
	Kind Kind
	Err  error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("ensdf: line %d (%s record): %v", e.Line+1, e.Kind, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

// Option configures Extract.
type Option func(*ExtractOptions)

// ExtractOptions holds Extract settings.
type ExtractOptions struct {
	// Strict makes Extract return the first RecordParseError instead of
	// skipping the record.
	Strict bool
}

// DefaultOptions returns lenient extraction settings.
func DefaultOptions() ExtractOptions {
	return ExtractOptions{Strict: false}
}

// WithStrict makes malformed records fatal.
func WithStrict() Option {
	return func(o *ExtractOptions) {
		o.Strict = true
	}
}

// Extraction is the outcome of Extract.
type Extraction struct {
	// Scheme is the frozen level/gamma registry.
	Scheme *scheme.Scheme

	// Records lists every accepted record in file order.
	Records []Record

	// Skipped lists records dropped as malformed or orphaned.
	Skipped []*RecordParseError
}
