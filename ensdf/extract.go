package ensdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/scheme"
)

// ParseLine classifies line n. ok is false for lines that are not level or
// gamma records of daughter. A record with a bad energy field returns
// ok == true and a *RecordParseError.
// Complexity: O(len(line)).
func ParseLine(n int, line, daughter string) (Record, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || daughter == "" || len(fields[0]) != len(daughter) {
		return Record{}, false, nil
	}

	var kind Kind
	switch fields[1] {
	case "L":
		kind = KindLevel
	case "G":
		kind = KindGamma
	default:
		return Record{}, false, nil
	}

	if len(fields) < 3 {
		return Record{}, true, &RecordParseError{
			Line: n, Text: line, Kind: kind,
			Err: fmt.Errorf("%w: missing energy field", ErrMalformedRecord),
		}
	}
	e, err := energy.Parse(fields[2])
	if err != nil {
		return Record{}, true, &RecordParseError{
			Line: n, Text: line, Kind: kind,
			Err: fmt.Errorf("%w: %w", ErrMalformedRecord, err),
		}
	}

	return Record{Kind: kind, Nuclide: fields[0], Energy: e, Line: n}, true, nil
}

// Extract scans lines in file order and builds the decay scheme of daughter.
// Each gamma is bound to the most recent valid level record above it.
// Returns ErrEmptyDaughter, or with WithStrict the first *RecordParseError.
// Complexity: O(total input length).
func Extract(lines []string, daughter string, opts ...Option) (*Extraction, error) {
	// 1. Validate input
	if daughter == "" {
		return nil, ErrEmptyDaughter
	}

	// 2. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	// 3. Forward scan with a current-level cursor
	b := scheme.NewBuilder()
	res := &Extraction{}
	cursor := scheme.NoLevel

	skip := func(perr *RecordParseError) error {
		if eopts.Strict {
			return perr
		}
		res.Skipped = append(res.Skipped, perr)

		return nil
	}

	for n, line := range lines {
		rec, ok, err := ParseLine(n, line, daughter)
		if !ok {
			continue
		}
		if err != nil {
			var perr *RecordParseError
			if !errors.As(err, &perr) {
				return nil, err
			}
			if perr.Kind == KindLevel {
				// gammas below a broken level must not drift to the one above it
				cursor = scheme.NoLevel
			}
			if serr := skip(perr); serr != nil {
				return nil, serr
			}
			continue
		}

		switch rec.Kind {
		case KindLevel:
			cursor = b.AddLevel(rec.Energy, n)
		case KindGamma:
			if cursor == scheme.NoLevel {
				perr := &RecordParseError{Line: n, Text: line, Kind: KindGamma, Err: ErrOrphanGamma}
				if serr := skip(perr); serr != nil {
					return nil, serr
				}
				continue
			}
			if _, err = b.AddGamma(rec.Energy, cursor, n); err != nil {
				return nil, fmt.Errorf("ensdf: line %d: %w", n+1, err)
			}
		}
		res.Records = append(res.Records, rec)
	}

	// 4. Freeze
	res.Scheme = b.Build()

	return res, nil
}
