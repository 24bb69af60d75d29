package energy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyText is returned by Parse for a blank field.
	ErrEmptyText = errors.New("energy: empty text")

	// ErrNotDecimal is returned by Parse when the field is not a finite decimal.
	ErrNotDecimal = errors.New("energy: not a decimal value")
)

// Energy is an immutable energy value together with its source text.
type Energy struct {
	// Value is the parsed magnitude.
	Value float64

	// Text is the trimmed field exactly as it appeared in the record.
	Text string
}

// Parse trims text and parses it as a decimal.
// Complexity: O(len(text)).
func Parse(text string) (Energy, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return Energy{}, ErrEmptyText
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Energy{}, fmt.Errorf("%w: %q", ErrNotDecimal, t)
	}

	return Energy{Value: v, Text: t}, nil
}

// MustParse is Parse for literals in tests and examples. It panics on error.
func MustParse(text string) Energy {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return e
}

// IsGround reports whether e is exactly zero.
func (e Energy) IsGround() bool {
	return e.Value == 0
}

// Within reports whether e lies in the open interval (target-eps, target+eps).
func (e Energy) Within(target, eps float64) bool {
	return e.Value > target-eps && e.Value < target+eps
}

// Digits returns Text up to, excluding, the first '.'.
// "1234.5" gives "1234", "0.0" gives "0", "50" gives "50".
func (e Energy) Digits() string {
	if i := strings.IndexByte(e.Text, '.'); i >= 0 {
		return e.Text[:i]
	}

	return e.Text
}

// String returns Text.
func (e Energy) String() string {
	return e.Text
}
