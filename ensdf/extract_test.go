package ensdf_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gammapath/ensdf"
)

// rec renders a fixed-column record: NUCID in columns 1-5, comment marker in
// column 7, record type in column 8, energy from column 10.
func rec(nuc string, typ byte, e string) string {
	return nuc + strings.Repeat(" ", 5-len(nuc)) + "  " + string(typ) + " " + e
}

func loadSample(t *testing.T) []string {
	t.Helper()
	b, err := os.ReadFile("../testdata/97sr.ens")
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestParseLine_Classifies(t *testing.T) {
	r, ok, err := ensdf.ParseLine(3, rec("97SR", 'L', "167.0      3/2+"), "97SR")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ensdf.KindLevel, r.Kind)
	assert.Equal(t, "167.0", r.Energy.Text)
	assert.Equal(t, "97SR", r.Nuclide)
	assert.Equal(t, 3, r.Line)

	r, ok, err = ensdf.ParseLine(0, rec("97SR", 'G', "418.1     3"), "97SR")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ensdf.KindGamma, r.Kind)
	assert.Equal(t, 418.1, r.Energy.Value)
}

func TestParseLine_Filtered(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		" 97SR    97RB B- DECAY",
		"97SR   N 1.0",
		"97SR 2 G FL=167.0",
		"97SR  cG E(A) from coincidence",
		rec("97RBX", 'L', "0.0"), // identifier width mismatch
	} {
		_, ok, err := ensdf.ParseLine(0, line, "97SR")
		assert.False(t, ok, line)
		assert.NoError(t, err, line)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	_, ok, err := ensdf.ParseLine(4, rec("97SR", 'L', "100.0+X"), "97SR")
	assert.True(t, ok)
	var perr *ensdf.RecordParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 4, perr.Line)
	assert.Equal(t, ensdf.KindLevel, perr.Kind)
	assert.ErrorIs(t, err, ensdf.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 5")

	_, ok, err = ensdf.ParseLine(0, "97SR   G", "97SR")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ensdf.ErrMalformedRecord)
}

func TestExtract_Sample(t *testing.T) {
	ex, err := ensdf.Extract(loadSample(t), "97SR")
	require.NoError(t, err)
	assert.Empty(t, ex.Skipped)

	s := ex.Scheme
	var levels []string
	for _, e := range s.LevelEnergies() {
		levels = append(levels, e.Text)
	}
	assert.Equal(t, []string{"0.0", "167.0", "585.1", "1250.0"}, levels)
	assert.Equal(t, 5, s.GammaCount())
	assert.Len(t, ex.Records, 9)

	// gamma → origin binding follows file position
	assert.Equal(t, map[string]string{
		"167.0":  "167.0",
		"418.1":  "585.1",
		"585.1":  "585.1",
		"665.0":  "1250.0",
		"1083.0": "1250.0",
	}, s.GammaMap())

	from := s.GammasFrom(3)
	require.Len(t, from, 2)
	assert.Equal(t, "665.0", from[0].Energy.Text)
	assert.Equal(t, "1083.0", from[1].Energy.Text)
}

func TestExtract_EmptyInput(t *testing.T) {
	ex, err := ensdf.Extract(nil, "97SR")
	require.NoError(t, err)
	assert.Equal(t, 0, ex.Scheme.LevelCount())
	assert.Equal(t, 0, ex.Scheme.GammaCount())
}

func TestExtract_EmptyDaughter(t *testing.T) {
	_, err := ensdf.Extract([]string{rec("97SR", 'L', "0.0")}, "")
	assert.ErrorIs(t, err, ensdf.ErrEmptyDaughter)
}

func TestExtract_OrphanAndBrokenLevel(t *testing.T) {
	lines := []string{
		rec("97SR", 'G', "10.0"), // before any level
		rec("97SR", 'L', "0.0"),
		rec("97SR", 'L', "100.0+X"),
		rec("97SR", 'G', "100.0"), // belongs to the broken level
		rec("97SR", 'L', "50.0"),
		rec("97SR", 'G', "50.0"),
	}
	ex, err := ensdf.Extract(lines, "97SR")
	require.NoError(t, err)
	require.Len(t, ex.Skipped, 3)
	assert.ErrorIs(t, ex.Skipped[0], ensdf.ErrOrphanGamma)
	assert.ErrorIs(t, ex.Skipped[1], ensdf.ErrMalformedRecord)
	assert.ErrorIs(t, ex.Skipped[2], ensdf.ErrOrphanGamma)
	assert.Equal(t, 3, ex.Skipped[2].Line)

	assert.Equal(t, 2, ex.Scheme.LevelCount())
	assert.Equal(t, map[string]string{"50.0": "50.0"}, ex.Scheme.GammaMap())
}

func TestExtract_Strict(t *testing.T) {
	lines := []string{
		rec("97SR", 'L', "0.0"),
		rec("97SR", 'L', "abc"),
	}
	_, err := ensdf.Extract(lines, "97SR", ensdf.WithStrict())
	var perr *ensdf.RecordParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
}
