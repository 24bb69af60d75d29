package decay_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gammapath/decay"
	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/ensdf"
	"github.com/katalvlaran/gammapath/scheme"
)

// emission is a gamma energy and the text of the level that emits it.
type emission struct {
	Gamma, From string
}

// buildScheme registers levels in the given order, then each gamma under the
// first level whose text matches From.
func buildScheme(t testing.TB, levels []string, gammas []emission) *scheme.Scheme {
	t.Helper()
	b := scheme.NewBuilder()
	idx := make(map[string]int, len(levels))
	for i, l := range levels {
		if _, ok := idx[l]; !ok {
			idx[l] = b.AddLevel(energy.MustParse(l), i)
		} else {
			b.AddLevel(energy.MustParse(l), i)
		}
	}
	for i, g := range gammas {
		origin, ok := idx[g.From]
		require.True(t, ok, "unknown level %s", g.From)
		_, err := b.AddGamma(energy.MustParse(g.Gamma), origin, len(levels)+i)
		require.NoError(t, err)
	}

	return b.Build()
}

// sampleScheme extracts the shared 97Sr fixture.
func sampleScheme(t testing.TB) *scheme.Scheme {
	t.Helper()
	b, err := os.ReadFile("../testdata/97sr.ens")
	require.NoError(t, err)
	ex, err := ensdf.Extract(strings.Split(string(b), "\n"), "97SR")
	require.NoError(t, err)

	return ex.Scheme
}

// texts flattens a path into its alternating energy texts.
func texts(p decay.Path) []string {
	var out []string
	for _, e := range p.Sequence() {
		out = append(out, e.Text)
	}

	return out
}
