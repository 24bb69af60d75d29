package gammapath_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gammapath"
	"github.com/katalvlaran/gammapath/config"
	"github.com/katalvlaran/gammapath/decay"
)

const sample = "testdata/97sr.ens"

func TestReadLines(t *testing.T) {
	lines, err := gammapath.ReadLines(sample)
	require.NoError(t, err)
	assert.Len(t, lines, 14)
	assert.Equal(t, "97SR   L 0.0        1/2+", lines[3])

	path := filepath.Join(t.TempDir(), "crlf.ens")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644))
	lines, err = gammapath.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	empty := filepath.Join(t.TempDir(), "empty.ens")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	lines, err = gammapath.ReadLines(empty)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = gammapath.ReadLines(filepath.Join(t.TempDir(), "missing.ens"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindPaths(t *testing.T) {
	lines, err := gammapath.ReadLines(sample)
	require.NoError(t, err)

	out, err := gammapath.FindPaths(lines, "97SR", 1.0)
	require.NoError(t, err)
	assert.Len(t, out.Levels, 4)
	assert.Len(t, out.Gammas, 5)
	assert.Len(t, out.Paths, 5)
	assert.Empty(t, out.Failures)

	// a tolerance too tight for 1250 − 665 = 585.0 vs 585.1
	out, err = gammapath.FindPaths(lines, "97SR", 0.05)
	require.NoError(t, err)
	assert.Len(t, out.Paths, 4)
	require.Len(t, out.Failures, 1)
	assert.ErrorIs(t, out.Failures[0], decay.ErrUnresolvedSuccessor)
}

func TestFindPaths_Errors(t *testing.T) {
	_, err := gammapath.FindPaths(nil, "", 1.0)
	assert.Error(t, err)

	_, err = gammapath.FindPaths(nil, "97SR", -1)
	assert.ErrorIs(t, err, decay.ErrBadTolerance)
}

func TestWritePaths(t *testing.T) {
	lines, err := gammapath.ReadLines(sample)
	require.NoError(t, err)
	out, err := gammapath.FindPaths(lines, "97SR", 1.0)
	require.NoError(t, err)

	dir := t.TempDir()
	n, err := gammapath.WritePaths(context.Background(), out.Paths, lines, "97Sr", dir)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.FileExists(t, filepath.Join(dir, "97Sr_585L_418g_167g.ens"))
}

func job(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Input = sample
	cfg.Daughter = "97SR"
	cfg.Nuclide = "97Sr"
	cfg.OutputDir = t.TempDir()

	return cfg
}

func TestRun(t *testing.T) {
	cfg := job(t)
	cfg.Workers = 2
	core, logs := observer.New(zapcore.DebugLevel)

	rep, err := gammapath.Run(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Written)
	assert.Equal(t, 1, logs.FilterMessage("decay scheme extracted").Len())
	assert.Equal(t, 9, logs.FilterMessage("transition").Len())

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRun_FailOnError(t *testing.T) {
	cfg := job(t)
	cfg.Tolerance = 0.05

	rep, err := gammapath.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Written)

	cfg.FailOnError = true
	rep, err = gammapath.Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, gammapath.ErrPathFailures)
	require.NotNil(t, rep)
	assert.Equal(t, 4, rep.Written) // files are still written
}

func TestRun_Strict(t *testing.T) {
	in := filepath.Join(t.TempDir(), "broken.ens")
	require.NoError(t, os.WriteFile(in, []byte("97SR   L 0.0\n97SR   L 12.0+X\n"), 0o644))

	cfg := job(t)
	cfg.Input = in
	rep, err := gammapath.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Outcome.Extraction.Skipped, 1)

	cfg.Strict = true
	_, err = gammapath.Run(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := gammapath.Run(context.Background(), config.Default(), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
