package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gammapath/config"
)

const sample = "../testdata/97sr.ens"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gammapath dev\n", out)
}

func TestRun_Flags(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "run", "-i", sample, "-d", "97SR", "-n", "97Sr", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "5 path file(s) written")

	assert.FileExists(t, filepath.Join(dir, "97Sr_1250L_665g_418g_167g.ens"))
}

func TestRun_ConfigWithOverride(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(job, []byte(
		"input: "+sample+"\ndaughter: 97SR\nnuclide: 97Sr\noutput_dir: "+dir+"\nfail_on_error: true\n",
	), 0o644))

	out, err := execute(t, "run", "-c", job)
	require.NoError(t, err)
	assert.Contains(t, out, "5 path file(s) written")

	// a tighter tolerance from the command line drops 1250 -[665.0]->
	out, err = execute(t, "run", "-c", job, "--tolerance", "0.05")
	assert.Error(t, err)
	assert.Contains(t, out, "1 path(s) skipped")
}

func TestRun_Invalid(t *testing.T) {
	_, err := execute(t, "run", "-i", sample)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "--log-format", "xml", "run", "-i", sample, "-d", "97SR")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	out, err := execute(t, "scan", "-i", sample, "-d", "97SR", "-n", "97Sr")
	require.NoError(t, err)
	assert.Contains(t, out, "PATHS")
	assert.Contains(t, out, "97Sr_585L_418g_167g.ens")
	assert.Contains(t, out, "585.1 -[418.1]-> 167.0 -[167.0]-> 0.0")
	assert.Regexp(t, `CYCLES\s+0\n`, out)
}

func TestScan_ReportsCycle(t *testing.T) {
	in := filepath.Join(t.TempDir(), "loop.ens")
	require.NoError(t, os.WriteFile(in, []byte(
		"97SR   L 0.0\n97SR   L 60.0\n97SR   G -40.0\n97SR   L 100.0\n97SR   G 40.0\n",
	), 0o644))

	out, err := execute(t, "scan", "-i", in, "-d", "97SR")
	require.NoError(t, err)
	assert.Contains(t, out, "100.0 -> 60.0 -> 100.0")
	assert.Contains(t, out, "cyclic decay path")
}
