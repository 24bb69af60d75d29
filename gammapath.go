package gammapath

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gammapath/config"
	"github.com/katalvlaran/gammapath/decay"
	"github.com/katalvlaran/gammapath/energy"
	"github.com/katalvlaran/gammapath/ensdf"
	"github.com/katalvlaran/gammapath/pathfile"
	"github.com/katalvlaran/gammapath/scheme"
)

// ErrPathFailures is returned by Run when the job asks to fail on any
// skipped record or unreconstructed path.
var ErrPathFailures = errors.New("gammapath: decay scheme has failures")

// Outcome is the result of FindPaths.
type Outcome struct {
	// Levels is the level set in registry order.
	Levels []energy.Energy

	// Gammas maps gamma energy text to origin level energy text.
	Gammas map[string]string

	Scheme     *scheme.Scheme
	Extraction *ensdf.Extraction

	Paths    []decay.Path
	Failures []*decay.PathError
}

// ReadLines reads a whole file and splits it into lines without terminators.
// A final newline does not produce an empty trailing line.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gammapath: read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	return strings.Split(text, "\n"), nil
}

// SetUp extracts the decay scheme of daughter from lines.
func SetUp(lines []string, daughter string, opts ...ensdf.Option) (*scheme.Scheme, *ensdf.Extraction, error) {
	ex, err := ensdf.Extract(lines, daughter, opts...)
	if err != nil {
		return nil, nil, err
	}

	return ex.Scheme, ex, nil
}

// FindPaths extracts the scheme of daughter and reconstructs its decay paths
// with tolerance eps. opts are applied after eps and may override it.
func FindPaths(lines []string, daughter string, eps float64, opts ...decay.Option) (*Outcome, error) {
	s, ex, err := SetUp(lines, daughter)
	if err != nil {
		return nil, err
	}

	all := append([]decay.Option{decay.WithTolerance(eps)}, opts...)
	res, err := decay.Reconstruct(s, all...)
	if err != nil {
		return nil, err
	}

	return newOutcome(s, ex, res), nil
}

func newOutcome(s *scheme.Scheme, ex *ensdf.Extraction, res *decay.Result) *Outcome {
	return &Outcome{
		Levels:     s.LevelEnergies(),
		Gammas:     s.GammaMap(),
		Scheme:     s,
		Extraction: ex,
		Paths:      res.Paths,
		Failures:   res.Failures,
	}
}

// WritePaths writes one annotated copy of lines per path into dir and
// returns the number of files written.
func WritePaths(ctx context.Context, paths []decay.Path, lines []string, nuclide, dir string) (int, error) {
	w := &pathfile.Writer{Dir: dir, Nuclide: nuclide}

	return w.Write(ctx, paths, lines)
}

// Report summarises a Run.
type Report struct {
	Outcome *Outcome
	Written int
}

// Run executes cfg: read, extract, reconstruct, write. log may be nil.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// 1. Validate job
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dopts, err := cfg.DecayOptions()
	if err != nil {
		return nil, err
	}

	// 2. Read and extract
	lines, err := ReadLines(cfg.Input)
	if err != nil {
		return nil, err
	}
	var eopts []ensdf.Option
	if cfg.Strict {
		eopts = append(eopts, ensdf.WithStrict())
	}
	s, ex, err := SetUp(lines, cfg.Daughter, eopts...)
	if err != nil {
		return nil, err
	}
	for _, sk := range ex.Skipped {
		log.Warn("record skipped", zap.Int("line", sk.Line+1), zap.Error(sk.Err))
	}
	log.Info("decay scheme extracted",
		zap.String("input", cfg.Input),
		zap.String("daughter", cfg.Daughter),
		zap.Int("levels", s.LevelCount()),
		zap.Int("gammas", s.GammaCount()),
	)

	// 3. Reconstruct
	dopts = append(dopts,
		decay.WithContext(ctx),
		decay.WithOnStep(func(st decay.Step) error {
			log.Debug("transition",
				zap.String("level", st.From.Energy.Text),
				zap.String("gamma", st.Gamma.Energy.Text),
				zap.String("next", st.To.Energy.Text),
			)
			return nil
		}),
	)
	res, err := decay.Reconstruct(s, dopts...)
	if err != nil {
		return nil, err
	}
	for _, f := range res.Failures {
		log.Warn("decay path skipped",
			zap.String("level", f.Start.Energy.Text),
			zap.String("gamma", f.Anchor.Energy.Text),
			zap.Error(f.Err),
		)
	}

	rep := &Report{Outcome: newOutcome(s, ex, res)}

	// 4. Write
	w := &pathfile.Writer{
		Dir:     cfg.OutputDir,
		Nuclide: cfg.OutputNuclide(),
		Workers: cfg.Workers,
		Logger:  log,
	}
	rep.Written, err = w.Write(ctx, res.Paths, lines)
	if err != nil {
		return rep, err
	}
	log.Info("decay paths written",
		zap.String("dir", cfg.OutputDir),
		zap.Int("written", rep.Written),
		zap.Int("failed", len(res.Failures)),
		zap.Int("skipped_records", len(ex.Skipped)),
	)

	// 5. Job policy
	if cfg.FailOnError && (len(res.Failures) > 0 || len(ex.Skipped) > 0) {
		return rep, fmt.Errorf("%w: %d path(s) failed, %d record(s) skipped",
			ErrPathFailures, len(res.Failures), len(ex.Skipped))
	}

	return rep, nil
}
