package pathfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gammapath/decay"
)

// Writer emits one annotated file per path.
type Writer struct {
	// Dir receives the files; created if missing. Empty means the working directory.
	Dir string

	// Nuclide prefixes every filename, e.g. "97Sr".
	Nuclide string

	// Workers bounds concurrent file writes. Values below 2 write sequentially.
	Workers int

	// Logger receives one debug entry per file. Nil disables logging.
	Logger *zap.Logger
}

// Write renders every path against lines and returns how many files were
// written. On error the count covers the files completed before it.
func (w *Writer) Write(ctx context.Context, paths []decay.Path, lines []string) (int, error) {
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("pathfile: create %s: %w", dir, err)
	}

	names := Filenames(w.Nuclide, paths)
	var written atomic.Int64

	emit := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dir, names[i])
		if err := writeLines(target, Annotate(lines, paths[i])); err != nil {
			return err
		}
		written.Add(1)
		log.Debug("decay path written",
			zap.String("file", target),
			zap.String("path", paths[i].String()),
			zap.Int("transitions", len(paths[i].Steps)),
		)

		return nil
	}

	if w.Workers < 2 {
		for i := range paths {
			if err := emit(ctx, i); err != nil {
				return int(written.Load()), err
			}
		}

		return int(written.Load()), nil
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.Workers)
	for i := range paths {
		i := i
		eg.Go(func() error { return emit(gctx, i) })
	}
	err := eg.Wait()

	return int(written.Load()), err
}

// writeLines creates target and writes lines, each terminated by '\n'.
func writeLines(target string, lines []string) (err error) {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("pathfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pathfile: close %s: %w", target, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err = bw.WriteString(l); err != nil {
			return fmt.Errorf("pathfile: write %s: %w", target, err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("pathfile: write %s: %w", target, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("pathfile: flush %s: %w", target, err)
	}

	return nil
}
