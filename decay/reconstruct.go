package decay

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gammapath/scheme"
)

// anchor is a (start level, first gamma) combination to walk.
type anchor struct {
	start scheme.Level
	gamma scheme.Gamma
}

// outcome is the result of walking one anchor.
type outcome struct {
	path Path
	fail *PathError
}

// walker holds the read-only state shared by all walks.
type walker struct {
	scheme   *scheme.Scheme
	opts     Options
	maxSteps int
}

// Reconstruct walks every (level, gamma emitted by that level) combination of
// s down to the ground state. Domain failures are collected in
// Result.Failures; the returned error is reserved for invalid input,
// cancellation and hook errors.
func Reconstruct(s *scheme.Scheme, opts ...Option) (*Result, error) {
	// 1. Validate input
	if s == nil {
		return nil, ErrSchemeNil
	}

	// 2. Apply options
	ropts := DefaultOptions()
	for _, fn := range opts {
		fn(&ropts)
	}
	if !validTolerance(ropts.Tolerance) {
		return nil, fmt.Errorf("%w: %g", ErrBadTolerance, ropts.Tolerance)
	}

	w := &walker{scheme: s, opts: ropts, maxSteps: ropts.MaxSteps}
	if w.maxSteps <= 0 {
		w.maxSteps = max(s.LevelCount(), 1)
	}

	// 3. Enumerate anchors in registry order
	var anchors []anchor
	for _, l := range s.Levels() {
		for _, g := range s.GammasFrom(l.Index) {
			anchors = append(anchors, anchor{start: l, gamma: g})
		}
	}

	// 4. Walk, sequentially or fanned out; slots keep anchor order
	outcomes := make([]outcome, len(anchors))
	if ropts.Workers < 2 {
		for i, a := range anchors {
			if err := ropts.Ctx.Err(); err != nil {
				return nil, err
			}
			p, perr, err := w.walk(a)
			if err != nil {
				return nil, err
			}
			outcomes[i] = outcome{path: p, fail: perr}
		}
	} else {
		eg, gctx := errgroup.WithContext(ropts.Ctx)
		eg.SetLimit(ropts.Workers)
		for i, a := range anchors {
			i, a := i, a
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				p, perr, err := w.walk(a)
				if err != nil {
					return err
				}
				outcomes[i] = outcome{path: p, fail: perr}

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	// 5. Assemble
	res := &Result{}
	for _, o := range outcomes {
		if o.fail != nil {
			res.Failures = append(res.Failures, o.fail)
			continue
		}
		res.Paths = append(res.Paths, o.path)
	}

	return res, nil
}

// walk follows one anchor to the ground state. It returns either a complete
// Path or a *PathError; the error result is reserved for hook failures.
func (w *walker) walk(a anchor) (Path, *PathError, error) {
	visited := map[int]bool{a.start.Index: true}
	var path Path

	fail := func(err error) (Path, *PathError, error) {
		return Path{}, &PathError{
			Start:   a.start,
			Anchor:  a.gamma,
			Step:    len(path.Steps),
			Partial: path,
			Err:     err,
		}, nil
	}

	cur, g := a.start, a.gamma
	for {
		// 1. Bound the walk
		if len(path.Steps) >= w.maxSteps {
			return fail(fmt.Errorf("%w: step cap %d reached at level %s",
				ErrIncompletePath, w.maxSteps, cur.Energy.Text))
		}

		// 2. Resolve the successor
		next, err := ResolveNextLevel(w.scheme, cur.Energy, g.Energy, w.opts.Tolerance, w.opts.TieBreak)
		if err != nil {
			return fail(err)
		}
		st := Step{From: cur, Gamma: g, To: next}

		// 3. Report
		if w.opts.OnStep != nil {
			if err = w.opts.OnStep(st); err != nil {
				return Path{}, nil, fmt.Errorf("decay: OnStep hook at level %s: %w", cur.Energy.Text, err)
			}
		}

		// 4. Cycle check, then extend
		if visited[next.Index] {
			return fail(fmt.Errorf("%w: level %s revisited via gamma %s",
				ErrCyclicDecayPath, next.Energy.Text, g.Energy.Text))
		}
		visited[next.Index] = true
		path.Steps = append(path.Steps, st)

		// 5. Ground state is an exact anchor
		if next.Energy.IsGround() {
			return path, nil, nil
		}

		// 6. Continue with the first gamma the tail emits
		outs := w.scheme.GammasFrom(next.Index)
		if len(outs) == 0 {
			return fail(fmt.Errorf("%w: level %s emits no gamma",
				ErrIncompletePath, next.Energy.Text))
		}
		cur, g = next, outs[0]
	}
}
