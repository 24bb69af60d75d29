// Cycle detection over the resolved transition graph of a decay scheme.
// Each gamma becomes a directed edge from its origin level to the level it
// resolves to under the configured tolerance; gammas that resolve nowhere
// are dropped. Simple cycles are enumerated with three-colour DFS and
// back-edge recording, canonicalised by minimal rotation (Booth) and sorted
// so the output is deterministic.
//
// Complexity:
//
//   - Time:   O(G·L) to resolve edges, then O(V + E + C·K)
//   - Memory: O(V + E + K_max)

package decay

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gammapath/scheme"
)

// vertex visitation states
const (
	white = iota // not visited
	gray         // on the DFS stack
	black        // fully explored
)

// Transitions returns, for each level index, the distinct successor level
// indexes reached by its gammas, in gamma file order.
func Transitions(s *scheme.Scheme, opts ...Option) ([][]int, error) {
	if s == nil {
		return nil, ErrSchemeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !validTolerance(o.Tolerance) {
		return nil, fmt.Errorf("%w: %g", ErrBadTolerance, o.Tolerance)
	}

	adj := make([][]int, s.LevelCount())
	for _, l := range s.Levels() {
		seen := make(map[int]bool)
		for _, g := range s.GammasFrom(l.Index) {
			next, err := ResolveNextLevel(s, l.Energy, g.Energy, o.Tolerance, o.TieBreak)
			if err != nil || seen[next.Index] {
				continue
			}
			seen[next.Index] = true
			adj[l.Index] = append(adj[l.Index], next.Index)
		}
	}

	return adj, nil
}

// DetectCycles reports whether the transition graph of s contains cycles and
// lists each distinct one as closed level-energy sequences [a, b, ..., a].
// A level whose gamma resolves back onto itself is reported as [a, a].
func DetectCycles(s *scheme.Scheme, opts ...Option) (bool, [][]string, error) {
	// 1) Build the resolved graph
	adj, err := Transitions(s, opts...)
	if err != nil {
		return false, nil, fmt.Errorf("decay: DetectCycles: %w", err)
	}

	labels := make([]string, s.LevelCount())
	for i, e := range s.LevelEnergies() {
		labels[i] = e.Text
	}

	// 2) DFS from every unvisited level
	c := &cycleCollector{
		adj:    adj,
		labels: labels,
		state:  make([]int, len(adj)),
		seen:   make(map[string]struct{}),
	}
	for v := range adj {
		if c.state[v] == white {
			c.visit(v)
		}
	}

	// 3) Deterministic order
	sort.Slice(c.cycles, func(i, j int) bool {
		return joinSig(c.cycles[i]) < joinSig(c.cycles[j])
	})
	if len(c.cycles) == 0 {
		return false, nil, nil
	}

	return true, c.cycles, nil
}

// cycleCollector carries DFS state for DetectCycles.
type cycleCollector struct {
	adj    [][]int
	labels []string
	state  []int
	stack  []int
	seen   map[string]struct{}
	cycles [][]string
}

// visit marks v gray, explores its successors and records every back-edge
// to a gray vertex as a cycle.
func (c *cycleCollector) visit(v int) {
	c.state[v] = gray
	c.stack = append(c.stack, v)

	for _, nb := range c.adj[v] {
		switch c.state[nb] {
		case white:
			c.visit(nb)
		case gray:
			c.record(nb)
		}
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.state[v] = black
}

// record closes the stack segment starting at start into a cycle and keeps it
// if its canonical form is new.
func (c *cycleCollector) record(start int) {
	idx := len(c.stack) - 1
	for idx >= 0 && c.stack[idx] != start {
		idx--
	}
	seg := c.stack[idx:]

	base := make([]string, len(seg))
	for i, v := range seg {
		base[i] = c.labels[v]
	}
	canon := minimalRotation(base)
	closed := append(canon, canon[0])

	sig := joinSig(closed)
	if _, ok := c.seen[sig]; ok {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, closed)
}
