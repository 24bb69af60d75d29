// Package decay reconstructs gamma decay paths over a scheme.Scheme: for each
// level and each gamma it emits, the chain of transitions that carries the
// nucleus down to the ground state.
//
// What:
//
//   - ResolveNextLevel: subtract a gamma from a level and find the recorded
//     level within tolerance ε of the result.
//   - Reconstruct: one Path per (start level, anchor gamma), walked until the
//     tail level is exactly 0. Every walk keeps a visited set, so a scheme
//     that routes back onto itself fails instead of looping.
//   - DetectCycles: lists the level cycles of the resolved transition graph,
//     using three-colour DFS and minimal-rotation canonical forms.
//
// Why:
//
//   - Recorded energies are rounded measurements; successors are found by
//     tolerance, not by key.
//   - Real schemes carry a few inconsistent gammas. One bad transition fails
//     its own path and the rest of the scheme is still reconstructed.
//
// Determinism:
//
//   - Anchors are walked in registry order (level, then gamma in file order).
//   - Past the anchor, a walk follows the first gamma in file order that the
//     tail level emits.
//   - Several levels inside the ε window are resolved by TieBreak: Closest
//     (default; equal distances go to the smallest registry index) or
//     FirstMatch (smallest registry index).
//   - WithWorkers fans walks out over goroutines; the Result is assembled in
//     anchor order and equals the sequential one.
//
// Complexity:
//
//   - ResolveNextLevel: O(L)
//   - Reconstruct:      O(G · D · L), D = longest chain (bounded by L)
//   - DetectCycles:     O(G · L + V + E + C·K), C cycles of length K
//
// Errors:
//
//   - ErrSchemeNil             scheme pointer is nil
//   - ErrBadTolerance          ε is not a positive finite number
//   - ErrUnresolvedSuccessor   no level within ε of level − gamma
//   - ErrCyclicDecayPath       a walk revisits a level
//   - ErrIncompletePath        a walk stops short of the ground state
//   - context.Canceled         cancellation via WithContext
//   - hook errors              propagated from OnStep
//
// The last three domain failures arrive as *PathError inside Result.Failures;
// they never abort Reconstruct.
package decay
