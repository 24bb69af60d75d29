// Package scheme holds the read-only registry of a daughter nuclide's decay
// scheme: its levels, its gamma transitions, and the explicit relation from
// each gamma to the level that emits it.
//
// What:
//
//   - Level:   an excitation energy with its registry index and source line.
//   - Gamma:   a transition energy with the index of its origin Level.
//   - Builder: append-only construction; Build freezes the registry.
//   - Scheme:  immutable, indexed lookups (GammasFrom, Ground, LevelEnergies,
//     GammaMap) safe for concurrent readers without locks.
//
// Registry order is file order for both levels and gammas. Indexes are dense
// and stable, so downstream tie-breaks can be stated as "smallest index".
//
// Complexity:
//
//   - Build:      O(L + G)
//   - GammasFrom: O(1) lookup, the returned slice is a copy O(k)
//   - Ground:     O(1)
//
// Errors:
//
//   - ErrUnknownLevel  a gamma references a level index that was never added.
package scheme
