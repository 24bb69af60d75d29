// Package gammapath splits an ENSDF decay-scheme file into one file per gamma
// decay path, from each excited level of the daughter nuclide down to its
// ground state.
//
// What is inside?
//
//	energy/   — Energy value type: parsed decimal plus its original text
//	scheme/   — immutable level/gamma registry with explicit origin links
//	ensdf/    — record extraction from fixed-column ENSDF lines
//	decay/    — tolerance-matched path reconstruction and cycle diagnostics
//	pathfile/ — filename rendering and comment-marked file emission
//	config/   — YAML job files
//	logging/  — zap logger construction
//	cli/      — cobra command tree behind cmd/gammapath
//
// This package ties them together: ReadLines, SetUp, FindPaths and
// WritePaths form the library entry points, Run executes a configured job.
//
// Quick example:
//
//	lines, _ := gammapath.ReadLines("97rb_b-.ens")
//	out, _ := gammapath.FindPaths(lines, "97SR", 1.0)
//	n, _ := gammapath.WritePaths(ctx, out.Paths, lines, "97Sr", "paths")
//
// A level at 1250.0 keV emitting 665.0 keV, whose successor 585.1 keV emits
// 418.1 keV and then 167.0 keV, yields 97Sr_1250L_665g_418g_167g.ens.
package gammapath
