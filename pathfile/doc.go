// Package pathfile renders reconstructed decay paths back into ENSDF files.
//
// Every path produces a full copy of the input. Lines that belong to the path
// are copied verbatim; every other line has column 7 overwritten with the
// comment marker 'c', so downstream ENSDF tools read the path's records and
// ignore the rest.
//
// Line identity:
//
//	column 8 (record type) followed by columns 10-18 (energy, trimmed), e.g.
//	"97SR   G 418.1     3  40" is "G418.1". A line belongs to a path when
//	its identity is one of decay.Path.Keys().
//
// File naming:
//
//	{nuclide}_{levelDigits}L[_{gammaDigits}g]*.ens
//
//	where digits are the integer part of each energy's text. Paths that
//	would share a name get a _2, _3, ... suffix in path order.
package pathfile
