// Package ensdf extracts level and gamma records from ENSDF-style decay
// files and turns them into a scheme.Scheme.
//
// What:
//
//   - ParseLine: classify one raw line as a level record, a gamma record,
//     or neither.
//   - Extract: scan a whole file, binding each gamma to the nearest
//     preceding level record (the positional rule of the format) and
//     recording that binding as an explicit origin index.
//
// Record filter:
//
//	A line is split on whitespace. It is a candidate when its first field has
//	the same width as the daughter identifier (e.g. "97RB" for 97Rb); the
//	second field selects the record type ("L" level, "G" gamma) and the third
//	holds the energy. Continuation ("97RB2 L ..."), comment ("97RB c ...") and
//	header rows fall out of the filter.
//
// Errors:
//
//   - ErrEmptyDaughter    the daughter identifier is empty.
//   - ErrMalformedRecord  an L/G record has no energy or a non-decimal one.
//   - ErrOrphanGamma      a gamma record precedes every valid level record.
//
// Both record errors arrive wrapped in *RecordParseError carrying the line.
// Extract skips such records and lists them in Extraction.Skipped unless
// WithStrict is given.
package ensdf
