// Package energy models a decay-scheme energy as a value type that pairs the
// parsed decimal with the exact text it was read from.
//
// What:
//
//   - Energy: Value (float64, keV in ENSDF files) plus Text, the verbatim
//     field. Text is the identity used when matching records back to lines
//     and when rendering output filenames; Value is used for arithmetic.
//   - Parse / MustParse: build an Energy from a record field.
//   - Digits: the filename token (integer part of Text).
//   - Within: open-interval tolerance match.
//   - IsGround: exact comparison against 0, never tolerance based.
//
// Why:
//
//   - Recorded energies are rounded measurements; they are compared with a
//     tolerance, yet files must be reproduced byte for byte, so the original
//     text cannot be recomputed from the float.
//
// Errors:
//
//   - ErrEmptyText   the field is blank.
//   - ErrNotDecimal  the field is not a finite decimal number.
package energy
