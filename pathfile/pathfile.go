package pathfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gammapath/decay"
)

const (
	// Ext is the extension of every emitted file.
	Ext = ".ens"

	// CommentMarker replaces column 7 of lines outside the path.
	CommentMarker = 'c'

	commentCol  = 6 // 0-based column 7
	typeCol     = 7 // 0-based column 8
	energyStart = 9 // 0-based column 10
	energyEnd   = 18
)

// Filename returns the base name of the file for p.
func Filename(nuclide string, p decay.Path) string {
	var sb strings.Builder
	sb.WriteString(nuclide)
	sb.WriteByte('_')
	sb.WriteString(p.Start().Energy.Digits())
	sb.WriteByte('L')
	for _, g := range p.Gammas() {
		sb.WriteByte('_')
		sb.WriteString(g.Energy.Digits())
		sb.WriteByte('g')
	}
	sb.WriteString(Ext)

	return sb.String()
}

// Filenames returns Filename for each path, suffixing repeats with _2, _3, ...
func Filenames(nuclide string, paths []decay.Path) []string {
	out := make([]string, len(paths))
	seen := make(map[string]int, len(paths))
	for i, p := range paths {
		name := Filename(nuclide, p)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, Ext), n, Ext)
		}
		out[i] = name
	}

	return out
}

// LineKey returns the record identity of line and whether the line is long
// enough to carry a record-type column.
func LineKey(line string) (string, bool) {
	if len(line) <= typeCol {
		return "", false
	}
	var e string
	if len(line) > energyStart {
		e = strings.TrimSpace(line[energyStart:min(len(line), energyEnd)])
	}

	return string(line[typeCol]) + e, true
}

// Annotate returns a copy of lines in which every line outside p carries the
// comment marker in column 7. Lines too short to have column 7 are copied
// unchanged.
func Annotate(lines []string, p decay.Path) []string {
	keys := make(map[string]struct{})
	for _, k := range p.Keys() {
		keys[k] = struct{}{}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if k, ok := LineKey(line); ok {
			if _, in := keys[k]; in {
				out[i] = line
				continue
			}
		}
		out[i] = markComment(line)
	}

	return out
}

// markComment overwrites column 7 with CommentMarker.
func markComment(line string) string {
	if len(line) <= commentCol {
		return line
	}

	return line[:commentCol] + string(CommentMarker) + line[commentCol+1:]
}
