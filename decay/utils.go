package decay

import "strings"

// joinSig concatenates c with commas into a single signature.
func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation returns a new slice holding the lexicographically smallest
// rotation of s, computed with Booth's failure-function algorithm.
// Complexity: O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}

	// scan the doubled sequence so every rotation is a window
	d := make([]string, 0, 2*n)
	d = append(d, s...)
	d = append(d, s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && d[j] != d[k+i+1] {
			if d[j] < d[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if d[j] != d[k+i+1] { // here i == -1
			if d[j] < d[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]string, n)
	copy(out, d[k:k+n])

	return out
}
