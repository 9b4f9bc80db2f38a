// Package textdist provides string distance metrics for anchor suggestion.
package textdist

// Levenshtein computes the edit distance between a and b: the minimum number
// of single-character insertions, deletions, and substitutions needed to
// transform one into the other.
func Levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	// Two rows instead of the full (m+1)x(n+1) matrix.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Closest returns the candidate with the smallest edit distance to target.
// Ties keep the earliest candidate, so enumeration order decides — callers
// pass candidates in a deterministic (insertion) order. Returns "" and false
// when candidates is empty.
func Closest(target string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	bestDist := Levenshtein(target, best)
	for _, c := range candidates[1:] {
		if d := Levenshtein(target, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
