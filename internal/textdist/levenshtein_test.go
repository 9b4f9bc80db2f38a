package textdist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein_KnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"instalation", "installation", 1},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "Levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"overview", "over"},
		{"", "setup"},
		{"configuration", "configuraton"},
	}
	for _, p := range pairs {
		require.Equal(t, Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]))
	}
}

func TestLevenshtein_TriangleInequality(t *testing.T) {
	a, b, c := "installation", "instalation", "configuration"
	require.LessOrEqual(t, Levenshtein(a, c), Levenshtein(a, b)+Levenshtein(b, c))
}

func TestClosest_PicksMinimum(t *testing.T) {
	got, ok := Closest("instalation", []string{"configuration", "installation"})
	require.True(t, ok)
	require.Equal(t, "installation", got)
}

func TestClosest_TieKeepsFirst(t *testing.T) {
	// Both candidates are distance 1 from the target; the earlier one wins.
	got, ok := Closest("cat", []string{"cab", "car"})
	require.True(t, ok)
	require.Equal(t, "cab", got)
}

func TestClosest_EmptyCandidates(t *testing.T) {
	_, ok := Closest("anything", nil)
	require.False(t, ok)
}
