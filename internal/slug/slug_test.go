package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Overview", "overview"},
		{"spaces join with dash", "Getting Started", "getting-started"},
		{"punctuation dropped", "What's New?", "whats-new"},
		{"existing dashes kept as separators", "pre-release builds", "pre-release-builds"},
		{"underscores become separators", "env_var names", "env-var-names"},
		{"accents folded", "Résumé Parsing", "resume-parsing"},
		{"digits kept", "Version 2 API", "version-2-api"},
		{"leading and trailing space", "  Trimmed  ", "trimmed"},
		{"collapsed separators", "a -- b", "a-b"},
		{"empty", "", ""},
		{"only punctuation", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Make(tt.in))
		})
	}
}
