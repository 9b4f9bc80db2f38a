package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsmith/internal/linkcheck"
)

// PageWarnings pairs a generated page with its link-integrity findings.
type PageWarnings struct {
	Path     string
	Warnings []linkcheck.Warning
}

// CheckDir runs the link checker over every HTML page under dir, returning
// only pages with findings, in lexical path order. Used by the standalone
// check command against an already-generated site.
func CheckDir(dir string) ([]PageWarnings, int, error) {
	var results []PageWarnings
	checked := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		checked++

		warnings, err := linkcheck.Check(string(content))
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if len(warnings) > 0 {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				rel = path
			}
			results = append(results, PageWarnings{Path: rel, Warnings: warnings})
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return results, checked, nil
}
