// Package docs discovers documentation sources and decides which pages need
// regeneration.
package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page is one discovered markdown document.
type Page struct {
	Path         string // absolute path to the source file
	RelativePath string // path relative to the source directory
	OutputPath   string // relative output path (extension swapped to .html)
	Title        string // frontmatter title, or one derived from the filename
	Meta         Frontmatter
}

// Asset is a non-markdown file copied through unchanged.
type Asset struct {
	Path         string
	RelativePath string
}

var titleCaser = cases.Title(language.English)

// IsDocFile reports whether path names a markdown document.
func IsDocFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// Discover walks sourceDir and returns its pages and assets in path order.
// Hidden files and directories (dot-prefixed) are skipped. Page titles come
// from frontmatter when present; frontmatter that fails to parse is treated
// as ordinary content.
func Discover(sourceDir string) ([]Page, []Asset, error) {
	var pages []Page
	var assets []Asset

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != sourceDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		if !IsDocFile(path) {
			assets = append(assets, Asset{Path: path, RelativePath: rel})
			return nil
		}

		page := Page{
			Path:         path,
			RelativePath: rel,
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		meta, _ := SplitFrontmatter(string(content))
		page.Meta = meta
		page.OutputPath = outputPath(rel, meta.Slug)
		page.Title = meta.Title
		if page.Title == "" {
			page.Title = titleFromFilename(rel)
		}

		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("discovering docs in %s: %w", sourceDir, err)
	}

	return pages, assets, nil
}

// outputPath derives the output location from the source path, with the
// file name replaced by the frontmatter slug when one is set.
func outputPath(rel, slugOverride string) string {
	if slugOverride != "" {
		return filepath.Join(filepath.Dir(rel), slugOverride+".html")
	}
	ext := filepath.Ext(rel)
	return rel[:len(rel)-len(ext)] + ".html"
}

func titleFromFilename(rel string) string {
	base := filepath.Base(rel)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return titleCaser.String(base)
}

// IsStale reports whether outPath must be regenerated from srcPath: the
// output is missing, or the source has been modified since it was written.
func IsStale(srcPath, outPath string) bool {
	out, err := os.Stat(outPath)
	if err != nil {
		return true
	}
	src, err := os.Stat(srcPath)
	if err != nil {
		return true
	}
	return src.ModTime().After(out.ModTime())
}
