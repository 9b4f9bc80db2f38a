package docs

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the recognized YAML frontmatter fields of a page.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// Slug overrides the output file name (without extension). Like an
	// explicit heading ID, it is used verbatim, not re-derived.
	Slug string `yaml:"slug"`
}

const frontmatterDelimiter = "---"

// SplitFrontmatter separates an optional leading YAML frontmatter block from
// the document body. When the content has no frontmatter, or the block does
// not parse as YAML, the content is returned unchanged with empty metadata —
// a malformed block never aborts generation.
func SplitFrontmatter(content string) (Frontmatter, string) {
	var meta Frontmatter

	rest, found := strings.CutPrefix(content, frontmatterDelimiter+"\n")
	if !found {
		return meta, content
	}

	block, body, found := strings.Cut(rest, "\n"+frontmatterDelimiter+"\n")
	if !found {
		return meta, content
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Frontmatter{}, content
	}
	return meta, body
}
