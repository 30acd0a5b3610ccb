package corpus

import (
	"os"
	"strings"
)

// BodyWords counts the words in a markdown file, excluding YAML
// frontmatter. Unreadable files count as zero; the caller decides whether
// that deserves a finding.
func BodyWords(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return len(strings.Fields(StripFrontmatter(string(data))))
}

// FileWords counts every word in a file, frontmatter included. Context
// load estimation uses this whole-file mode because the entire file is
// what gets loaded at runtime; budget counting strips frontmatter first.
// The two modes are deliberately separate entry points.
func FileWords(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return len(strings.Fields(string(data)))
}

// StripFrontmatter removes a leading YAML frontmatter block delimited by
// "---" markers. Content without frontmatter is returned unchanged.
func StripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}
	end := strings.Index(content[3:], "---")
	if end == -1 {
		return content
	}
	return content[end+6:]
}
