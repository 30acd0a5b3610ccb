package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SkillDir walks upward from path to the nearest directory containing a
// skill document, stopping at the repository root. Returns "" when no
// enclosing skill directory exists.
func SkillDir(path, root string) string {
	if filepath.Base(path) == SkillFileName {
		return filepath.Dir(path)
	}
	for dir := filepath.Dir(path); dir != root && dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		if isFile(filepath.Join(dir, SkillFileName)) {
			return dir
		}
	}
	return ""
}

// ReferenceFiles returns the markdown files directly inside a skill
// directory's references/ subdirectory, sorted by name. The listing is
// deliberately non-recursive: only top-level reference files count toward
// a specialist's context load.
func ReferenceFiles(skillDir string) []string {
	refsDir := filepath.Join(skillDir, "references")
	entries, err := os.ReadDir(refsDir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			files = append(files, filepath.Join(refsDir, entry.Name()))
		}
	}
	return files
}

// discoveryPatterns select every governed markdown file in the corpus.
var discoveryPatterns = []string{
	"**/" + SkillFileName,
	"**/references/**/*.md",
	"**/shared-references/**/*.md",
}

// DiscoverFiles finds every skill document and reference file under root.
// Used by the reporting commands when no explicit file list is given.
func DiscoverFiles(root string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range discoveryPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, filepath.Join(root, filepath.FromSlash(match)))
		}
	}
	sort.Strings(files)
	return files, nil
}

// TopLevelSkillDirs returns the root-level *-skill directories, sorted.
// These are the units the context-load report analyzes.
func TopLevelSkillDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), "-skill") {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs
}

// MarkdownFiles returns every .md file under dir, recursively, sorted,
// skipping version-control and dependency directories.
func MarkdownFiles(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "node_modules", "eval-cases":
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".md") {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
