package corpus

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Classification is the structural role of a file within the corpus.
type Classification string

// Every path maps to exactly one of these roles.
const (
	// Coordinator is a skill document with a sibling skills/ subdirectory
	// of specialists it delegates to.
	Coordinator Classification = "coordinator"

	// Specialist is a skill document nested under a coordinator's skills/
	// subtree, isolated from its siblings.
	Specialist Classification = "specialist"

	// Standalone is a skill document with neither coordinator nor
	// specialist structure.
	Standalone Classification = "standalone"

	// Reference is supporting markdown material under references/ or
	// shared-references/.
	Reference Classification = "reference"

	// Skip is everything else, including anything under an excluded
	// directory.
	Skip Classification = "skip"
)

// excludedDirs are pipeline/tooling directories whose contents are never
// governed, regardless of filename.
var excludedDirs = map[string]struct{}{
	"pipeline":     {},
	"eval-cases":   {},
	"node_modules": {},
	".github":      {},
	"templates":    {},
}

// Classifier assigns a structural role to each path in one repository.
// It holds the read-only state resolved once per run: the repository root
// and any configured extra exclusion patterns.
type Classifier struct {
	root    string
	exclude []glob.Glob
}

// NewClassifier returns a Classifier rooted at root. Patterns are extra
// exclusion globs (matched against the repository-relative path with '/'
// separators) in addition to the fixed excluded-directory set.
func NewClassifier(root string, patterns []string) (*Classifier, error) {
	c := &Classifier{root: filepath.Clean(root)}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", pattern, err)
		}
		c.exclude = append(c.exclude, g)
	}
	return c, nil
}

// Root returns the repository root the classifier was built with.
func (c *Classifier) Root() string {
	return c.root
}

// Abs resolves path against the repository root when it is relative.
func (c *Classifier) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.root, path)
}

// Rel returns the repository-relative form of path, normalized to
// forward-slash segments. Paths outside the root are returned as given.
func (c *Classifier) Rel(path string) string {
	rel, err := filepath.Rel(c.root, c.Abs(path))
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Excluded reports whether path lives under an excluded directory or
// matches a configured exclusion pattern.
func (c *Classifier) Excluded(path string) bool {
	rel := c.Rel(path)
	for _, part := range strings.Split(rel, "/") {
		if _, ok := excludedDirs[part]; ok {
			return true
		}
	}
	for _, g := range c.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Classify assigns exactly one role to path. The decision order matters:
// exclusions first, then reference material (reference files never use the
// skill-document basename, so this must run before the basename gate),
// then the basename gate, then the coordinator probe for a skills/
// subdirectory next to the document, then the specialist path-segment
// test. The coordinator probe checks the document's own directory, not an
// ancestor: a specialist three levels below a coordinator also has
// "skills" in its lineage but no skills/ subdirectory beside it.
func (c *Classifier) Classify(path string) Classification {
	path = c.Abs(path)
	if c.Excluded(path) {
		return Skip
	}

	rel := c.Rel(path)
	parts := strings.Split(rel, "/")
	base := filepath.Base(path)

	if hasSegment(parts, "references") || hasSegment(parts, "shared-references") {
		if strings.HasSuffix(base, ".md") {
			return Reference
		}
	}

	if base != SkillFileName {
		return Skip
	}

	if isDir(filepath.Join(filepath.Dir(path), "skills")) {
		return Coordinator
	}
	if hasSegment(parts, "skills") {
		return Specialist
	}
	return Standalone
}

func hasSegment(parts []string, segment string) bool {
	for _, p := range parts {
		if p == segment {
			return true
		}
	}
	return false
}
