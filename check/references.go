package check

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

// Reference candidates in skill document text take three shapes:
// backtick-wrapped paths, table-row paths, and bare paths under
// references/ or shared-references/.
var (
	backtickPathRe = regexp.MustCompile("`([^`]+(?:\\.md|/))`")
	tablePathRe    = regexp.MustCompile("\\|\\s*`?([^|`\\s]+(?:\\.md|/))`?\\s*\\|")
	barePathRe     = regexp.MustCompile(`(?:^|\s)((?:references|shared-references)/[^\s)>\]]+(?:\.md|/))`)
)

type reference struct {
	Line int
	Path string
}

// findReferences extracts candidate file references from document text,
// deduplicated by (line, path).
func findReferences(text string) []reference {
	var refs []reference
	seen := make(map[reference]struct{})

	add := func(line int, path string) {
		ref := reference{Line: line, Path: path}
		if _, ok := seen[ref]; ok {
			return
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		for _, match := range backtickPathRe.FindAllStringSubmatch(line, -1) {
			if looksLikeFilePath(match[1]) {
				add(lineNum, match[1])
			}
		}
		for _, match := range tablePathRe.FindAllStringSubmatch(line, -1) {
			if looksLikeFilePath(match[1]) {
				add(lineNum, match[1])
			}
		}
		for _, match := range barePathRe.FindAllStringSubmatch(line, -1) {
			add(lineNum, match[1])
		}
	}
	return refs
}

// looksLikeFilePath filters out URLs and prose that merely resembles a
// path.
func looksLikeFilePath(s string) bool {
	if !strings.Contains(s, "/") {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return false
	}
	return !strings.Contains(s, " ")
}

// References verifies that every file reference inside a skill document
// resolves to a real file, relative to the skill directory, the repository
// root, or a shared-references subdirectory.
func (c *Checker) References(paths []string) []Finding {
	var findings []Finding
	for _, path := range paths {
		findings = append(findings, c.referencesFile(c.classifier.Abs(path))...)
	}
	return findings
}

func (c *Checker) referencesFile(path string) []Finding {
	if c.classifier.Excluded(path) {
		return nil
	}
	if filepath.Base(path) != corpus.SkillFileName {
		return nil
	}
	rel := c.classifier.Rel(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return []Finding{{
			Tier:    TierHard,
			Path:    rel,
			Message: fmt.Sprintf("could not read file: %v", err),
		}}
	}

	searchBases := []string{filepath.Dir(path), c.classifier.Root()}
	sharedRefs := filepath.Join(c.classifier.Root(), "shared-references")
	if entries, err := os.ReadDir(sharedRefs); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				searchBases = append(searchBases, filepath.Join(sharedRefs, entry.Name()))
			}
		}
	}

	var findings []Finding
	for _, ref := range findReferences(string(data)) {
		found := false
		for _, base := range searchBases {
			if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(ref.Path))); err == nil {
				found = true
				break
			}
		}
		if !found {
			findings = append(findings, Finding{
				Tier:    TierHard,
				Path:    rel,
				Line:    ref.Line,
				Message: fmt.Sprintf("broken reference '%s'", ref.Path),
			})
		}
	}
	return findings
}
