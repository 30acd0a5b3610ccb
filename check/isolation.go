package check

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

// Isolation enforces the sibling-isolation invariant: a specialist skill
// document must never reference a sibling specialist's content directly.
// Cross-specialist collaboration goes through the coordinator's handoff
// protocol instead.
func (c *Checker) Isolation(paths []string) []Finding {
	var findings []Finding
	for _, path := range paths {
		findings = append(findings, c.isolationFile(c.classifier.Abs(path))...)
	}
	return findings
}

// siblingMatcher detects references to one sibling specialist. Two
// strategies apply per line: a path-shaped regex and literal substring
// containment. A line matching either way yields one finding for that
// sibling, never two.
type siblingMatcher struct {
	name     string
	pathRe   *regexp.Regexp
	literals []string
}

func newSiblingMatcher(name string) siblingMatcher {
	return siblingMatcher{
		name:   name,
		pathRe: regexp.MustCompile(`\.\./?` + regexp.QuoteMeta(name) + `(/|\.md|/SKILL\.md|/references/)`),
		literals: []string{
			name + "/SKILL.md",
			name + "/references/",
			"skills/" + name,
		},
	}
}

func (m siblingMatcher) matches(line string) bool {
	if m.pathRe.MatchString(line) {
		return true
	}
	for _, literal := range m.literals {
		if strings.Contains(line, literal) {
			return true
		}
	}
	return false
}

func (c *Checker) isolationFile(path string) []Finding {
	if c.classifier.Classify(path) != corpus.Specialist {
		return nil
	}
	rel := c.classifier.Rel(path)

	siblings, name := corpus.SiblingSpecialists(path)
	if len(siblings) == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return []Finding{{
			Tier:    TierHard,
			Path:    rel,
			Message: fmt.Sprintf("could not read file: %v", err),
		}}
	}

	matchers := make([]siblingMatcher, 0, len(siblings))
	for _, sibling := range siblings {
		matchers = append(matchers, newSiblingMatcher(sibling))
	}

	var findings []Finding
	for i, line := range strings.Split(string(data), "\n") {
		for _, m := range matchers {
			if !m.matches(line) {
				continue
			}
			findings = append(findings, Finding{
				Tier: TierHard,
				Path: rel,
				Line: i + 1,
				Message: fmt.Sprintf(
					"cross-reference to sibling specialist '%s' violates isolation rule (source: %s, target: %s). Use handoff protocol instead.",
					m.name, name, m.name),
			})
		}
	}
	return findings
}
