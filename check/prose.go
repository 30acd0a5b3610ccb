package check

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

// prosePattern is one prohibited phrase with the rewrite suggestion shown
// alongside the finding.
type prosePattern struct {
	phrase     string
	re         *regexp.Regexp
	suggestion string
}

func newProsePattern(phrase, suggestion string) prosePattern {
	return prosePattern{
		phrase:     phrase,
		re:         regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase)),
		suggestion: suggestion,
	}
}

var prohibitedProse = []prosePattern{
	newProsePattern("it is important to", "state the action directly"),
	newProsePattern("it's important to", "state the action directly"),
	newProsePattern("you should", "use imperative: do X"),
	newProsePattern("you may want to", "use imperative: do X"),
	newProsePattern("you might want to", "use imperative: do X"),
	newProsePattern("this is because", "remove or convert to Note:"),
	newProsePattern("the reason for this", "remove or convert to Note:"),
	newProsePattern("basically", "remove filler"),
	newProsePattern("essentially", "remove filler"),
	newProsePattern("fundamentally", "remove filler"),
	newProsePattern("in other words", "remove filler"),
	newProsePattern("in order to", "replace with 'to'"),
	newProsePattern("keep in mind", "inline as Note: or remove"),
	newProsePattern("please note that", "inline as Note: or remove"),
	newProsePattern("let's", "use imperative"),
	newProsePattern("we can", "use imperative"),
	newProsePattern("we should", "use imperative"),
	newProsePattern("feel free to", "use imperative"),
	newProsePattern("don't hesitate to", "use imperative"),
}

// Sections where prose is acceptable even when the heading mentions
// procedures.
var excludedSections = map[string]bool{
	"purpose":     true,
	"context":     true,
	"background":  true,
	"notes":       true,
	"description": true,
	"overview":    true,
	"when to use": true,
	"don't use":   true,
}

var sectionHeadingRe = regexp.MustCompile(`^##\s+`)

// Prose flags prohibited prose patterns inside procedure sections of skill
// documents. Advisory: findings never fail a run.
func (c *Checker) Prose(paths []string) []Finding {
	var findings []Finding
	for _, path := range paths {
		findings = append(findings, c.proseFile(c.classifier.Abs(path))...)
	}
	return findings
}

func (c *Checker) proseFile(path string) []Finding {
	if c.classifier.Excluded(path) {
		return nil
	}
	if filepath.Base(path) != corpus.SkillFileName {
		return nil
	}
	rel := c.classifier.Rel(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	ranges := procedureSections(lines)
	if len(ranges) == 0 {
		return nil
	}

	var findings []Finding
	for _, r := range ranges {
		for i := r.start; i < r.end && i < len(lines); i++ {
			for _, p := range prohibitedProse {
				if p.re.MatchString(lines[i]) {
					findings = append(findings, Finding{
						Tier:    TierWarn,
						Path:    rel,
						Line:    i + 1,
						Message: fmt.Sprintf("prohibited prose pattern '%s' found -> %s", p.phrase, p.suggestion),
					})
				}
			}
		}
	}
	return findings
}

type lineRange struct {
	start, end int // 0-based, half-open
}

// procedureSections finds the line ranges inside ## sections whose name
// contains "procedure", each ending at the next ## heading.
func procedureSections(lines []string) []lineRange {
	var ranges []lineRange
	inProcedure := false
	start := 0

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if !sectionHeadingRe.MatchString(stripped) {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(sectionHeadingRe.ReplaceAllString(stripped, "")))
		if inProcedure {
			ranges = append(ranges, lineRange{start, i})
			inProcedure = false
		}
		if strings.Contains(name, "procedure") && !excludedSections[name] {
			inProcedure = true
			start = i + 1
		}
	}
	if inProcedure {
		ranges = append(ranges, lineRange{start, len(lines)})
	}
	return ranges
}
