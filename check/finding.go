// Package check implements the governance checks for a skill corpus:
// frontmatter validation, word budgets, context-load ceilings, sibling
// isolation, reference resolution, prose patterns, and commit messages.
// Checks collect findings instead of failing fast; every file in a batch
// is evaluated and no finding is dropped or merged.
package check

import "fmt"

// Tier is the severity of a finding. Hard findings fail the run; warn and
// info findings never do.
type Tier string

const (
	TierHard Tier = "HARD"
	TierWarn Tier = "WARN"
	TierInfo Tier = "INFO"
)

// Finding is one diagnostic produced by a check.
type Finding struct {
	Tier    Tier
	Path    string // repository-relative, forward slashes
	Line    int    // 1-based; 0 when the finding is not line-scoped
	Message string
}

// Prefix returns the diagnostic prefix for the finding's tier.
func (f Finding) Prefix() string {
	switch f.Tier {
	case TierHard:
		return "FAIL"
	case TierWarn:
		return "WARNING"
	default:
		return "INFO"
	}
}

// Location returns "path:line", "path", or "" depending on what the
// finding is scoped to.
func (f Finding) Location() string {
	if f.Path == "" {
		return ""
	}
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.Path, f.Line)
	}
	return f.Path
}

// String renders the finding as a pre-commit diagnostic line.
func (f Finding) String() string {
	if loc := f.Location(); loc != "" {
		return fmt.Sprintf("%s: %s: %s", f.Prefix(), loc, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Prefix(), f.Message)
}

// HasHard reports whether any finding is hard-tier.
func HasHard(findings []Finding) bool {
	for _, f := range findings {
		if f.Tier == TierHard {
			return true
		}
	}
	return false
}
