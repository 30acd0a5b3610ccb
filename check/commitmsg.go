package check

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	minCommitDescription = 10
	maxCommitSubject     = 100
)

var validCommitTypes = map[string]bool{
	"skill":      true,
	"skill-fix":  true,
	"skill-ref":  true,
	"skill-eval": true,
	"skill-docs": true,
	"chore":      true,
	"feat":       true,
	"fix":        true,
	"docs":       true,
	"style":      true,
	"refactor":   true,
	"test":       true,
	"ci":         true,
	"perf":       true,
	"build":      true,
	"revert":     true,
}

// type(scope): description  OR  type: description
var commitSubjectRe = regexp.MustCompile(`^([a-z][a-z-]*)(?:\([^)]+\))?:\s+(.+)$`)

// CommitMessage validates a commit message against the corpus convention:
// 'type(scope): description' with a fixed type vocabulary. Merge commits
// pass as-is and comment lines are ignored, matching git's behavior.
func CommitMessage(message string) []Finding {
	var content []string
	for _, line := range strings.Split(message, "\n") {
		if !strings.HasPrefix(line, "#") {
			content = append(content, line)
		}
	}
	if len(content) == 0 || strings.TrimSpace(content[0]) == "" {
		return []Finding{{Tier: TierHard, Message: "commit message is empty"}}
	}

	subject := strings.TrimSpace(content[0])
	if strings.HasPrefix(subject, "Merge ") {
		return nil
	}

	match := commitSubjectRe.FindStringSubmatch(subject)
	if match == nil {
		return []Finding{{
			Tier: TierHard,
			Message: fmt.Sprintf(
				"commit message must match 'type(scope): description' or 'type: description'\n  Got: %s\n  Valid types: %s",
				subject, strings.Join(sortedCommitTypes(), ", ")),
		}}
	}
	commitType, description := match[1], match[2]

	var findings []Finding
	hard := func(format string, args ...any) {
		findings = append(findings, Finding{Tier: TierHard, Message: fmt.Sprintf(format, args...)})
	}

	if !validCommitTypes[commitType] {
		hard("unknown commit type '%s'\n  Valid types: %s", commitType, strings.Join(sortedCommitTypes(), ", "))
	}
	if len(description) < minCommitDescription {
		hard("commit description must be >= %d characters (got %d)", minCommitDescription, len(description))
	}
	if strings.HasSuffix(description, ".") {
		hard("description should not end with a period")
	}
	if len(subject) > maxCommitSubject {
		hard("subject line too long (%d chars, max %d)", len(subject), maxCommitSubject)
	}
	return findings
}

func sortedCommitTypes() []string {
	types := make([]string, 0, len(validCommitTypes))
	for t := range validCommitTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
