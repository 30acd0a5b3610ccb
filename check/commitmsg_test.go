package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitMessageValid(t *testing.T) {
	valid := []string{
		"skill: add refund-handling specialist",
		"skill-fix(review): tighten isolation wording",
		"skill-ref: split oversized style reference",
		"feat(cli): add watch command debounce flag",
		"chore: bump linter version in pipeline",
	}
	for _, message := range valid {
		require.Empty(t, CommitMessage(message), message)
	}
}

func TestCommitMessageMergeCommitsPass(t *testing.T) {
	require.Empty(t, CommitMessage("Merge branch 'main' into feature"))
}

func TestCommitMessageEmpty(t *testing.T) {
	for _, message := range []string{"", "\n\n", "# comment only\n"} {
		findings := CommitMessage(message)
		require.Len(t, findings, 1)
		require.Equal(t, TierHard, findings[0].Tier)
		require.Equal(t, "commit message is empty", findings[0].Message)
	}
}

func TestCommitMessageIgnoresCommentLines(t *testing.T) {
	message := "# Please enter the commit message\nskill: add refund-handling specialist\n"
	require.Empty(t, CommitMessage(message))
}

func TestCommitMessageBadFormat(t *testing.T) {
	findings := CommitMessage("added some stuff")
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "must match 'type(scope): description'")
	require.Contains(t, findings[0].Message, "Valid types:")
}

func TestCommitMessageUnknownType(t *testing.T) {
	findings := CommitMessage("wip: experimenting with things")
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "unknown commit type 'wip'")
}

func TestCommitMessageShortDescription(t *testing.T) {
	findings := CommitMessage("fix: typo")
	require.Len(t, findings, 1)
	require.Equal(t, "commit description must be >= 10 characters (got 4)", findings[0].Message)
}

func TestCommitMessageTrailingPeriod(t *testing.T) {
	findings := CommitMessage("fix: correct the broken reference path.")
	require.Len(t, findings, 1)
	require.Equal(t, "description should not end with a period", findings[0].Message)
}

func TestCommitMessageSubjectTooLong(t *testing.T) {
	subject := "fix: " + strings.Repeat("x", 100)
	findings := CommitMessage(subject)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "subject line too long (105 chars, max 100)")
}

func TestCommitMessageAccumulatesProblems(t *testing.T) {
	findings := CommitMessage("wip: fixing.")
	require.Len(t, findings, 3)
}

func TestCommitMessageBodyIgnored(t *testing.T) {
	message := "skill: add refund-handling specialist\n\nyou should note this body is not checked\n"
	require.Empty(t, CommitMessage(message))
}
