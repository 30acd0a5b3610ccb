package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/skillgov/budget"
)

func TestBudgetOverTarget(t *testing.T) {
	// Standalone target is 100 words in the test table.
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(150))
	checker := newTestChecker(t, root, nil)

	findings := checker.Budget([]string{"writing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierWarn, findings[0].Tier)
	require.Equal(t, "writing-skill/SKILL.md", findings[0].Path)
	require.Contains(t, findings[0].Message, "[standalone] 150 words")
	require.Contains(t, findings[0].Message, "exceeds target of 100 words by 50 words (150%)")
	require.Contains(t, findings[0].Message, "Refactor:")
}

func TestBudgetNearTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(95))
	checker := newTestChecker(t, root, nil)

	findings := checker.Budget([]string{"writing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierInfo, findings[0].Tier)
	require.Contains(t, findings[0].Message, "95% of 100 word target")
	require.Contains(t, findings[0].Message, "5 words of headroom")
}

func TestBudgetUnderThreshold(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(50))
	checker := newTestChecker(t, root, nil)

	require.Empty(t, checker.Budget([]string{"writing-skill/SKILL.md"}))
}

func TestBudgetExactlyAtTargetPasses(t *testing.T) {
	// 100/100 is ratio 1.0: not over, but past the warn threshold.
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(100))
	checker := newTestChecker(t, root, nil)

	findings := checker.Budget([]string{"writing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierInfo, findings[0].Tier)
}

func TestBudgetHonorsWordOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(150))
	table := defaultTestTable()
	table.Overrides["writing-skill/SKILL.md"] = budget.Override{MaxWords: intPtr(300)}
	checker := newTestChecker(t, root, table)

	require.Empty(t, checker.Budget([]string{"writing-skill/SKILL.md"}))
}

func TestBudgetSkipsExcludedPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pipeline/hooks/SKILL.md", words(9000))
	writeFile(t, root, "eval-cases/sample/SKILL.md", words(9000))
	checker := newTestChecker(t, root, nil)

	require.Empty(t, checker.Budget([]string{
		"pipeline/hooks/SKILL.md",
		"eval-cases/sample/SKILL.md",
	}))
}

func TestBudgetCustomWarnThreshold(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(85))
	table := defaultTestTable()
	threshold := 0.8
	table.WarnThreshold = &threshold
	checker := newTestChecker(t, root, table)

	findings := checker.Budget([]string{"writing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierInfo, findings[0].Tier)
}

func TestBudgetUnreadableFile(t *testing.T) {
	root := t.TempDir()
	checker := newTestChecker(t, root, nil)

	findings := checker.Budget([]string{"missing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierWarn, findings[0].Tier)
	require.Contains(t, findings[0].Message, "could not read file")
}

func TestBudgetStripsFrontmatter(t *testing.T) {
	// Frontmatter does not count toward the budget: 40 words of YAML plus
	// 105 words of body is 105 against the 100 word target.
	root := t.TempDir()
	content := "---\n" + words(40) + "---\n" + words(105)
	writeFile(t, root, "writing-skill/SKILL.md", content)
	checker := newTestChecker(t, root, nil)

	findings := checker.Budget([]string{"writing-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierWarn, findings[0].Tier)
	require.Contains(t, findings[0].Message, "105 words")
}
