package check

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/skillgov/budget"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n)) + "\n"
}

// newContextLoadSuite builds a suite and returns its root plus the worst
// specialist's combined token load.
func newContextLoadSuite(t *testing.T) (string, int) {
	root := t.TempDir()
	coordinator := writeFile(t, root, "suite-skill/SKILL.md", words(300))
	specialist := writeFile(t, root, "suite-skill/skills/deep/SKILL.md", words(900))
	writeFile(t, root, "suite-skill/skills/deep/references/small.md", words(50))
	largest := writeFile(t, root, "suite-skill/skills/deep/references/big.md", words(400))

	total := budget.EstimateFileTokens(coordinator) +
		budget.EstimateFileTokens(specialist) +
		budget.EstimateFileTokens(largest)
	return root, total
}

func TestContextLoadOverCeiling(t *testing.T) {
	root, total := newContextLoadSuite(t)
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(total - 1)
	checker := newTestChecker(t, root, table)

	findings := checker.ContextLoad([]string{"suite-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, TierHard, findings[0].Tier)
	require.Equal(t, "suite-skill/skills/deep", findings[0].Path)
	require.Contains(t, findings[0].Message, "specialist(deep)")
	require.Contains(t, findings[0].Message, "reference(suite-skill/skills/deep/references/big.md)")
}

func TestContextLoadAtCeilingPasses(t *testing.T) {
	root, total := newContextLoadSuite(t)
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(total)
	checker := newTestChecker(t, root, table)

	require.Empty(t, checker.ContextLoad([]string{"suite-skill/SKILL.md"}))
}

func TestContextLoadAnalyzesSuiteOnce(t *testing.T) {
	// Several paths resolving to the same suite must not repeat findings.
	root, total := newContextLoadSuite(t)
	writeFile(t, root, "suite-skill/notes.md", words(5))
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(total - 1)
	checker := newTestChecker(t, root, table)

	findings := checker.ContextLoad([]string{
		"suite-skill/SKILL.md",
		"suite-skill/notes.md",
	})
	require.Len(t, findings, 1)
}

func TestContextLoadSpecialistPathIsNotASuite(t *testing.T) {
	// A specialist file walks up to its own skill directory, which has no
	// skills/ subdirectory, so it triggers no suite analysis. The ceiling
	// check fires on coordinator-level changes.
	root, total := newContextLoadSuite(t)
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(total - 1)
	checker := newTestChecker(t, root, table)

	require.Empty(t, checker.ContextLoad([]string{"suite-skill/skills/deep/SKILL.md"}))
}

func TestContextLoadPerSpecialistBound(t *testing.T) {
	// Each specialist is bounded independently; a heavy sibling does not
	// drag a light one over the ceiling.
	root := t.TempDir()
	coordinator := writeFile(t, root, "suite-skill/SKILL.md", words(300))
	writeFile(t, root, "suite-skill/skills/heavy/SKILL.md", words(2000))
	light := writeFile(t, root, "suite-skill/skills/light/SKILL.md", words(100))

	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(
		budget.EstimateFileTokens(coordinator) + budget.EstimateFileTokens(light))
	checker := newTestChecker(t, root, table)

	findings := checker.ContextLoad([]string{"suite-skill/SKILL.md"})
	require.Len(t, findings, 1)
	require.Equal(t, "suite-skill/skills/heavy", findings[0].Path)
	require.NotContains(t, findings[0].Message, "reference(")
}

func TestContextLoadCeilingOverride(t *testing.T) {
	root, total := newContextLoadSuite(t)
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(total - 1)
	table.Overrides["suite-skill/skills/deep"] = budget.Override{
		MaxSimultaneousTokens: intPtr(total + 100),
	}
	checker := newTestChecker(t, root, table)

	require.Empty(t, checker.ContextLoad([]string{"suite-skill/SKILL.md"}))
}

func TestContextLoadIgnoresStandaloneSkills(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "writing-skill/SKILL.md", words(5000))
	table := defaultTestTable()
	table.MaxSimultaneousTokens = intPtr(10)
	checker := newTestChecker(t, root, table)

	require.Empty(t, checker.ContextLoad([]string{"writing-skill/SKILL.md"}))
}

func TestContextLoadUnrelatedPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", words(10))
	checker := newTestChecker(t, root, nil)

	require.Empty(t, checker.ContextLoad([]string{filepath.Join(root, "README.md")}))
}
