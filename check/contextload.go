package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// ContextLoad enforces the simultaneous context ceiling for every skill
// suite the given paths touch. At runtime only one specialist is active
// alongside its coordinator, so the bound is evaluated per specialist:
// coordinator + that specialist + that specialist's single largest
// reference file. Summing across all specialists would be a stricter and
// incorrect bound.
//
// Each input path is walked up to its nearest enclosing skill directory;
// suites already analyzed in this batch are skipped, and only coordinator
// directories (those with a skills/ subdirectory) are analyzed.
func (c *Checker) ContextLoad(paths []string) []Finding {
	checked := make(map[string]bool)
	var findings []Finding
	for _, path := range paths {
		skillDir := corpus.SkillDir(c.classifier.Abs(path), c.classifier.Root())
		if skillDir == "" || checked[skillDir] {
			continue
		}
		checked[skillDir] = true
		if corpus.IsSuite(skillDir) {
			findings = append(findings, c.checkSuite(skillDir)...)
		}
	}
	return findings
}

func (c *Checker) checkSuite(suiteDir string) []Finding {
	coordinatorPath := filepath.Join(suiteDir, corpus.SkillFileName)
	if _, err := os.Stat(coordinatorPath); err != nil {
		return nil
	}
	coordinatorTokens := budget.EstimateFileTokens(coordinatorPath)

	entries, err := os.ReadDir(filepath.Join(suiteDir, "skills"))
	if err != nil {
		return nil
	}

	var findings []Finding
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		specDir := filepath.Join(suiteDir, "skills", entry.Name())
		specPath := filepath.Join(specDir, corpus.SkillFileName)
		if _, err := os.Stat(specPath); err != nil {
			continue
		}
		specTokens := budget.EstimateFileTokens(specPath)

		// Largest reference for this specialist only. ReferenceFiles is
		// sorted, so ties keep the first encountered.
		maxRefTokens := 0
		maxRefPath := ""
		for _, refPath := range corpus.ReferenceFiles(specDir) {
			if tokens := budget.EstimateFileTokens(refPath); tokens > maxRefTokens {
				maxRefTokens = tokens
				maxRefPath = c.classifier.Rel(refPath)
			}
		}

		total := coordinatorTokens + specTokens + maxRefTokens
		relSpec := c.classifier.Rel(specDir)
		ceiling := c.table.ResolveCeiling(relSpec)

		if total > ceiling {
			detail := fmt.Sprintf("coordinator=%d + specialist(%s)=%d", coordinatorTokens, entry.Name(), specTokens)
			if maxRefTokens > 0 {
				detail += fmt.Sprintf(" + reference(%s)=%d", maxRefPath, maxRefTokens)
			}
			findings = append(findings, Finding{
				Tier: TierHard,
				Path: relSpec,
				Message: fmt.Sprintf(
					"context load %d tokens exceeds ceiling of %d (%s). Reduce the specialist or split the largest reference file.",
					total, ceiling, detail),
			})
		}
	}
	return findings
}
