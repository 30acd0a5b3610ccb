package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// Budget checks each file against its word budget. This check is
// advisory: findings are warn or info tier and never fail a run. Files
// above their target get a warning with the overage; files past the warn
// threshold get an informational headroom notice.
func (c *Checker) Budget(paths []string) []Finding {
	var findings []Finding
	for _, path := range paths {
		findings = append(findings, c.budgetFile(c.classifier.Abs(path))...)
	}
	return findings
}

func (c *Checker) budgetFile(path string) []Finding {
	class := c.classifier.Classify(path)
	if class == corpus.Skip {
		return nil
	}
	rel := c.classifier.Rel(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return []Finding{{
			Tier:    TierWarn,
			Path:    rel,
			Message: fmt.Sprintf("could not read file: %v", err),
		}}
	}

	// Budget counting is frontmatter-stripped; context-load estimation is
	// whole-file. The two modes stay separate.
	words := len(strings.Fields(corpus.StripFrontmatter(string(data))))
	tokens := budget.EstimateTokens(words)

	maxWords, _ := c.table.ResolveLimits(rel, class)
	if maxWords == nil {
		return nil
	}

	var ratio float64
	if *maxWords > 0 {
		ratio = float64(words) / float64(*maxWords)
	}

	switch {
	case ratio > 1.0:
		overage := words - *maxWords
		return []Finding{{
			Tier: TierWarn,
			Path: rel,
			Message: fmt.Sprintf(
				"[%s] %d words (~%d tokens) exceeds target of %d words by %d words (%.0f%%). Refactor: extract checklists, kill prose, deduplicate output specs.",
				class, words, tokens, *maxWords, overage, ratio*100),
		}}
	case ratio > c.table.WarnRatio():
		headroom := *maxWords - words
		return []Finding{{
			Tier: TierInfo,
			Path: rel,
			Message: fmt.Sprintf(
				"[%s] %d words (~%d tokens) at %.0f%% of %d word target -- %d words of headroom remaining.",
				class, words, tokens, ratio*100, *maxWords, headroom),
		}}
	}
	return nil
}
