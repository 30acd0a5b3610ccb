package budget

import (
	"math"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

// TokenRatio converts a word count into an estimated token count.
const TokenRatio = 1.33

// DefaultCeiling is the simultaneous context-load limit in tokens when the
// table specifies none.
const DefaultCeiling = 5500

// DefaultWarnThreshold is the fraction of a word budget at which advisory
// headroom notices begin.
const DefaultWarnThreshold = 0.90

// EstimateTokens converts a word count into an estimated token count.
// Callers on the budget path supply frontmatter-stripped word counts.
func EstimateTokens(words int) int {
	return int(math.Ceil(float64(words) * TokenRatio))
}

// EstimateFileTokens estimates the token cost of loading an entire file,
// frontmatter included. This is the context-load counting mode and is
// intentionally distinct from the frontmatter-stripped budget mode: the
// whole file is what occupies the context window at runtime. Unreadable
// files estimate to zero.
func EstimateFileTokens(path string) int {
	return EstimateTokens(corpus.FileWords(path))
}
