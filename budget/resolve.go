package budget

import (
	"strings"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

// ResolveLimits returns the effective (max words, max tokens) pair for a
// file. Resolution is an ordered fallback chain: the override entry's
// role-prefixed keys, then its shorthand keys, then the table's global
// per-role limits. An override that specifies only a word limit derives
// its token limit from the fixed ratio instead of leaking the global token
// cap. Roles without budgets (skip, unknown) resolve to (nil, nil).
//
// The lookup is stateless and path-keyed; it is re-run independently for
// every file.
func (t *Table) ResolveLimits(relPath string, class corpus.Classification) (maxWords, maxTokens *int) {
	normalized := strings.ReplaceAll(relPath, "\\", "/")

	if override, ok := t.Overrides[normalized]; ok {
		roleWords, roleTokens := override.roleLimits(class)
		words := firstInt(roleWords, override.MaxWords)
		if words != nil {
			tokens := firstInt(roleTokens, override.MaxTokens)
			if tokens == nil {
				derived := EstimateTokens(*words)
				tokens = &derived
			}
			return words, tokens
		}
	}

	return t.roleLimits(class)
}

// ResolveCeiling returns the maximum simultaneous token load for a suite
// or specialist key (a repository-relative path, trailing slashes
// stripped): the key's override if it carries one, else the table's global
// value, else DefaultCeiling.
func (t *Table) ResolveCeiling(key string) int {
	normalized := strings.TrimRight(strings.ReplaceAll(key, "\\", "/"), "/")
	if override, ok := t.Overrides[normalized]; ok && override.MaxSimultaneousTokens != nil {
		return *override.MaxSimultaneousTokens
	}
	return t.GlobalCeiling()
}

// GlobalCeiling returns the table-wide simultaneous token limit.
func (t *Table) GlobalCeiling() int {
	if t.MaxSimultaneousTokens != nil {
		return *t.MaxSimultaneousTokens
	}
	return DefaultCeiling
}

// WarnRatio returns the advisory threshold as a fraction of the word
// budget.
func (t *Table) WarnRatio() float64 {
	if t.WarnThreshold != nil {
		return *t.WarnThreshold
	}
	return DefaultWarnThreshold
}

func (t *Table) roleLimits(class corpus.Classification) (*int, *int) {
	switch class {
	case corpus.Coordinator:
		return t.CoordinatorMaxWords, t.CoordinatorMaxTokens
	case corpus.Specialist:
		return t.SpecialistMaxWords, t.SpecialistMaxTokens
	case corpus.Standalone:
		return t.StandaloneMaxWords, t.StandaloneMaxTokens
	case corpus.Reference:
		return t.ReferenceMaxWords, t.ReferenceMaxTokens
	default:
		return nil, nil
	}
}

func (o Override) roleLimits(class corpus.Classification) (*int, *int) {
	switch class {
	case corpus.Coordinator:
		return o.CoordinatorMaxWords, o.CoordinatorMaxTokens
	case corpus.Specialist:
		return o.SpecialistMaxWords, o.SpecialistMaxTokens
	case corpus.Standalone:
		return o.StandaloneMaxWords, o.StandaloneMaxTokens
	case corpus.Reference:
		return o.ReferenceMaxWords, o.ReferenceMaxTokens
	default:
		return nil, nil
	}
}

// firstInt returns the first non-nil value in the fallback chain.
func firstInt(candidates ...*int) *int {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
