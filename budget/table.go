// Package budget loads the corpus budget configuration and resolves the
// effective word, token, and context-load limits for each file. The table
// is read once per run and is read-only afterwards; every resolution is a
// pure function of (path, classification, table).
package budget

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Table is the budget configuration artifact, normally loaded from
// pipeline/config/budgets.json at the repository root. All limits are
// pointers so that an absent key is distinguishable from zero.
type Table struct {
	CoordinatorMaxWords  *int `json:"coordinator_max_words,omitempty" yaml:"coordinator_max_words,omitempty"`
	CoordinatorMaxTokens *int `json:"coordinator_max_tokens,omitempty" yaml:"coordinator_max_tokens,omitempty"`
	SpecialistMaxWords   *int `json:"specialist_max_words,omitempty" yaml:"specialist_max_words,omitempty"`
	SpecialistMaxTokens  *int `json:"specialist_max_tokens,omitempty" yaml:"specialist_max_tokens,omitempty"`
	StandaloneMaxWords   *int `json:"standalone_max_words,omitempty" yaml:"standalone_max_words,omitempty"`
	StandaloneMaxTokens  *int `json:"standalone_max_tokens,omitempty" yaml:"standalone_max_tokens,omitempty"`
	ReferenceMaxWords    *int `json:"reference_max_words,omitempty" yaml:"reference_max_words,omitempty"`
	ReferenceMaxTokens   *int `json:"reference_max_tokens,omitempty" yaml:"reference_max_tokens,omitempty"`

	// MaxSimultaneousTokens caps the context load of one coordinator plus
	// one active specialist plus its largest reference file.
	MaxSimultaneousTokens *int `json:"max_simultaneous_tokens,omitempty" yaml:"max_simultaneous_tokens,omitempty"`

	// WarnThreshold is the fraction of a word budget at which the budget
	// check starts emitting advisory headroom notices.
	WarnThreshold *float64 `json:"warn_threshold,omitempty" yaml:"warn_threshold,omitempty"`

	// Exclude lists extra exclusion glob patterns, additive to the fixed
	// excluded-directory set.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Overrides maps a repository-relative path (or suite/specialist key)
	// to a partial override record that takes precedence over the global
	// limits above.
	Overrides map[string]Override `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Override is one path-keyed budget override. Entries may use the
// role-prefixed keys or the shorthand max_words/max_tokens keys that apply
// regardless of role. A rationale documents why the override exists.
type Override struct {
	CoordinatorMaxWords  *int `json:"coordinator_max_words,omitempty" yaml:"coordinator_max_words,omitempty"`
	CoordinatorMaxTokens *int `json:"coordinator_max_tokens,omitempty" yaml:"coordinator_max_tokens,omitempty"`
	SpecialistMaxWords   *int `json:"specialist_max_words,omitempty" yaml:"specialist_max_words,omitempty"`
	SpecialistMaxTokens  *int `json:"specialist_max_tokens,omitempty" yaml:"specialist_max_tokens,omitempty"`
	StandaloneMaxWords   *int `json:"standalone_max_words,omitempty" yaml:"standalone_max_words,omitempty"`
	StandaloneMaxTokens  *int `json:"standalone_max_tokens,omitempty" yaml:"standalone_max_tokens,omitempty"`
	ReferenceMaxWords    *int `json:"reference_max_words,omitempty" yaml:"reference_max_words,omitempty"`
	ReferenceMaxTokens   *int `json:"reference_max_tokens,omitempty" yaml:"reference_max_tokens,omitempty"`

	MaxWords              *int `json:"max_words,omitempty" yaml:"max_words,omitempty"`
	MaxTokens             *int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	MaxSimultaneousTokens *int `json:"max_simultaneous_tokens,omitempty" yaml:"max_simultaneous_tokens,omitempty"`

	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
}

// configNames are tried in order under pipeline/config/.
var configNames = []string{"budgets.json", "budgets.yaml", "budgets.yml"}

// Load reads the budget table from pipeline/config/ under root. A missing
// configuration file is a structural error that fails the whole run.
func Load(root string) (*Table, error) {
	configDir := filepath.Join(root, "pipeline", "config")
	for _, name := range configNames {
		path := filepath.Join(configDir, name)
		if _, err := os.Stat(path); err == nil {
			return ParseFile(path)
		}
	}
	return nil, fmt.Errorf("no budget configuration found under %s", configDir)
}

// ParseFile loads a Table from a file. The file extension is used to
// determine the configuration format (JSON or YAML).
func ParseFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ParseYAML loads a Table from YAML
func ParseYAML(data []byte) (*Table, error) {
	var table Table
	if err := yaml.UnmarshalWithOptions(data, &table, yaml.Strict()); err != nil {
		return nil, err
	}
	return &table, nil
}

// ParseJSON loads a Table from JSON
func ParseJSON(data []byte) (*Table, error) {
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return &table, nil
}
