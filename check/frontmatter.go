package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deepnoodle-ai/skillgov/corpus"
)

const minDescriptionWords = 10

var kebabRe = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

var (
	requiredFields  = []string{"name", "description"}
	optionalFields  = map[string]bool{"model": true, "version": true}
	validModelNames = []string{"haiku", "opus", "sonnet"}
	validReasoning  = []string{"high", "low", "medium"}
)

// Frontmatter validates the YAML frontmatter of skill documents against
// the fixed required-field set: name (kebab-case) and description (at
// least ten words), with optional model and version fields. Unknown
// top-level fields are advisory.
func (c *Checker) Frontmatter(paths []string) []Finding {
	var findings []Finding
	for _, path := range paths {
		findings = append(findings, c.frontmatterFile(c.classifier.Abs(path))...)
	}
	return findings
}

func (c *Checker) frontmatterFile(path string) []Finding {
	if c.classifier.Excluded(path) {
		return nil
	}
	if filepath.Base(path) != corpus.SkillFileName {
		return nil
	}
	rel := c.classifier.Rel(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return []Finding{{
			Tier:    TierHard,
			Path:    rel,
			Message: fmt.Sprintf("could not read file: %v", err),
		}}
	}

	fields, err := extractFrontmatter(string(data))
	if err != nil {
		return []Finding{{Tier: TierHard, Path: rel, Message: err.Error()}}
	}

	var findings []Finding
	hard := func(format string, args ...any) {
		findings = append(findings, Finding{Tier: TierHard, Path: rel, Message: fmt.Sprintf(format, args...)})
	}

	for _, field := range requiredFields {
		value, ok := fields[field]
		if !ok {
			hard("missing required field '%s'", field)
			continue
		}
		if isEmptyValue(value) {
			hard("field '%s' must not be empty", field)
		}
	}

	if value, ok := fields["name"]; ok && !isEmptyValue(value) {
		name := fmt.Sprintf("%v", value)
		if !kebabRe.MatchString(name) {
			hard("'name' must be kebab-case (got '%s', expected pattern: %s)", name, kebabRe.String())
		}
	}

	if value, ok := fields["description"]; ok && !isEmptyValue(value) {
		desc := fmt.Sprintf("%v", value)
		if words := len(strings.Fields(desc)); words < minDescriptionWords {
			hard("'description' must be >= %d words (got %d)", minDescriptionWords, words)
		}
	}

	if model, ok := fields["model"].(map[string]any); ok {
		checkModelField := func(key string, valid []string) {
			value, present := model[key]
			if !present {
				return
			}
			s := fmt.Sprintf("%v", value)
			for _, v := range valid {
				if s == v {
					return
				}
			}
			hard("'model.%s' must be one of [%s] (got '%s')", key, strings.Join(valid, ", "), s)
		}
		checkModelField("preferred", validModelNames)
		checkModelField("minimum", validModelNames)
		checkModelField("reasoning_demand", validReasoning)
	}

	var unknown []string
	for key := range fields {
		if !optionalFields[key] && key != "name" && key != "description" {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		findings = append(findings, Finding{
			Tier:    TierWarn,
			Path:    rel,
			Message: fmt.Sprintf("unknown frontmatter field '%s'", key),
		})
	}

	return findings
}

// extractFrontmatter parses the YAML block between leading --- markers.
func extractFrontmatter(text string) (map[string]any, error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, errors.New("no frontmatter found (file must start with ---)")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, errors.New("no closing --- found for frontmatter")
	}

	var raw any
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML in frontmatter: %v", err)
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("frontmatter must be a YAML mapping")
	}
	return fields, nil
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
