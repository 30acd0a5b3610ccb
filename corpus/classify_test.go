package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestFile creates a file (and its parents) under root.
func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// newTestCorpus builds a small corpus with one suite, one standalone
// skill, shared references, and excluded directories.
func newTestCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, root, "review-skill/SKILL.md", "# Review coordinator")
	writeTestFile(t, root, "review-skill/skills/style/SKILL.md", "# Style specialist")
	writeTestFile(t, root, "review-skill/skills/style/references/guide.md", "style guide")
	writeTestFile(t, root, "writing-skill/SKILL.md", "# Writing skill")
	writeTestFile(t, root, "writing-skill/references/tone.md", "tone notes")
	writeTestFile(t, root, "shared-references/security/SKILL.md", "shared doc")
	writeTestFile(t, root, "shared-references/security/terms.md", "terms")
	writeTestFile(t, root, "pipeline/hooks/SKILL.md", "tooling")
	writeTestFile(t, root, "eval-cases/basic/SKILL.md", "fixture")
	writeTestFile(t, root, "templates/SKILL.md", "template")
	writeTestFile(t, root, "README.md", "readme")
	return root
}

func TestClassify(t *testing.T) {
	root := newTestCorpus(t)
	classifier, err := NewClassifier(root, nil)
	require.NoError(t, err)

	tests := []struct {
		path string
		want Classification
	}{
		{"review-skill/SKILL.md", Coordinator},
		{"review-skill/skills/style/SKILL.md", Specialist},
		{"review-skill/skills/style/references/guide.md", Reference},
		{"writing-skill/SKILL.md", Standalone},
		{"writing-skill/references/tone.md", Reference},
		// Reference-ness wins before the basename gate: a SKILL.md under
		// shared-references/ is still reference material.
		{"shared-references/security/SKILL.md", Reference},
		{"shared-references/security/terms.md", Reference},
		{"pipeline/hooks/SKILL.md", Skip},
		{"eval-cases/basic/SKILL.md", Skip},
		{"templates/SKILL.md", Skip},
		{"README.md", Skip},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := classifier.Classify(filepath.Join(root, filepath.FromSlash(tt.path)))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyRelativePath(t *testing.T) {
	root := newTestCorpus(t)
	classifier, err := NewClassifier(root, nil)
	require.NoError(t, err)

	// Relative inputs resolve against the repository root.
	require.Equal(t, Coordinator, classifier.Classify("review-skill/SKILL.md"))
	require.Equal(t, Specialist, classifier.Classify("review-skill/skills/style/SKILL.md"))
}

func TestClassifyCoordinatorProbeIsLocal(t *testing.T) {
	// A specialist has "skills" in its lineage but no skills/ directory
	// beside its own document; it must never classify as coordinator.
	root := newTestCorpus(t)
	classifier, err := NewClassifier(root, nil)
	require.NoError(t, err)

	specialist := filepath.Join(root, "review-skill", "skills", "style", "SKILL.md")
	require.Equal(t, Specialist, classifier.Classify(specialist))
}

func TestExcludedAnyFilename(t *testing.T) {
	root := newTestCorpus(t)
	classifier, err := NewClassifier(root, nil)
	require.NoError(t, err)

	for _, rel := range []string{
		"pipeline/hooks/SKILL.md",
		"pipeline/config/budgets.json",
		"eval-cases/basic/references/anything.md",
		"node_modules/pkg/README.md",
	} {
		writeTestFile(t, root, rel, "x")
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.True(t, classifier.Excluded(path), rel)
		require.Equal(t, Skip, classifier.Classify(path), rel)
	}
}

func TestClassifierExcludeGlobs(t *testing.T) {
	root := newTestCorpus(t)
	writeTestFile(t, root, "drafts/new-skill/SKILL.md", "draft")

	classifier, err := NewClassifier(root, []string{"drafts/**"})
	require.NoError(t, err)

	path := filepath.Join(root, "drafts", "new-skill", "SKILL.md")
	require.True(t, classifier.Excluded(path))
	require.Equal(t, Skip, classifier.Classify(path))

	// Other paths stay governed.
	require.Equal(t, Standalone, classifier.Classify(filepath.Join(root, "writing-skill", "SKILL.md")))
}

func TestClassifierBadExcludeGlob(t *testing.T) {
	_, err := NewClassifier(t.TempDir(), []string{"[unclosed"})
	require.Error(t, err)
}

func TestRelNormalizesSeparators(t *testing.T) {
	root := newTestCorpus(t)
	classifier, err := NewClassifier(root, nil)
	require.NoError(t, err)

	rel := classifier.Rel(filepath.Join(root, "review-skill", "skills", "style", "SKILL.md"))
	require.Equal(t, "review-skill/skills/style/SKILL.md", rel)
}
