package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// RefInfo is one reference file's contribution to a context load.
type RefInfo struct {
	Path   string
	Words  int
	Tokens int
}

// SpecialistInfo is one specialist's contribution: its document plus all
// of its reference files.
type SpecialistInfo struct {
	Name       string
	Words      int
	Tokens     int
	References []RefInfo
	Total      int
}

// SkillAnalysis is the context-load breakdown for one top-level skill
// directory. For a standalone skill the worst case is the document plus
// every reference loaded at once; for a suite it is the coordinator plus
// the heaviest specialist (with all of that specialist's references).
type SkillAnalysis struct {
	Name                string
	Suite               bool
	Words               int // SKILL.md / coordinator document
	Tokens              int
	References          []RefInfo // standalone only
	Specialists         []SpecialistInfo
	WorstCaseSpecialist string
	TotalWorstCase      int
}

// AnalyzeSkillDir computes the context-load breakdown for one skill
// directory.
func AnalyzeSkillDir(dir string, classifier *corpus.Classifier) SkillAnalysis {
	analysis := SkillAnalysis{
		Name:  filepath.Base(dir),
		Suite: corpus.IsSuite(dir),
	}

	skillPath := filepath.Join(dir, corpus.SkillFileName)
	analysis.Words = corpus.FileWords(skillPath)
	analysis.Tokens = budget.EstimateTokens(analysis.Words)

	if !analysis.Suite {
		refsDir := filepath.Join(dir, "references")
		for _, refPath := range corpus.MarkdownFiles(refsDir) {
			analysis.References = append(analysis.References, refInfo(refPath, classifier))
		}
		total := analysis.Tokens
		for _, ref := range analysis.References {
			total += ref.Tokens
		}
		analysis.TotalWorstCase = total
		return analysis
	}

	skillsDir := filepath.Join(dir, "skills")
	for _, specDir := range subdirectories(skillsDir) {
		spec := SpecialistInfo{Name: filepath.Base(specDir)}
		specPath := filepath.Join(specDir, corpus.SkillFileName)
		spec.Words = corpus.FileWords(specPath)
		spec.Tokens = budget.EstimateTokens(spec.Words)

		refsDir := filepath.Join(specDir, "references")
		for _, refPath := range corpus.MarkdownFiles(refsDir) {
			spec.References = append(spec.References, refInfo(refPath, classifier))
		}
		spec.Total = spec.Tokens
		for _, ref := range spec.References {
			spec.Total += ref.Tokens
		}
		analysis.Specialists = append(analysis.Specialists, spec)
	}

	largest := 0
	for _, spec := range analysis.Specialists {
		if spec.Total > largest {
			largest = spec.Total
			analysis.WorstCaseSpecialist = spec.Name
		}
	}
	analysis.TotalWorstCase = analysis.Tokens + largest
	return analysis
}

// ContextLoadAnalyses analyzes every top-level skill directory in the
// corpus.
func ContextLoadAnalyses(classifier *corpus.Classifier) []SkillAnalysis {
	var analyses []SkillAnalysis
	for _, dir := range corpus.TopLevelSkillDirs(classifier.Root()) {
		analyses = append(analyses, AnalyzeSkillDir(dir, classifier))
	}
	return analyses
}

// WriteContextLoad renders the context-load analyses, flagging every skill
// whose worst case exceeds the global ceiling.
func WriteContextLoad(w io.Writer, analyses []SkillAnalysis, table *budget.Table) {
	ceiling := table.GlobalCeiling()

	fmt.Fprintf(w, "Context load analysis (ceiling: %d tokens)\n\n", ceiling)

	headers := []string{"SKILL", "TYPE", "SKILL.MD", "WORST CASE", "CEILING", "STATUS"}
	rows := make([][]string, 0, len(analyses))
	for _, a := range analyses {
		kind := "standalone"
		if a.Suite {
			kind = "suite"
		}
		status := StatusOK
		if a.TotalWorstCase > ceiling {
			status = StatusOver
		}
		rows = append(rows, []string{
			a.Name,
			kind,
			fmt.Sprintf("%d", a.Tokens),
			fmt.Sprintf("%d", a.TotalWorstCase),
			fmt.Sprintf("%d", ceiling),
			status,
		})
	}
	writeAligned(w, headers, rows, 5)

	fmt.Fprintln(w)
	for _, a := range analyses {
		if a.Suite {
			fmt.Fprintf(w, "%s (suite)\n", a.Name)
			fmt.Fprintf(w, "  coordinator: %d words / ~%d tokens\n", a.Words, a.Tokens)
			for _, spec := range a.Specialists {
				fmt.Fprintf(w, "  %s: %d words / ~%d tokens\n", spec.Name, spec.Words, spec.Tokens)
				for _, ref := range spec.References {
					fmt.Fprintf(w, "    %s: %d words / ~%d tokens\n", ref.Path, ref.Words, ref.Tokens)
				}
				fmt.Fprintf(w, "    subtotal: ~%d tokens\n", spec.Total)
			}
			if a.WorstCaseSpecialist != "" {
				fmt.Fprintf(w, "  worst case (coordinator + %s): ~%d tokens\n", a.WorstCaseSpecialist, a.TotalWorstCase)
			}
		} else {
			fmt.Fprintf(w, "%s (standalone)\n", a.Name)
			fmt.Fprintf(w, "  SKILL.md: %d words / ~%d tokens\n", a.Words, a.Tokens)
			for _, ref := range a.References {
				fmt.Fprintf(w, "  %s: %d words / ~%d tokens\n", ref.Path, ref.Words, ref.Tokens)
			}
			fmt.Fprintf(w, "  worst case (all loaded): ~%d tokens\n", a.TotalWorstCase)
		}
		fmt.Fprintln(w)
	}
}

func refInfo(path string, classifier *corpus.Classifier) RefInfo {
	words := corpus.FileWords(path)
	return RefInfo{
		Path:   classifier.Rel(path),
		Words:  words,
		Tokens: budget.EstimateTokens(words),
	}
}
