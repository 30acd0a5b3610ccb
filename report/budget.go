// Package report renders corpus-wide summaries: every file against its
// token budget, and per-skill worst-case context loads. Reports go to
// stdout; diagnostics from the checks go to stderr.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// Status values for a budget row.
const (
	StatusOK    = "OK"
	StatusNear  = "NEAR"
	StatusOver  = "OVER"
	StatusSkip  = "SKIP"
	StatusError = "ERROR"
)

var statusStyles = map[string]*color.Color{
	StatusOK:    color.New(color.FgGreen),
	StatusNear:  color.New(color.FgYellow),
	StatusOver:  color.New(color.FgRed, color.Bold),
	StatusSkip:  color.New(color.Faint),
	StatusError: color.New(color.FgRed),
}

// BudgetRow is one file's standing against its token budget.
type BudgetRow struct {
	Path           string
	Classification corpus.Classification
	Words          int
	Tokens         int
	Limit          int // token limit; -1 when no budget applies
	Headroom       int
	Status         string
}

// BudgetRows computes a budget row for every governed file in the list.
func BudgetRows(files []string, classifier *corpus.Classifier, table *budget.Table) []BudgetRow {
	var rows []BudgetRow
	for _, file := range files {
		path := classifier.Abs(file)
		class := classifier.Classify(path)
		if class == corpus.Skip {
			continue
		}
		rel := classifier.Rel(path)

		data, err := os.ReadFile(path)
		if err != nil {
			rows = append(rows, BudgetRow{
				Path:           rel,
				Classification: class,
				Limit:          -1,
				Status:         StatusError,
			})
			continue
		}
		words := len(strings.Fields(string(data)))
		tokens := budget.EstimateTokens(words)

		_, maxTokens := table.ResolveLimits(rel, class)
		if maxTokens == nil {
			rows = append(rows, BudgetRow{
				Path:           rel,
				Classification: class,
				Words:          words,
				Tokens:         tokens,
				Limit:          -1,
				Status:         StatusSkip,
			})
			continue
		}

		var ratio float64
		if *maxTokens > 0 {
			ratio = float64(tokens) / float64(*maxTokens)
		}
		status := StatusOK
		switch {
		case ratio > 1.0:
			status = StatusOver
		case ratio > table.WarnRatio():
			status = StatusNear
		}
		rows = append(rows, BudgetRow{
			Path:           rel,
			Classification: class,
			Words:          words,
			Tokens:         tokens,
			Limit:          *maxTokens,
			Headroom:       *maxTokens - tokens,
			Status:         status,
		})
	}
	return rows
}

// WriteBudget renders the budget rows as an aligned table with a summary
// footer. Status cells are colored when the writer is a terminal.
func WriteBudget(w io.Writer, rows []BudgetRow) {
	headers := []string{"FILE", "TYPE", "WORDS", "~TOKENS", "LIMIT", "STATUS", "HEADROOM"}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		limit, headroom := "N/A", "N/A"
		if row.Limit >= 0 {
			limit = fmt.Sprintf("%d", row.Limit)
			headroom = fmt.Sprintf("%d", row.Headroom)
		}
		table = append(table, []string{
			row.Path,
			string(row.Classification),
			fmt.Sprintf("%d", row.Words),
			fmt.Sprintf("%d", row.Tokens),
			limit,
			row.Status,
			headroom,
		})
	}
	writeAligned(w, headers, table, 5)

	ok, near, over := 0, 0, 0
	for _, row := range rows {
		switch row.Status {
		case StatusOK:
			ok++
		case StatusNear:
			near++
		case StatusOver:
			over++
		}
	}
	fmt.Fprintf(w, "\n%d OK, %d NEAR, %d OVER (%d files total)\n", ok, near, over, len(rows))
}
