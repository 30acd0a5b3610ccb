package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/skillgov/check"
)

var (
	failStyle = color.New(color.FgRed, color.Bold)
	warnStyle = color.New(color.FgYellow)
	infoStyle = color.New(color.FgCyan)
)

func tierStyle(tier check.Tier) *color.Color {
	switch tier {
	case check.TierHard:
		return failStyle
	case check.TierWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

// printFinding writes one diagnostic line. Only the prefix is colored, and
// color is disabled automatically off-terminal, so pre-commit output stays
// plain FAIL:/WARNING:/INFO: text.
func printFinding(w io.Writer, f check.Finding) {
	prefix := tierStyle(f.Tier).Sprintf("%s:", f.Prefix())
	if loc := f.Location(); loc != "" {
		fmt.Fprintf(w, "%s %s: %s\n", prefix, loc, f.Message)
		return
	}
	fmt.Fprintf(w, "%s %s\n", prefix, f.Message)
}
