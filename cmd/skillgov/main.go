// Package main provides the skillgov binary entry point. Skillgov runs
// governance checks and reports over a skill-document corpus: frontmatter
// validation, word/token budgets, context-load ceilings, sibling
// isolation, and reference resolution.
package main

import "github.com/deepnoodle-ai/skillgov/cmd/skillgov/cli"

func main() {
	cli.Execute()
}
