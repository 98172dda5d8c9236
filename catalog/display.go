package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName renders a puzzle's all-caps internal Name ("SELF-TEST
// DIAGNOSTIC") as human-facing title case ("Self-Test Diagnostic"), the
// way the CLI's list-puzzles table and run summary print it.
func (p Puzzle) DisplayName() string {
	return titleCaser.String(strings.ToLower(p.Name))
}
