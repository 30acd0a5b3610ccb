package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeAligned renders rows as a space-aligned table. Column widths use
// display width so wide characters in paths don't break alignment. When
// statusCol is >= 0, cells in that column are colored by status.
func writeAligned(w io.Writer, headers []string, rows [][]string, statusCol int) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, cells := range rows {
		for i, cell := range cells {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string, styled bool) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
			text := cell
			if styled && i == statusCol {
				if style, ok := statusStyles[cell]; ok {
					text = style.Sprint(cell)
				}
			}
			parts[i] = text + pad
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(headers, false)
	for _, cells := range rows {
		writeRow(cells, true)
	}
}

// subdirectories returns the immediate subdirectories of dir, sorted.
func subdirectories(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	return dirs
}
