package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads rows so every column lines up with its widest cell. Widths are
// measured in terminal cells, so styled cells align too. Trailing padding is
// dropped from each line.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := lipgloss.Width(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
