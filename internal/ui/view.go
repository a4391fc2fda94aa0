package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/theme"
)

const (
	selectedIndicator = "› "
	itemIndicator     = "  "
	ellipsis          = "…"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.menuHeader(), style: m.styles.Header})
	switch m.mode {
	case ModeLeaf:
		lines = append(lines, m.leafLines()...)
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: leafHint, style: m.styles.Footer})
	default:
		lines = append(lines, m.menuLines()...)
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: m.styles.Footer})
	}
	return m.renderLines(lines)
}

func (m *Model) menuHeader() string {
	return strings.Join(menu.Trail(m.ctrl.PointAt()), menuHeaderSeparator)
}

func (m *Model) menuLines() []styledLine {
	nav := m.currentNavigation()
	if nav == nil || m.level == nil {
		return nil
	}
	options := nav.Children()
	start, end := m.level.Visible(m.maxVisibleOptions())
	lines := make([]styledLine, 0, end-start+4)
	for i := start; i < end; i++ {
		text := menu.OptionLine(i, options[i])
		if i == m.level.Cursor {
			lines = append(lines, styledLine{text: selectedIndicator + text, style: m.styles.SelectedOption})
			continue
		}
		lines = append(lines, styledLine{text: itemIndicator + text, style: m.styles.Option})
	}
	lines = append(lines, styledLine{})
	interaction := nav.Interaction()
	lines = append(lines, styledLine{text: theme.Render(m.styles.Prompt, interaction.Text) + m.input.View()})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: m.styles.Error})
	}
	return lines
}

func (m *Model) leafLines() []styledLine {
	current := m.ctrl.PointAt()
	switch el := current.(type) {
	case *menu.BigText:
		return []styledLine{
			{text: el.Header, style: m.styles.LeafHeader},
			{text: el.Content, style: m.styles.LeafBody},
		}
	default:
		text := menu.Lines(current)
		lines := make([]styledLine, 0, len(text))
		for _, line := range text {
			lines = append(lines, styledLine{text: line, style: m.styles.LeafBody})
		}
		return lines
	}
}

func (m *Model) renderLines(lines []styledLine) string {
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if m.width > 0 {
			text = truncate.StringWithTail(text, uint(m.width), ellipsis)
		}
		out[i] = theme.Render(line.style, text)
	}
	return strings.Join(out, "\n")
}
