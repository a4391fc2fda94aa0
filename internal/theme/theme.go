package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the console and the
// full-screen frontend. A nil style renders text unchanged.
type Styles struct {
	Option         *lipgloss.Style
	SelectedOption *lipgloss.Style
	Prompt         *lipgloss.Style
	Error          *lipgloss.Style
	Header         *lipgloss.Style
	LeafHeader     *lipgloss.Style
	LeafBody       *lipgloss.Style
	Footer         *lipgloss.Style
}

var defaultStyles = Styles{
	Option: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	LeafHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	LeafBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

var plainStyles = Styles{}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set that leaves text untouched.
func Plain() *Styles {
	return &plainStyles
}

// Render applies style to text; nil styles pass text through.
func Render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
