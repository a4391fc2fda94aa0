package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menutree/internal/logging/events"
	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/prompt"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		events.Session.End(m.ctrl.ID(), events.SessionReasonQuit)
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	}
	if m.mode == ModeLeaf {
		return nil
	}
	if m.level != nil {
		moved := false
		switch key.String() {
		case "up":
			moved = m.level.MoveCursorUp()
		case "down":
			moved = m.level.MoveCursorDown()
		case "home":
			moved = m.level.MoveCursorHome()
		case "end":
			moved = m.level.MoveCursorEnd()
		case "pgup":
			moved = m.level.MoveCursorPageUp(m.maxVisibleOptions())
		case "pgdown":
			moved = m.level.MoveCursorPageDown(m.maxVisibleOptions())
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
		if moved {
			m.syncViewport()
		}
	}
	return nil
}

// handleEscapeKey steps back to the parent menu; at the session root it quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.ctrl.PointAt()
	if current == menu.Element(m.ctrl.Root()) {
		events.Session.End(m.ctrl.ID(), events.SessionReasonQuit)
		return tea.Quit
	}
	parent := current.Parent()
	if parent == nil {
		m.ctrl.Reset()
	} else {
		m.ctrl.SetPointAt(parent)
	}
	events.Nav.Back(menu.Path(current), menu.Path(m.ctrl.PointAt()))
	m.errMsg = ""
	m.input.Reset()
	m.syncLevel()
	return nil
}

// handleEnterKey submits the typed selection, or the highlighted option when
// nothing was typed. On a leaf it returns to the session root.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.mode == ModeLeaf {
		leaf := m.ctrl.PointAt()
		m.ctrl.Reset()
		events.Session.Reset(m.ctrl.ID(), menu.Path(leaf), menu.Path(m.ctrl.Root()))
		m.syncLevel()
		return nil
	}
	nav := m.currentNavigation()
	if nav == nil {
		return nil
	}
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if m.quitWord != "" && raw == m.quitWord {
		events.Prompt.Quit(nav.Interaction().Title)
		events.Session.End(m.ctrl.ID(), events.SessionReasonQuit)
		return tea.Quit
	}
	if raw == "" && m.level != nil {
		raw = strconv.Itoa(m.level.Selection())
	}
	interaction := nav.Interaction()
	result := prompt.MenuIndex{Options: interaction.Options}.Validate(raw)
	if !result.Valid() {
		events.Prompt.Invalid(interaction.Title, raw, 1)
		m.errMsg = prompt.InvalidInput
		return nil
	}
	cmd, err := m.ctrl.Select(nav, result.Value())
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.ctrl.Bus().Execute(cmd)
	m.errMsg = ""
	m.syncLevel()
	return nil
}
