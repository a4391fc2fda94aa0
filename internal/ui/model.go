package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menutree/internal/controller"
	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/theme"
	uistate "github.com/atomicstack/menutree/internal/ui/state"
)

type level = uistate.Level

// Mode is what the frontend currently shows.
type Mode int

const (
	// ModeMenu shows a navigation's options and the selection input.
	ModeMenu Mode = iota
	// ModeLeaf shows a selected leaf until enter is pressed.
	ModeLeaf
)

const (
	menuHeaderSeparator = " → "
	footerHint          = "↑/↓ move  enter select  esc back  ctrl+c quit"
	leafHint            = "press enter to return"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the full-screen frontend.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	QuitWord   string
	Styles     *theme.Styles
}

// Model implements the Bubble Tea model for tree navigation. Position in the
// tree is owned by the controller; the model keeps only view state.
type Model struct {
	ctrl        *controller.Controller
	level       *level
	mode        Mode
	input       textinput.Model
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitWord    string
	styles      *theme.Styles

	handlers map[reflect.Type]msgHandler
}

// NewModel starts a navigation session at root.
func NewModel(root *menu.Navigation, opts Options) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 16
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()

	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		ctrl:       controller.New(root, nil, controller.WithQuitWord(opts.QuitWord)),
		input:      input,
		showFooter: opts.ShowFooter,
		quitWord:   opts.QuitWord,
		styles:     styles,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncLevel()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Controller exposes the session driving the model.
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

// currentNavigation returns the menu on screen, or nil while a leaf is shown.
func (m *Model) currentNavigation() *menu.Navigation {
	nav, _ := m.ctrl.PointAt().(*menu.Navigation)
	return nav
}

// syncLevel rebuilds view state after the controller moved.
func (m *Model) syncLevel() {
	nav := m.currentNavigation()
	if nav == nil {
		m.mode = ModeLeaf
		m.level = nil
		return
	}
	m.mode = ModeMenu
	m.level = uistate.NewLevel(menu.Path(nav), nav.Title(), nav.Len())
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.level == nil {
		return
	}
	m.level.EnsureCursorVisible(m.maxVisibleOptions())
}

// maxVisibleOptions is the number of option rows that fit under the header
// and above the prompt block. Zero means no limit.
func (m *Model) maxVisibleOptions() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 4
	if m.showFooter {
		reserved += 2
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}
