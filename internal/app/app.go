package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/atomicstack/menutree/internal/console"
	"github.com/atomicstack/menutree/internal/controller"
	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/theme"
	"github.com/atomicstack/menutree/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	TreeFile   string
	RootPath   string
	TUI        bool
	QuitWord   string
	Color      string
	Width      int
	Height     int
	ShowFooter bool
}

// Streams are the terminal endpoints a session runs against.
type Streams struct {
	In         io.Reader
	Out        io.Writer
	IsTerminal bool
}

// Run executes a session on the process's standard streams.
func Run(ctx context.Context, cfg Config) error {
	return RunWith(ctx, cfg, Streams{
		In:         os.Stdin,
		Out:        os.Stdout,
		IsTerminal: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	})
}

// RunWith loads the tree and runs either the line console or the
// full-screen frontend until the user leaves.
func RunWith(ctx context.Context, cfg Config, streams Streams) error {
	root, err := LoadTree(cfg.TreeFile)
	if err != nil {
		return err
	}
	start, err := StartNode(root, cfg.RootPath)
	if err != nil {
		return err
	}
	styles := Styles(cfg.Color, streams.IsTerminal)
	if cfg.TUI {
		return runProgram(ctx, start, cfg, styles, streams)
	}
	return runConsole(ctx, start, cfg, styles, streams)
}

// LoadTree reads the tree definition at path, or returns the demo tree when
// path is empty.
func LoadTree(path string) (*menu.Navigation, error) {
	if path == "" {
		return menu.Demo(), nil
	}
	root, err := menu.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	return root, nil
}

// StartNode resolves the navigation a session begins at.
func StartNode(root *menu.Navigation, path string) (*menu.Navigation, error) {
	reg := menu.BuildRegistry(root)
	if path == "" || path == menu.RootPath {
		return reg.Root(), nil
	}
	nav, err := reg.Navigation(path)
	if err != nil {
		return nil, fmt.Errorf("start node: %w", err)
	}
	return nav, nil
}

// Styles picks the palette for the color mode.
func Styles(color string, isTerminal bool) *theme.Styles {
	switch color {
	case "always":
		return theme.Default()
	case "never":
		return theme.Plain()
	}
	if isTerminal {
		return theme.Default()
	}
	return theme.Plain()
}

func runConsole(ctx context.Context, start *menu.Navigation, cfg Config, styles *theme.Styles, streams Streams) error {
	c := console.New(streams.In, streams.Out, styles)
	ctrl := controller.New(start, c, controller.WithQuitWord(cfg.QuitWord))
	err := ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runProgram(ctx context.Context, start *menu.Navigation, cfg Config, styles *theme.Styles, streams Streams) error {
	model := ui.NewModel(start, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		QuitWord:   cfg.QuitWord,
		Styles:     styles,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(streams.In),
		tea.WithOutput(streams.Out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
