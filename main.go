package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/atomicstack/menutree/internal/app"
	"github.com/atomicstack/menutree/internal/config"
	"github.com/atomicstack/menutree/internal/format/table"
	"github.com/atomicstack/menutree/internal/logging"
	"github.com/atomicstack/menutree/internal/logging/events"
	"github.com/atomicstack/menutree/internal/menu"
)

var version = "dev"

// exitError carries the process exit status for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Environ())
	err := cmd.Execute()
	logging.Sync()
	if err == nil {
		return
	}
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.code == 2 {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", exit.err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exit.err)
		}
		os.Exit(exit.code)
	}
	fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	os.Exit(2)
}

func newRootCmd(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "menutree",
		Short:         "Navigate a menu tree by number",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := config.RegisterFlags(root.PersistentFlags(), environ)

	load := func(cmd *cobra.Command, args []string) (config.Config, error) {
		cfg, err := flags.Config(os.Args[1:])
		if err != nil {
			return cfg, &exitError{code: 2, err: err}
		}
		if err := config.Validate(cfg); err != nil {
			return cfg, &exitError{code: 2, err: err}
		}
		return cfg, nil
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := load(cmd, args)
		if err != nil {
			return err
		}
		if err := logging.Configure(logging.Options{
			FilePath: cfg.Logging.FilePath,
			Level:    cfg.Logging.Level,
			Trace:    cfg.Logging.Trace,
		}); err != nil {
			return &exitError{code: 2, err: err}
		}
		logging.Info("startup",
			zap.String("logFile", logging.Path()),
			zap.Bool("trace", logging.TraceEnabled()),
			zap.Bool("tui", cfg.App.TUI),
			zap.String("tree", cfg.App.TreeFile),
		)
		traceStartup(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := app.Run(ctx, cfg.App); err != nil {
			logging.Error(err)
			events.App.Exit("error")
			return &exitError{code: 1, err: err}
		}
		events.App.Exit("done")
		return nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "tree",
			Short: "Print every node of the tree with its selection path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := load(cmd, args)
				if err != nil {
					return err
				}
				reg, err := loadRegistry(cfg.App.TreeFile)
				if err != nil {
					return &exitError{code: 1, err: err}
				}
				return printTree(cmd.OutOrStdout(), reg)
			},
		},
		&cobra.Command{
			Use:   "find QUERY",
			Short: "Fuzzy-search node titles",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := load(cmd, args)
				if err != nil {
					return err
				}
				reg, err := loadRegistry(cfg.App.TreeFile)
				if err != nil {
					return &exitError{code: 1, err: err}
				}
				return printMatches(cmd.OutOrStdout(), reg.Search(args[0]))
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "menutree", version)
			},
		},
	)
	root.SetContext(context.Background())
	return root
}

func loadRegistry(path string) (*menu.Registry, error) {
	root, err := app.LoadTree(path)
	if err != nil {
		return nil, err
	}
	return menu.BuildRegistry(root), nil
}

// printTree writes one row per node: selection path, kind and title.
func printTree(w io.Writer, reg *menu.Registry) error {
	rows := make([][]string, 0, reg.Len())
	reg.Walk(func(id string, e menu.Element) {
		rows = append(rows, []string{id, menu.Kind(e), e.Title()})
	})
	return writeRows(w, rows)
}

func printMatches(w io.Writer, matches []menu.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "no matches")
		return err
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{m.ID, menu.Kind(m.Element), m.Element.Title()})
	}
	return writeRows(w, rows)
}

func writeRows(w io.Writer, rows [][]string) error {
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
