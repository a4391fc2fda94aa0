package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/menutree/internal/app"
	"github.com/atomicstack/menutree/internal/logging"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envTree     = "MENUTREE_TREE"
	envRoot     = "MENUTREE_ROOT"
	envTUI      = "MENUTREE_TUI"
	envQuit     = "MENUTREE_QUIT"
	envColor    = "MENUTREE_COLOR"
	envWidth    = "MENUTREE_WIDTH"
	envHeight   = "MENUTREE_HEIGHT"
	envFooter   = "MENUTREE_FOOTER"
	envTrace    = "MENUTREE_TRACE"
	envLogFile  = "MENUTREE_LOG_FILE"
	envLogLevel = "MENUTREE_LOG_LEVEL"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultQuitWord ends a console session when typed at a prompt.
const DefaultQuitWord = "q"

// Flags holds the values bound to a flag set.
type Flags struct {
	tree     *string
	root     *string
	tui      *bool
	quit     *string
	color    *string
	width    *int
	height   *int
	footer   *bool
	trace    *bool
	logFile  *string
	logLevel *string
}

// RegisterFlags defines every option on fs. Environment values become the
// flag defaults, so an explicit flag always wins.
func RegisterFlags(fs *pflag.FlagSet, environ []string) *Flags {
	env := parseEnv(environ)
	return &Flags{
		tree:     fs.String("tree", envOrDefault(env, envTree, ""), "tree definition file (.yaml, .yml or .toml); defaults to the built-in demo tree"),
		root:     fs.String("root", envOrDefault(env, envRoot, ""), "selection path of the navigation to start at, e.g. 3"),
		tui:      fs.Bool("tui", envOrBool(env, envTUI, false), "run the full-screen frontend instead of the line console"),
		quit:     fs.String("quit", envOrDefault(env, envQuit, DefaultQuitWord), "input that ends the session (empty disables)"),
		color:    fs.String("color", envOrDefault(env, envColor, ColorAuto), "style console output: auto, always or never"),
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "full-screen width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "full-screen height in rows (0 uses terminal height)"),
		footer:   fs.Bool("footer", envOrBool(env, envFooter, false), "show the key hint row in the full-screen frontend"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		logLevel: fs.String("log-level", envOrDefault(env, envLogLevel, ""), "log level: debug, info, warn or error (empty is silent)"),
	}
}

// Config assembles the parsed flag values. args is recorded as given.
func (f *Flags) Config(args []string) (Config, error) {
	if *f.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *f.width)
	}
	if *f.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *f.height)
	}

	cfg := Config{
		App: app.Config{
			TreeFile:   *f.tree,
			RootPath:   *f.root,
			TUI:        *f.tui,
			QuitWord:   *f.quit,
			Color:      strings.ToLower(strings.TrimSpace(*f.color)),
			Width:      *f.width,
			Height:     *f.height,
			ShowFooter: *f.footer,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Level:    *f.logLevel,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"tree":     *f.tree,
			"root":     *f.root,
			"tui":      strconv.FormatBool(*f.tui),
			"quit":     *f.quit,
			"color":    *f.color,
			"width":    strconv.Itoa(*f.width),
			"height":   strconv.Itoa(*f.height),
			"footer":   strconv.FormatBool(*f.footer),
			"trace":    strconv.FormatBool(*f.trace),
			"logFile":  *f.logFile,
			"logLevel": *f.logLevel,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("menutree", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := RegisterFlags(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Config(args)
}

// Validate ensures the configuration can be acted on.
func Validate(cfg Config) error {
	switch cfg.App.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", cfg.App.Color)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if cfg.App.TreeFile != "" {
		info, err := os.Stat(cfg.App.TreeFile)
		if err != nil {
			return fmt.Errorf("tree file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("tree file %s is a directory", cfg.App.TreeFile)
		}
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
