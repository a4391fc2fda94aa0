package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/menutree/internal/app"
	"github.com/atomicstack/menutree/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			TreeFile:   "tree.yaml",
			QuitWord:   "q",
			Color:      "never",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"tree":   "tree.yaml",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"--tree", "tree.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["tree"] != "tree.yaml" {
		t.Fatalf("expected tree flag %q, got %v", "tree.yaml", flagsValue["tree"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func runCommand(t *testing.T, environ []string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(environ)
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTreeCommandListsDemoTree(t *testing.T) {
	out, err := runCommand(t, nil, "tree")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "root") || !strings.HasSuffix(lines[0], "root node") {
		t.Fatalf("expected root row first, got %q", lines[0])
	}
	if fields := strings.Fields(lines[5]); len(fields) < 2 || fields[0] != "3:2" || fields[1] != "big" {
		t.Fatalf("expected nested big text row last, got %q", lines[5])
	}
}

func TestTreeCommandReadsTreeFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	data := "title = \"top\"\n\n[[options]]\ntitle = \"only\"\ntext = \"hello\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	out, err := runCommand(t, []string{"MENUTREE_TREE=" + path}, "tree")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "only") || strings.Contains(out, "MyDirectory") {
		t.Fatalf("expected tree from file, got:\n%s", out)
	}
}

func TestFindCommandRanksMatches(t *testing.T) {
	out, err := runCommand(t, nil, "find", "big")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "BigText") || !strings.Contains(out, "My Big Story") {
		t.Fatalf("expected both big nodes, got:\n%s", out)
	}
}

func TestFindCommandNoMatches(t *testing.T) {
	out, err := runCommand(t, nil, "find", "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "no matches" {
		t.Fatalf("expected no matches, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, nil, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "menutree "+version {
		t.Fatalf("expected version line, got %q", out)
	}
}

func TestInvalidColorIsConfigurationError(t *testing.T) {
	_, err := runCommand(t, nil, "--color", "purple", "tree")
	var exit *exitError
	if !errors.As(err, &exit) || exit.code != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
}

func TestMissingTreeFileIsConfigurationError(t *testing.T) {
	_, err := runCommand(t, nil, "--tree", filepath.Join(t.TempDir(), "missing.yaml"), "tree")
	var exit *exitError
	if !errors.As(err, &exit) || exit.code != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
}
