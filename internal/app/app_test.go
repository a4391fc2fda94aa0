package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/menutree/internal/menu"
)

func TestRunWithConsoleDemoTree(t *testing.T) {
	var out strings.Builder
	err := RunWith(context.Background(), Config{QuitWord: "q"}, Streams{
		In:  strings.NewReader("1\nq\n"),
		Out: &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "first small text\n") {
		t.Fatalf("expected small text in output, got %q", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected plain output on a non-terminal, got %q", out.String())
	}
}

func TestRunWithStartsAtRootPath(t *testing.T) {
	var out strings.Builder
	err := RunWith(context.Background(), Config{RootPath: "3"}, Streams{
		In:  strings.NewReader(""),
		Out: &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "1. Another SmallText\n") {
		t.Fatalf("expected nested menu first, got %q", out.String())
	}
}

func TestRunWithRejectsLeafRootPath(t *testing.T) {
	err := RunWith(context.Background(), Config{RootPath: "1"}, Streams{
		In:  strings.NewReader(""),
		Out: &strings.Builder{},
	})
	if err == nil {
		t.Fatalf("expected error for a leaf start path")
	}
}

func TestRunWithCanceledContextIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunWith(ctx, Config{}, Streams{In: strings.NewReader("1\n"), Out: &strings.Builder{}})
	if err != nil {
		t.Fatalf("expected cancellation to end cleanly, got %v", err)
	}
}

func TestLoadTreeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	data := "title: top\noptions:\n  - title: only\n    text: hello\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	root, err := LoadTree(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title() != "top" || root.Len() != 1 {
		t.Fatalf("expected top with one option, got %q with %d", root.Title(), root.Len())
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	if _, err := LoadTree(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestStartNodeDefaultsToRoot(t *testing.T) {
	root := menu.Demo()
	for _, path := range []string{"", menu.RootPath} {
		start, err := StartNode(root, path)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", path, err)
		}
		if start != root {
			t.Fatalf("%q: expected the tree root, got %q", path, start.Title())
		}
	}
}

func TestStartNodeUnknownPath(t *testing.T) {
	_, err := StartNode(menu.Demo(), "9")
	if !errors.Is(err, menu.ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath, got %v", err)
	}
}

func TestStylesFollowColorMode(t *testing.T) {
	if Styles("never", true).Header != nil {
		t.Fatalf("expected plain styles for never")
	}
	if Styles("always", false).Header == nil {
		t.Fatalf("expected styled output for always")
	}
	if Styles("auto", false).Header != nil {
		t.Fatalf("expected plain styles for auto off a terminal")
	}
	if Styles("auto", true).Header == nil {
		t.Fatalf("expected styled output for auto on a terminal")
	}
}
