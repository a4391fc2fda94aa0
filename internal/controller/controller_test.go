package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/atomicstack/menutree/internal/console"
	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/testutil"
	"github.com/atomicstack/menutree/internal/theme"
)

const rootMenu = "1. SmallText\n2. BigText\n3. MyDirectory\nEnter a navigation option: \n"

func newSession(root *menu.Navigation, lines ...string) (*Controller, *strings.Builder) {
	var out strings.Builder
	c := console.New(testutil.Input(lines...), &out, theme.Plain())
	return New(root, c, WithSessionID("test")), &out
}

func TestSelectingSmallTextShowsItThenResets(t *testing.T) {
	root := menu.Demo()
	ctrl, out := newSession(root, "1")

	if err := ctrl.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctrl.PointAt() != root {
		t.Fatalf("expected reset to root, got %q", ctrl.PointAt().Title())
	}
	expected := rootMenu + "first small text\n\n"
	if out.String() != expected {
		t.Fatalf("expected output %q, got %q", expected, out.String())
	}
}

func TestSelectionMovesPointerBeforeReset(t *testing.T) {
	root := menu.Demo()
	ctrl, _ := newSession(root, "1")

	if err := ctrl.Display(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	small, _ := root.Option(0)
	if ctrl.PointAt() != small {
		t.Fatalf("expected pointer at SmallText, got %q", ctrl.PointAt().Title())
	}
}

func TestNestedNavigationResetsToOriginalRoot(t *testing.T) {
	root := menu.Demo()
	ctrl, out := newSession(root, "3", "1")

	if err := ctrl.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nested, _ := root.Option(2)
	if ctrl.PointAt() != nested {
		t.Fatalf("expected pointer at MyDirectory, got %q", ctrl.PointAt().Title())
	}
	if err := ctrl.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctrl.PointAt() != root {
		t.Fatalf("expected reset to the session root, got %q", ctrl.PointAt().Title())
	}

	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("expected clean end of input, got %v", err)
	}
	testutil.AssertGolden(t, "nested_navigation.golden", out.String())
}

func TestInvalidInputIsReportedBeforeSuccess(t *testing.T) {
	root := menu.Demo()
	ctrl, out := newSession(root, "abc", "2")

	if err := ctrl.Display(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	big, _ := root.Option(1)
	if ctrl.PointAt() != big {
		t.Fatalf("expected pointer at BigText, got %q", ctrl.PointAt().Title())
	}
	if got := strings.Count(out.String(), "Invalid input\n"); got != 1 {
		t.Fatalf("expected one invalid input line, got %d", got)
	}
}

func TestOutOfRangeSelectionRepeatsPrompt(t *testing.T) {
	root := menu.Demo()
	ctrl, out := newSession(root, "5")

	err := ctrl.Run(context.Background())
	if err != nil {
		t.Fatalf("expected clean end of input, got %v", err)
	}
	if ctrl.PointAt() != root {
		t.Fatalf("expected pointer to stay at root, got %q", ctrl.PointAt().Title())
	}
	expected := rootMenu + "Invalid input\n"
	if out.String() != expected {
		t.Fatalf("expected output %q, got %q", expected, out.String())
	}
}

func TestRunTranscriptWithRetries(t *testing.T) {
	ctrl, out := newSession(menu.Demo(), "abc", "5", "2")
	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertGolden(t, "invalid_then_big_text.golden", out.String())
}

func TestEverySelectionTargetsVisibleOption(t *testing.T) {
	root := menu.Demo()
	for k := 1; k <= root.Len(); k++ {
		ctrl, _ := newSession(root, strconv.Itoa(k))
		if err := ctrl.Display(); err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		want, _ := root.Option(k - 1)
		if ctrl.PointAt() != want {
			t.Fatalf("k=%d: expected %q, got %q", k, want.Title(), ctrl.PointAt().Title())
		}
	}
}

func TestBoundarySelections(t *testing.T) {
	root := menu.Demo()
	n := root.Len()

	ctrl, out := newSession(root, "0", strconv.Itoa(n+1), strconv.Itoa(n))
	if err := ctrl.Display(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last, _ := root.Option(n - 1)
	if ctrl.PointAt() != last {
		t.Fatalf("expected last option, got %q", ctrl.PointAt().Title())
	}
	if got := strings.Count(out.String(), "Invalid input\n"); got != 2 {
		t.Fatalf("expected 0 and N+1 rejected, got %d invalid lines", got)
	}
}

func TestRunEndsWhenInputHasNoValidSelection(t *testing.T) {
	root := menu.Demo()
	invalid := []string{"x", "0", "4", "-3", ""}
	ctrl, out := newSession(root, invalid...)

	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("expected end of input to end the session, got %v", err)
	}
	if got := strings.Count(out.String(), "Invalid input\n"); got != len(invalid) {
		t.Fatalf("expected %d invalid lines, got %d", len(invalid), got)
	}
	if ctrl.PointAt() != root {
		t.Fatalf("expected pointer untouched")
	}
}

func TestOversizedLineIsRejectedAndRetried(t *testing.T) {
	root := menu.Demo()
	ctrl, out := newSession(root, strings.Repeat("9", 70*1024), "2")

	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("expected clean end of input, got %v", err)
	}
	if got := strings.Count(out.String(), "Invalid input\n"); got != 1 {
		t.Fatalf("expected one invalid input line, got %d", got)
	}
	if !strings.Contains(out.String(), "second big text content\n") {
		t.Fatalf("expected BigText after the retry, got %q", out.String())
	}
	if ctrl.PointAt() != root {
		t.Fatalf("expected reset to root")
	}
}

func TestQuitWordEndsRun(t *testing.T) {
	root := menu.Demo()
	var out strings.Builder
	c := console.New(testutil.Input("3", "q", "1"), &out, theme.Plain())
	ctrl := New(root, c, WithQuitWord("q"))

	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("expected quit to end cleanly, got %v", err)
	}
	nested, _ := root.Option(2)
	if ctrl.PointAt() != nested {
		t.Fatalf("expected session to stop inside MyDirectory, got %q", ctrl.PointAt().Title())
	}
}

func TestRunStopsWhenContextDone(t *testing.T) {
	ctrl, out := newSession(menu.Demo(), "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ctrl.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestSessionsShareTreeIndependently(t *testing.T) {
	root := menu.Demo()
	first, _ := newSession(root, "3")
	second, _ := newSession(root, "2")

	if err := first.Display(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := second.Display(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.PointAt() == second.PointAt() {
		t.Fatalf("expected independent positions")
	}
	nested, _ := root.Option(2)
	if first.PointAt() != nested {
		t.Fatalf("expected first session in MyDirectory")
	}
}

func TestSelectRejectsOutOfRangeIndex(t *testing.T) {
	root := menu.Demo()
	ctrl, _ := newSession(root)
	if _, err := ctrl.Select(root, root.Len()); !errors.Is(err, menu.ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath, got %v", err)
	}
	cmd, err := ctrl.Select(root, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctrl.Bus().Execute(cmd)
	small, _ := root.Option(0)
	if ctrl.PointAt() != small {
		t.Fatalf("expected pointer at SmallText")
	}
}

func TestNewGeneratesSessionID(t *testing.T) {
	c := console.New(testutil.Input(), &strings.Builder{}, nil)
	a := New(menu.Demo(), c)
	b := New(menu.Demo(), c)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct generated session ids, got %q and %q", a.ID(), b.ID())
	}
}
