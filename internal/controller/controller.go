// Package controller drives a navigation session: it keeps the element the
// user is currently looking at, displays it, and moves through the tree as
// selections are made.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/atomicstack/menutree/internal/command"
	"github.com/atomicstack/menutree/internal/console"
	"github.com/atomicstack/menutree/internal/logging/events"
	"github.com/atomicstack/menutree/internal/menu"
	"github.com/atomicstack/menutree/internal/prompt"
)

// Console is the line I/O a session needs.
type Console interface {
	prompt.LineReader
	prompt.LineWriter
	WriteLine(kind console.Kind, text string) error
	Blank() error
}

// Controller holds the current position of one session in a shared,
// read-only tree.
type Controller struct {
	id      string
	root    *menu.Navigation
	pointAt menu.Element
	console Console
	bus     *command.Bus
	quit    string
}

// Option customises a Controller.
type Option func(*Controller)

// WithQuitWord sets the input that ends the session. Empty disables it.
func WithQuitWord(word string) Option {
	return func(c *Controller) {
		c.quit = word
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// WithBus routes commands through bus.
func WithBus(bus *command.Bus) Option {
	return func(c *Controller) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// New starts a session pointing at root.
func New(root *menu.Navigation, c Console, opts ...Option) *Controller {
	ctrl := &Controller{
		id:      uuid.NewString(),
		root:    root,
		pointAt: root,
		console: c,
		bus:     command.New(),
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	return ctrl
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// Root returns the element the session resets to.
func (c *Controller) Root() *menu.Navigation {
	return c.root
}

// PointAt returns the current element.
func (c *Controller) PointAt() menu.Element {
	return c.pointAt
}

// SetPointAt moves the session to e.
func (c *Controller) SetPointAt(e menu.Element) {
	c.pointAt = e
}

// Reset moves the session back to its root.
func (c *Controller) Reset() {
	c.pointAt = c.root
}

// Bus returns the bus commands run through.
func (c *Controller) Bus() *command.Bus {
	return c.bus
}

// Select builds the command that moves the session to option index of nav.
func (c *Controller) Select(nav *menu.Navigation, index int) (command.Command, error) {
	option, ok := nav.Option(index)
	if !ok {
		return nil, fmt.Errorf("option %d of %q: %w", index+1, nav.Title(), menu.ErrUnknownPath)
	}
	events.Nav.Select(menu.Path(nav), index, menu.Path(option))
	return command.Navigate{Pointer: c, Target: option}, nil
}

// NavigationInteraction builds the selection interaction for nav. Validated
// indexes address nav's visible options only.
func (c *Controller) NavigationInteraction(nav *menu.Navigation) *Interaction[int] {
	it := nav.Interaction()
	p := prompt.New[int](it.Title, prompt.MenuIndex{Options: it.Options})
	p.Quit = c.quit
	return &Interaction[int]{
		Title:  it.Title,
		Text:   it.Text,
		Prompt: p,
		Create: func(index int) command.Command {
			cmd, err := c.Select(nav, index)
			if err != nil {
				return command.Blank{}
			}
			return cmd
		},
	}
}

// Display shows the current element. For a navigation this blocks until the
// user makes a valid selection, which moves the session.
func (c *Controller) Display() error {
	return c.display(c.pointAt)
}

func (c *Controller) display(e menu.Element) error {
	switch el := e.(type) {
	case *menu.Navigation:
		events.Nav.Display(menu.Path(el), el.Title(), el.Len())
		for i, option := range el.Children() {
			if err := c.console.WriteLine(console.KindOption, menu.OptionLine(i, option)); err != nil {
				return err
			}
		}
		return c.NavigationInteraction(el).Display(c.console, c.bus)
	case *menu.SmallText:
		return c.console.WriteLine(console.KindText, el.Text)
	case *menu.BigText:
		if err := c.console.WriteLine(console.KindLeafHeader, el.Header); err != nil {
			return err
		}
		return c.console.WriteLine(console.KindLeafBody, el.Content)
	default:
		return fmt.Errorf("cannot display %T", e)
	}
}

// Step runs one display cycle. When the cycle lands on a leaf, the leaf is
// shown, the session returns to its root and a blank separator is written.
func (c *Controller) Step() error {
	if err := c.Display(); err != nil {
		return err
	}
	if !menu.IsLeaf(c.pointAt) {
		return nil
	}
	if err := c.Display(); err != nil {
		return err
	}
	leaf := c.pointAt
	c.Reset()
	events.Session.Reset(c.id, menu.Path(leaf), menu.Path(c.root))
	return c.console.Blank()
}

// Run repeats Step until the input ends, the user quits or ctx is done.
// Cancellation is only observed between cycles; a blocked read is not
// interrupted.
func (c *Controller) Run(ctx context.Context) error {
	events.Session.Start(c.id, menu.Path(c.root))
	for {
		select {
		case <-ctx.Done():
			events.Session.End(c.id, events.SessionReasonCanceled)
			return ctx.Err()
		default:
		}
		err := c.Step()
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			events.Session.End(c.id, events.SessionReasonEOF)
			return nil
		case errors.Is(err, prompt.ErrQuit):
			events.Session.End(c.id, events.SessionReasonQuit)
			return nil
		default:
			events.Session.End(c.id, events.SessionReasonError)
			return fmt.Errorf("session %s: %w", c.id, err)
		}
	}
}
