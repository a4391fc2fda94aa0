package command

import (
	"github.com/atomicstack/menutree/internal/logging/events"
	"github.com/atomicstack/menutree/internal/menu"
)

// Command is a single deferred state change.
type Command interface {
	Execute()
}

// Pointer is the navigation cursor a command moves.
type Pointer interface {
	SetPointAt(menu.Element)
}

// Navigate moves Pointer to Target.
type Navigate struct {
	Pointer Pointer
	Target  menu.Element
}

func (n Navigate) Execute() {
	n.Pointer.SetPointAt(n.Target)
}

// Blank does nothing.
type Blank struct{}

func (Blank) Execute() {}

// Bus coordinates the execution of commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs cmd immediately while emitting trace logs.
func (b *Bus) Execute(cmd Command) {
	name, target := describe(cmd)
	events.Command.Queue(name, target)
	if cmd == nil {
		events.Command.Skip(name)
		return
	}
	cmd.Execute()
	events.Command.Result(name, target)
}

func describe(cmd Command) (string, string) {
	switch c := cmd.(type) {
	case Navigate:
		if c.Target == nil {
			return "navigate", ""
		}
		return "navigate", menu.Path(c.Target)
	case *Navigate:
		if c == nil || c.Target == nil {
			return "navigate", ""
		}
		return "navigate", menu.Path(c.Target)
	case Blank, *Blank:
		return "blank", ""
	case nil:
		return "none", ""
	default:
		return "custom", ""
	}
}
