package controller

import (
	"github.com/atomicstack/menutree/internal/command"
	"github.com/atomicstack/menutree/internal/console"
	"github.com/atomicstack/menutree/internal/prompt"
)

// Interaction couples a static message with a prompt and turns the value the
// prompt reads into a command.
type Interaction[T any] struct {
	Title  string
	Text   string
	Prompt *prompt.Prompt[T]
	Create func(T) command.Command
}

// Display writes the message, blocks until the prompt has a valid value and
// executes the resulting command right away.
func (i *Interaction[T]) Display(c Console, bus *command.Bus) error {
	if err := c.WriteLine(console.KindPrompt, i.Text); err != nil {
		return err
	}
	if err := i.Prompt.Run(c, c); err != nil {
		return err
	}
	bus.Execute(i.Create(i.Prompt.Input))
	return nil
}
