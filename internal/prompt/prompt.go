// Package prompt reads typed values from a line-based input source. A Prompt
// keeps asking until its Validator accepts a line; failed attempts are
// reported to the user and never to the caller.
package prompt

import (
	"errors"
	"strings"

	"github.com/atomicstack/menutree/internal/logging/events"
)

// InvalidInput is written after every rejected line.
const InvalidInput = "Invalid input"

// ErrQuit is returned by Run when the user enters the quit word.
var ErrQuit = errors.New("prompt: quit requested")

// LineReader supplies raw lines of input. Implementations block until a line
// is available.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter receives feedback lines.
type LineWriter interface {
	WriteError(text string) error
}

// Prompt reads a single value of type T.
type Prompt[T any] struct {
	Title     string
	Validator Validator[T]
	// Quit ends Run with ErrQuit when a line equals it. Empty disables it.
	Quit string
	// Input holds the last value that passed validation.
	Input T
}

// New builds a prompt around a validator.
func New[T any](title string, validator Validator[T]) *Prompt[T] {
	return &Prompt[T]{Title: title, Validator: validator}
}

// Run reads lines until one validates, then stores it in Input. There is no
// retry limit; only a reader error or the quit word ends the loop early.
func (p *Prompt[T]) Run(r LineReader, w LineWriter) error {
	for attempt := 1; ; attempt++ {
		raw, err := r.ReadLine()
		if err != nil {
			return err
		}
		if p.Quit != "" && strings.TrimSpace(raw) == p.Quit {
			events.Prompt.Quit(p.Title)
			return ErrQuit
		}
		result := p.Validator.Validate(raw)
		if result.Valid() {
			p.Input = result.Value()
			return nil
		}
		events.Prompt.Invalid(p.Title, raw, attempt)
		if err := w.WriteError(InvalidInput); err != nil {
			return err
		}
	}
}
