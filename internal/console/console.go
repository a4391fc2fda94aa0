// Package console is the line-based terminal collaborator of the navigator:
// it reads one line per call and writes whole, optionally styled, lines.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/menutree/internal/theme"
)

// Kind selects the style applied to an output line.
type Kind int

const (
	// KindText is an unstyled line, such as a SmallText body.
	KindText Kind = iota
	// KindOption is a numbered menu option.
	KindOption
	// KindPrompt is the interaction text printed before a read.
	KindPrompt
	// KindError is validation feedback.
	KindError
	// KindLeafHeader is the first line of a BigText.
	KindLeafHeader
	// KindLeafBody is the content line of a BigText.
	KindLeafBody
)

// Console reads from in and writes to out.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	styles *theme.Styles
}

// New wraps the given streams. A nil styles value disables styling.
func New(in io.Reader, out io.Writer, styles *theme.Styles) *Console {
	if styles == nil {
		styles = theme.Plain()
	}
	return &Console{reader: bufio.NewReader(in), out: out, styles: styles}
}

// ReadLine blocks until a full line is available and returns it without its
// terminator. Lines of any length are returned whole. It returns io.EOF once
// the input is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.EOF
			}
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(kind Kind, text string) error {
	_, err := fmt.Fprintln(c.out, theme.Render(c.style(kind), text))
	return err
}

// WriteError writes a feedback line in the error style.
func (c *Console) WriteError(text string) error {
	return c.WriteLine(KindError, text)
}

// Blank writes an empty line.
func (c *Console) Blank() error {
	_, err := fmt.Fprintln(c.out)
	return err
}

func (c *Console) style(kind Kind) *lipgloss.Style {
	switch kind {
	case KindOption:
		return c.styles.Option
	case KindPrompt:
		return c.styles.Prompt
	case KindError:
		return c.styles.Error
	case KindLeafHeader:
		return c.styles.LeafHeader
	case KindLeafBody:
		return c.styles.LeafBody
	default:
		return nil
	}
}
