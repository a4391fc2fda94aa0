package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a definition file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported tree definition format")

// Element type names accepted in a definition's type field.
const (
	// TypeSmall builds a SmallText from text.
	TypeSmall = "small"
	// TypeBig builds a BigText from header and content.
	TypeBig = "big"
	// TypeNavigation builds a Navigation from options.
	TypeNavigation = "navigation"
)

// Definition is the on-disk form of a tree node.
type Definition struct {
	Title   string       `yaml:"title" toml:"title"`
	Type    string       `yaml:"type,omitempty" toml:"type,omitempty"`
	Text    string       `yaml:"text,omitempty" toml:"text,omitempty"`
	Header  string       `yaml:"header,omitempty" toml:"header,omitempty"`
	Content string       `yaml:"content,omitempty" toml:"content,omitempty"`
	Options []Definition `yaml:"options,omitempty" toml:"options,omitempty"`
}

// LoadFile reads a tree definition from a .yaml/.yml or .toml file.
func LoadFile(path string) (*Navigation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree definition: %w", err)
	}
	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	case ".toml":
		err = toml.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse tree definition %s: %w", path, err)
	}
	return def.BuildRoot()
}

// BuildRoot builds the definition as the root of a tree. The root must be a
// navigation.
func (d Definition) BuildRoot() (*Navigation, error) {
	e, err := d.Build()
	if err != nil {
		return nil, err
	}
	nav, ok := e.(*Navigation)
	if !ok {
		return nil, fmt.Errorf("root %q must be a navigation, got %s", d.Title, Kind(e))
	}
	return nav, nil
}

// Build converts the definition into an element.
func (d Definition) Build() (Element, error) {
	switch d.kind() {
	case TypeSmall:
		return NewSmallText(d.Title, d.Text), nil
	case TypeBig:
		return NewBigText(d.Title, d.Header, d.Content), nil
	case TypeNavigation:
		options := make([]Element, 0, len(d.Options))
		for _, option := range d.Options {
			e, err := option.Build()
			if err != nil {
				return nil, err
			}
			options = append(options, e)
		}
		nav, err := NewNavigation(d.Title, options...)
		if err != nil {
			return nil, err
		}
		return nav, nil
	default:
		return nil, fmt.Errorf("%q: unknown element type %q", d.Title, d.Type)
	}
}

func (d Definition) kind() string {
	kind := strings.ToLower(strings.TrimSpace(d.Type))
	if kind != "" {
		return kind
	}
	if len(d.Options) > 0 {
		return TypeNavigation
	}
	return TypeSmall
}

// Define converts an element back into its definition form.
func Define(e Element) Definition {
	switch el := e.(type) {
	case *SmallText:
		return Definition{Title: el.Title(), Type: TypeSmall, Text: el.Text}
	case *BigText:
		return Definition{Title: el.Title(), Type: TypeBig, Header: el.Header, Content: el.Content}
	case *Navigation:
		def := Definition{Title: el.Title(), Type: TypeNavigation}
		for _, option := range el.options {
			def.Options = append(def.Options, Define(option))
		}
		return def
	default:
		return Definition{}
	}
}
