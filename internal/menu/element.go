package menu

import (
	"errors"
	"fmt"
)

const (
	// InteractionTitle names the interaction embedded in every Navigation.
	InteractionTitle = "NavigationInteraction"
	// InteractionText is printed before a navigation selection is read.
	InteractionText = "Enter a navigation option: "
)

var (
	// ErrEmptyNavigation reports a Navigation built without options. Such a
	// menu could never accept a selection.
	ErrEmptyNavigation = errors.New("navigation requires at least one option")
	// ErrAlreadyLinked reports an element that already belongs to another
	// Navigation.
	ErrAlreadyLinked = errors.New("element already linked to another navigation")
	// ErrDuplicateOption reports an element listed twice in one Navigation.
	ErrDuplicateOption = errors.New("element listed more than once")
)

// Element is a node in the navigation tree. The set of implementations is
// closed: *SmallText, *BigText and *Navigation.
type Element interface {
	Title() string
	Parent() *Navigation
	// Children returns the selectable options; nil for leaves.
	Children() []Element

	setParent(*Navigation) error
}

type base struct {
	title  string
	parent *Navigation
}

func (b *base) Title() string {
	return b.title
}

func (b *base) Parent() *Navigation {
	return b.parent
}

func (b *base) setParent(parent *Navigation) error {
	if b.parent == parent {
		return nil
	}
	if b.parent != nil {
		return fmt.Errorf("%q: %w", b.title, ErrAlreadyLinked)
	}
	b.parent = parent
	return nil
}

// SmallText renders a single line of text.
type SmallText struct {
	base
	Text string
}

// NewSmallText builds a one-line leaf.
func NewSmallText(title, text string) *SmallText {
	return &SmallText{base: base{title: title}, Text: text}
}

func (*SmallText) Children() []Element { return nil }

// BigText renders a header line followed by a content line.
type BigText struct {
	base
	Header  string
	Content string
}

// NewBigText builds a two-line leaf.
func NewBigText(title, header, content string) *BigText {
	return &BigText{base: base{title: title}, Header: header, Content: content}
}

func (*BigText) Children() []Element { return nil }

// Interaction describes the selection prompt embedded in a Navigation. It is
// never one of the Navigation's options.
type Interaction struct {
	Title   string
	Text    string
	Options int
}

// Navigation is a menu of ordered options plus one embedded interaction.
type Navigation struct {
	base
	options     []Element
	interaction Interaction
}

// NewNavigation builds a menu over options and links each option's parent to
// the new Navigation.
func NewNavigation(title string, options ...Element) (*Navigation, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrEmptyNavigation)
	}
	nav := &Navigation{
		base:    base{title: title},
		options: append([]Element(nil), options...),
		interaction: Interaction{
			Title:   InteractionTitle,
			Text:    InteractionText,
			Options: len(options),
		},
	}
	if err := nav.Link(); err != nil {
		return nil, err
	}
	return nav, nil
}

// MustNavigation is NewNavigation for statically known trees.
func MustNavigation(title string, options ...Element) *Navigation {
	nav, err := NewNavigation(title, options...)
	if err != nil {
		panic(err)
	}
	return nav
}

// Link sets the parent of every option to n and relinks nested menus. It is
// idempotent on an already linked subtree. Options are checked before any
// parent is set, so a failed Link leaves every option untouched.
func (n *Navigation) Link() error {
	if err := n.checkOptions(); err != nil {
		return err
	}
	for _, option := range n.options {
		if err := option.setParent(n); err != nil {
			return err
		}
		if child, ok := option.(*Navigation); ok {
			if err := child.Link(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *Navigation) checkOptions() error {
	seen := make(map[Element]struct{}, len(n.options))
	for i, option := range n.options {
		if option == nil {
			return fmt.Errorf("%q: option %d is nil", n.title, i+1)
		}
		if _, dup := seen[option]; dup {
			return fmt.Errorf("%q: option %d %q: %w", n.title, i+1, option.Title(), ErrDuplicateOption)
		}
		seen[option] = struct{}{}
		if parent := option.Parent(); parent != nil && parent != n {
			return fmt.Errorf("%q: %w", option.Title(), ErrAlreadyLinked)
		}
	}
	return nil
}

// Children returns a copy of the visible options.
func (n *Navigation) Children() []Element {
	return append([]Element(nil), n.options...)
}

// Len returns the number of visible options.
func (n *Navigation) Len() int {
	return len(n.options)
}

// Option returns the option at a zero-based index.
func (n *Navigation) Option(index int) (Element, bool) {
	if index < 0 || index >= len(n.options) {
		return nil, false
	}
	return n.options[index], true
}

// Interaction returns the embedded selection prompt.
func (n *Navigation) Interaction() Interaction {
	return n.interaction
}

// IsLeaf reports whether e has no children.
func IsLeaf(e Element) bool {
	return e != nil && len(e.Children()) == 0
}

// Kind returns a short type name for e.
func Kind(e Element) string {
	switch e.(type) {
	case *SmallText:
		return "small"
	case *BigText:
		return "big"
	case *Navigation:
		return "navigation"
	default:
		return "unknown"
	}
}

// Lines returns the text an element renders when displayed on its own. A
// Navigation renders its numbered options; the interaction is not included.
func Lines(e Element) []string {
	switch el := e.(type) {
	case *SmallText:
		return []string{el.Text}
	case *BigText:
		return []string{el.Header, el.Content}
	case *Navigation:
		lines := make([]string, 0, len(el.options))
		for i, option := range el.options {
			lines = append(lines, OptionLine(i, option))
		}
		return lines
	default:
		return nil
	}
}

// OptionLine formats a zero-based option index the way menus show it.
func OptionLine(index int, e Element) string {
	return fmt.Sprintf("%d. %s", index+1, e.Title())
}
