package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RootPath identifies the root element of a tree.
const RootPath = "root"

// ErrUnknownPath reports a selection path that does not resolve.
var ErrUnknownPath = errors.New("unknown menu path")

// Registry exposes lookup utilities over a built tree, keyed by selection
// path ("root", "3", "3:1").
type Registry struct {
	root  *Navigation
	nodes map[string]Element
	order []string
}

// BuildRegistry indexes every element reachable from root.
func BuildRegistry(root *Navigation) *Registry {
	r := &Registry{root: root, nodes: make(map[string]Element)}
	r.add(RootPath, root)
	return r
}

func (r *Registry) add(id string, e Element) {
	r.nodes[id] = e
	r.order = append(r.order, id)
	for i, child := range e.Children() {
		r.add(childKey(id, i), child)
	}
}

// Root returns the registry root node.
func (r *Registry) Root() *Navigation {
	return r.root
}

// Find locates an element by path.
func (r *Registry) Find(id string) (Element, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = RootPath
	}
	e, ok := r.nodes[id]
	return e, ok
}

// Navigation resolves a path that must name a Navigation.
func (r *Registry) Navigation(id string) (*Navigation, error) {
	e, ok := r.Find(id)
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownPath)
	}
	nav, ok := e.(*Navigation)
	if !ok {
		return nil, fmt.Errorf("%q is a %s, not a navigation: %w", id, Kind(e), ErrUnknownPath)
	}
	return nav, nil
}

// Walk visits every element depth-first with options in menu order.
func (r *Registry) Walk(fn func(id string, e Element)) {
	for _, id := range r.order {
		fn(id, r.nodes[id])
	}
}

// Len returns the number of indexed elements.
func (r *Registry) Len() int {
	return len(r.order)
}

// Path returns the selection path of e from the root of its tree.
func Path(e Element) string {
	segments := []string{}
	for current := e; current != nil; {
		parent := current.Parent()
		if parent == nil {
			break
		}
		idx := indexOf(parent, current)
		segments = append(segments, strconv.Itoa(idx+1))
		current = parent
	}
	if len(segments) == 0 {
		return RootPath
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, ":")
}

// Trail returns the titles from the root down to e.
func Trail(e Element) []string {
	titles := []string{}
	for current := e; current != nil; {
		titles = append(titles, current.Title())
		parent := current.Parent()
		if parent == nil {
			break
		}
		current = parent
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return titles
}

func indexOf(parent *Navigation, e Element) int {
	for i, option := range parent.options {
		if option == e {
			return i
		}
	}
	return -1
}

func childKey(parentID string, index int) string {
	key := strconv.Itoa(index + 1)
	if parentID == RootPath {
		return key
	}
	return parentID + ":" + key
}
