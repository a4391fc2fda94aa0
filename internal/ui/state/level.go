package state

// Level tracks the highlighted option and viewport of one navigation menu.
type Level struct {
	ID             string
	Title          string
	Count          int
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level over count options with the first highlighted.
func NewLevel(id, title string, count int) *Level {
	l := &Level{ID: id, Title: title, Count: count}
	if count <= 0 {
		l.Count = 0
	}
	return l
}

// Selection returns the 1-based number of the highlighted option, or 0 when
// the menu is empty.
func (l *Level) Selection() int {
	if l.Count == 0 || l.Cursor < 0 || l.Cursor >= l.Count {
		return 0
	}
	return l.Cursor + 1
}
