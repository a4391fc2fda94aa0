package state

// MoveCursorUp moves the cursor to the previous option.
func (l *Level) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor to the next option.
func (l *Level) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first option.
func (l *Level) MoveCursorHome() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last option.
func (l *Level) MoveCursorEnd() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.Count - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	if l.Count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Count {
		size = l.Count
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if l.Count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

// Visible returns the half-open range of option indexes inside the viewport.
func (l *Level) Visible(maxVisible int) (int, int) {
	if maxVisible <= 0 || maxVisible >= l.Count {
		return 0, l.Count
	}
	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > l.Count {
		start = l.Count - maxVisible
	}
	return start, start + maxVisible
}
