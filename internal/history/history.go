// Package history tracks visited paths as a linear sequence with a cursor,
// in the style of a browser's back/forward stack. It is not a branching
// tree: pushing a new path discards everything past the cursor.
package history

// History holds the visited paths and the cursor identifying the currently
// displayed one. The zero value is ready to use.
type History struct {
	entries []string
	// pos is 1-based: entries[pos-1] is current, 0 means nothing visited.
	pos int
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Push records a newly visited path. Any forward entries past the cursor are
// truncated first; the cursor ends on the pushed path.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.pos], path)
	h.pos++
}

// Back moves the cursor one step back and returns the path there. It
// reports false, leaving the cursor untouched, when already at the start.
func (h *History) Back() (string, bool) {
	if !h.CanBack() {
		return "", false
	}
	h.pos--
	return h.entries[h.pos-1], true
}

// Forward moves the cursor one step forward and returns the path there. It
// reports false, leaving the cursor untouched, when already at the end.
func (h *History) Forward() (string, bool) {
	if !h.CanForward() {
		return "", false
	}
	h.pos++
	return h.entries[h.pos-1], true
}

// CanBack reports whether Back would succeed. The owner reflects this into
// the back button's enabled state after every change.
func (h *History) CanBack() bool {
	return h.pos > 1
}

// CanForward reports whether Forward would succeed.
func (h *History) CanForward() bool {
	return h.pos < len(h.entries)
}

// Current returns the path at the cursor, or "" before any navigation.
func (h *History) Current() string {
	if h.pos == 0 {
		return ""
	}
	return h.entries[h.pos-1]
}

// Len returns the number of recorded paths.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded paths in order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
