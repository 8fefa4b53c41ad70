package host

import "github.com/google/uuid"

// HistoryEntry is one visited URL, identified by a stable ID so a host UI
// (back/forward buttons, a history dropdown) can key off identity rather
// than URL text, which can repeat.
type HistoryEntry struct {
	ID  uuid.UUID
	URL string
}

// Navigator is a back/forward URL stack, grounded on
// original_source/positron/utils/Navigator.py's History(list) class:
// pushing a new URL truncates any forward history past the current
// position, and back/forward move a cursor through the stack rather than
// popping entries, so forward history survives a back navigation until the
// next push.
type Navigator struct {
	entries []HistoryEntry
	cur     int // -1 when empty
}

// NewNavigator creates an empty Navigator.
func NewNavigator() *Navigator {
	return &Navigator{cur: -1}
}

// Push records url as the current entry, discarding any forward history
// past the cursor (the list-truncation Navigator.py's add_entry performs).
func (n *Navigator) Push(url string) HistoryEntry {
	entry := HistoryEntry{ID: uuid.New(), URL: url}
	n.entries = append(n.entries[:n.cur+1], entry)
	n.cur++
	return entry
}

// Current returns the entry the cursor is on, and false if the history is
// empty.
func (n *Navigator) Current() (HistoryEntry, bool) {
	if n.cur < 0 || n.cur >= len(n.entries) {
		return HistoryEntry{}, false
	}
	return n.entries[n.cur], true
}

// CanGoBack reports whether Back would move the cursor.
func (n *Navigator) CanGoBack() bool { return n.cur > 0 }

// CanGoForward reports whether Forward would move the cursor.
func (n *Navigator) CanGoForward() bool { return n.cur < len(n.entries)-1 }

// Back moves the cursor one entry earlier, returning the entry now current.
func (n *Navigator) Back() (HistoryEntry, bool) {
	if !n.CanGoBack() {
		return n.Current()
	}
	n.cur--
	return n.Current()
}

// Forward moves the cursor one entry later, returning the entry now
// current.
func (n *Navigator) Forward() (HistoryEntry, bool) {
	if !n.CanGoForward() {
		return n.Current()
	}
	n.cur++
	return n.Current()
}
