package events

// Cursor is a forward only view over a materialised event stream. It can
// look one event ahead but never rewinds.
type Cursor struct {
	events []Event
	index  int
}

// NewCursor wraps events. The slice is not copied and must not be modified
// while the cursor is in use.
func NewCursor(events []Event) *Cursor {
	return &Cursor{events: events}
}

// Next returns the next event and advances. ok is false at the end of the
// stream.
func (c *Cursor) Next() (Event, bool) {
	if c.index >= len(c.events) {
		return Event{}, false
	}
	e := c.events[c.index]
	c.index++
	return e, true
}

// Peek returns the next event without consuming it.
func (c *Cursor) Peek() (Event, bool) {
	if c.index >= len(c.events) {
		return Event{}, false
	}
	return c.events[c.index], true
}

// Done reports whether all events were consumed.
func (c *Cursor) Done() bool {
	return c.index >= len(c.events)
}
