package todo

import "strings"

// Collection is every list loaded from, and saved back to, one file. It is
// the single owner of its lists and their items.
type Collection struct {
	Lists []*List `json:"lists"`
}

// NewCollection returns a collection holding the given lists.
func NewCollection(lists ...*List) *Collection {
	return &Collection{Lists: lists}
}

// Len returns the number of lists.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Lists)
}

// Empty reports whether there are no lists.
func (c *Collection) Empty() bool {
	return c.Len() == 0
}

// Get returns the list at idx.
func (c *Collection) Get(idx int) (*List, bool) {
	if idx < 0 || idx >= c.Len() {
		return nil, false
	}
	return c.Lists[idx], true
}

// Find returns the first list with the given raw title.
func (c *Collection) Find(title string) (*List, bool) {
	for _, l := range c.Lists {
		if l.Title == title {
			return l, true
		}
	}
	return nil, false
}

// Append adds a new empty list at the end.
func (c *Collection) Append(title string) *List {
	l := NewList(title)
	c.Lists = append(c.Lists, l)
	return l
}

// Remove deletes the list at idx and shifts the rest down. It returns false
// and leaves the collection untouched when idx does not name a list.
func (c *Collection) Remove(idx int) bool {
	if idx < 0 || idx >= c.Len() {
		return false
	}
	c.Lists = append(c.Lists[:idx], c.Lists[idx+1:]...)
	return true
}

// Names returns the list headers in order.
func (c *Collection) Names() []string {
	names := make([]string, 0, c.Len())
	for _, l := range c.Lists {
		names = append(names, l.Header())
	}
	return names
}

// String serializes the collection to the on-disk text format.
func (c *Collection) String() string {
	var b strings.Builder
	for _, l := range c.Lists {
		b.WriteString(l.String())
	}
	return b.String()
}
