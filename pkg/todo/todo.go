// Package todo holds the checklist data model: items grouped into titled
// lists, and the collection of lists stored in one file.
package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	statusDone    = "[x]"
	statusPending = "[ ]"
)

// Item is a single checklist entry.
type Item struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Toggle flips the done flag.
func (i *Item) Toggle() {
	i.Done = !i.Done
}

// Status returns the checkbox marker used in the file format.
func (i Item) Status() string {
	if i.Done {
		return statusDone
	}
	return statusPending
}

func (i Item) String() string {
	return fmt.Sprintf("%s %s", i.Status(), i.Text)
}

// List is a titled, ordered group of items. Items are addressed by index
// only, so removing one shifts everything after it.
type List struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// NewList returns an empty list with the given raw title.
func NewList(title string) *List {
	return &List{Title: title}
}

// Header is the bracketed form of the title shown to the user and written
// to disk.
func (l *List) Header() string {
	return "[" + l.Title + "]"
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Add appends a not-done item.
func (l *List) Add(text string) {
	l.Items = append(l.Items, Item{Text: text})
}

// Remove deletes the item at idx. An out of range index is a programming
// error and panics.
func (l *List) Remove(idx int) {
	if idx < 0 || idx >= len(l.Items) {
		panic(fmt.Sprintf("todo: remove item %d from list %q with %d items", idx, l.Title, len(l.Items)))
	}
	l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
}

// Item returns a pointer to the item at idx so callers can toggle it in
// place.
func (l *List) Item(idx int) (*Item, bool) {
	if l == nil || idx < 0 || idx >= len(l.Items) {
		return nil, false
	}
	return &l.Items[idx], true
}

// LineLen is the rune length of the item text at idx, or 0 when absent.
func (l *List) LineLen(idx int) int {
	it, ok := l.Item(idx)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(it.Text)
}

// Completed counts done items.
func (l *List) Completed() int {
	n := 0
	for _, it := range l.Items {
		if it.Done {
			n++
		}
	}
	return n
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString(l.Header())
	b.WriteString(":\n")
	for _, it := range l.Items {
		b.WriteString(it.String())
		b.WriteString("\n")
	}
	return b.String()
}
