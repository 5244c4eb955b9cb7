// Package parser reads the redo text format:
//
//	[Groceries]:
//	[ ] milk
//	[x] bread
//
// Item lines start with a checkbox, list headers are bracketed titles
// followed by a colon.
package parser

import (
	"bufio"
	"errors"
	"strings"

	"tableflip.dev/redo/pkg/todo"
)

var (
	// ErrNoLists is returned when non-blank content holds no list header.
	ErrNoLists = errors.New("parser: no lists found")

	// ErrEmptyTitle and ErrItemTitle reject titles that would not read back
	// as the same header.
	ErrEmptyTitle = errors.New("list title cannot be empty")
	ErrItemTitle  = errors.New(`list title cannot be "x" or start with "x]" or " ]"`)
)

// isItem reports whether line has the `[?]` checkbox shape.
func isItem(line string) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] == '[' && line[2] == ']' && (line[1] == ' ' || line[1] == 'x')
}

// Parse turns one line into an item. The second result is false when the
// line is not an item line.
func Parse(line string) (todo.Item, bool) {
	line = strings.TrimSpace(line)
	if !isItem(line) {
		return todo.Item{}, false
	}
	return todo.Item{
		Text: strings.TrimSpace(line[3:]),
		Done: line[1] == 'x',
	}, true
}

// Header extracts the raw title from a `[title]:` line.
func Header(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if isItem(line) {
		return "", false
	}
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]:") {
		return "", false
	}
	title := line[1 : len(line)-2]
	if title == "" {
		return "", false
	}
	return title, true
}

// ValidTitle reports whether title serializes to a header that Header reads
// back unchanged.
func ValidTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if got, ok := Header("[" + title + "]:"); !ok || got != title {
		return ErrItemTitle
	}
	return nil
}

// ParseCollection builds a collection from file contents. Lines before the
// first header, and lines that are neither items nor headers, are dropped.
// Empty content is an empty collection, not an error.
func ParseCollection(content string) (*todo.Collection, error) {
	c := todo.NewCollection()
	if strings.TrimSpace(content) == "" {
		return c, nil
	}

	var current *todo.List
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if it, ok := Parse(line); ok {
			if current != nil {
				current.Items = append(current.Items, it)
			}
			continue
		}
		if title, ok := Header(line); ok {
			current = c.Append(title)
		}
	}
	if err := scanner.Err(); err != nil {
		return todo.NewCollection(), err
	}
	if c.Empty() {
		return c, ErrNoLists
	}
	return c, nil
}
