package printers

import (
	"encoding/json"
	"io"

	"tableflip.dev/redo/pkg/todo"
)

type jsonItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type jsonList struct {
	Title string     `json:"title"`
	Items []jsonItem `json:"items"`
}

// JSON writes the collection as an indented array of lists.
func JSON(out io.Writer, c *todo.Collection) error {
	lists := make([]jsonList, 0, c.Len())
	for _, l := range c.Lists {
		jl := jsonList{Title: l.Title, Items: make([]jsonItem, 0, l.Len())}
		for _, it := range l.Items {
			jl.Items = append(jl.Items, jsonItem{Text: it.Text, Done: it.Done})
		}
		lists = append(lists, jl)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(lists)
}
