package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/redo/pkg/store"
	"tableflip.dev/redo/pkg/todo"
)

func sample() *todo.Collection {
	l := todo.NewList("Groceries")
	l.Add("milk")
	l.Add("bread")
	l.Items[1].Toggle()
	return todo.NewCollection(l, todo.NewList("Work"))
}

func TestPrettyCollection(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Collection(sample())

	out := buf.String()
	for _, want := range []string{"[Groceries] - 1/2 items", "[ ] milk", "[x] bread", "[Work] - 0/0 items", "none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrettyEmptyCollection(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Collection(todo.NewCollection())
	if !strings.Contains(buf.String(), "no lists") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestPrettyBackups(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Backups("lists.todo", []store.Backup{{Key: "abc-1", Taken: time.Now(), Size: 12}})
	out := buf.String()
	if !strings.Contains(out, "abc-1") || !strings.Contains(out, "12") {
		t.Fatalf("expected backup row:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample()); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []struct {
		Title string `json:"title"`
		Items []struct {
			Text string `json:"text"`
			Done bool   `json:"done"`
		} `json:"items"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Groceries" || len(got[0].Items) != 2 || !got[0].Items[1].Done {
		t.Fatalf("unexpected json %s", buf.String())
	}
	if got[1].Items == nil {
		t.Fatalf("empty lists should encode items as []")
	}
}
