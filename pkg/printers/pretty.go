package printers

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/redo/pkg/store"
	"tableflip.dev/redo/pkg/todo"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, done, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d/%d", done, total)

	switch total {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Collection prints every list with its items.
func (pp *PrettyPrint) Collection(c *todo.Collection) {
	if c.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no lists\n\n")
		return
	}
	for _, l := range c.Lists {
		pp.List(l)
	}
}

func (pp *PrettyPrint) List(l *todo.List) {
	pp.TitleWithCount(l.Header(), l.Completed(), l.Len())
	if l.Len() == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	check := color.New(color.FgGreen)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.Wrap = true
	tbl.MaxColWidth = 72
	for _, it := range l.Items {
		if it.Done {
			tbl.AddRow(check.Sprint(it.Status()), done.Sprint(it.Text))
		} else {
			tbl.AddRow(it.Status(), it.Text)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Backups prints a table of snapshots, newest first.
func (pp *PrettyPrint) Backups(file string, backups []store.Backup) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(pp.out(), file)
	if len(backups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no backups\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Taken"), bold.Sprint("Bytes"))
	for _, b := range backups {
		tbl.AddRow(b.Key, b.Taken.Local().Format(time.DateTime), b.Size)
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
