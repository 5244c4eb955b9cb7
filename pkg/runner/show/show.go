package show

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/redo/pkg/printers"
	"tableflip.dev/redo/pkg/store"
)

type Show struct {
	File  string
	JSON  bool
	Watch bool

	// Out defaults to color.Output.
	Out io.Writer
}

// Do prints the lists in File. With Watch set it keeps printing after every
// change until ctx is cancelled.
func (s *Show) Do(ctx context.Context) error {
	if err := s.print(); err != nil {
		return err
	}
	if !s.Watch {
		return nil
	}

	events, err := store.Watch(ctx, s.File)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventWatchError {
				_, _ = color.New(color.FgHiYellow).Fprintf(color.Error, "redo: watch: %v\n", ev.Err)
			}
			if !s.JSON {
				faint := color.New(color.Faint)
				_, _ = faint.Fprintf(s.out(), "--- %s\n", time.Now().Format(time.TimeOnly))
			}
			if err := s.print(); err != nil {
				// The file may be mid-edit; report and keep watching.
				_, _ = color.New(color.FgHiYellow).Fprintf(color.Error, "redo: %v\n", err)
			}
		}
	}
}

func (s *Show) print() error {
	c, _, err := store.LoadCollection(s.File)
	if err != nil {
		return fmt.Errorf("show %s: %w", s.File, err)
	}
	if s.JSON {
		return printers.JSON(s.out(), c)
	}
	pp := printers.PrettyPrint{Out: s.out()}
	pp.Collection(c)
	return nil
}

func (s *Show) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}
