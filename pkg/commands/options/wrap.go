package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 folds help text to 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

func Wrap(text string, width int) string {
	return wordwrap.String(strings.Join(strings.Fields(text), " "), width)
}
