package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(redo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(redo completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// listCompletions offers the titles of lists in file, or in the configured
// default file, that start with toComplete.
func listCompletions(file, toComplete string) []string {
	if file == "" {
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil
		}
		file = cfg.FilePath()
	}
	c, _, err := store.LoadCollection(file)
	if err != nil {
		return nil
	}
	var titles []string
	for _, l := range c.Lists {
		if strings.HasPrefix(l.Title, toComplete) {
			titles = append(titles, strconv.Quote(l.Title))
		}
	}
	return titles
}
