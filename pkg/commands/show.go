package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/commands/options"
	"tableflip.dev/redo/pkg/runner/show"
	"tableflip.dev/redo/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the lists in a checklist file.",
		Example: `
redo show
redo show ~/work.todo --json
redo show --watch
`,
		Args: options.FileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			if err := fo.Resolve(cfg, args); err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				File:  fo.Path,
				JSON:  output.JSON,
				Watch: watch,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print again whenever the file changes.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
