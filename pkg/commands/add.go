package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/commands/options"
	"tableflip.dev/redo/pkg/runner/add"
	"tableflip.dev/redo/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	file := ""
	text := ""

	cmd := &cobra.Command{
		Use:   "add --list <title> <text...>",
		Short: "Append an item to a list.",
		Example: `
redo add --list Groceries oat milk
redo add -l Work --file ~/work.todo ship the release
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires item text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			fo := &options.FileOptions{}
			if err := fo.Resolve(cfg, []string{file}); err != nil {
				return err
			}
			a := add.Add{
				File:    fo.Path,
				List:    lo.List,
				Text:    text,
				Backups: store.NewBackups(cfg.BackupPath(), cfg.Keep()),
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddListArg(cmd, lo)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Checklist file. Defaults to the configured path.")
	_ = cmd.RegisterFlagCompletionFunc("list", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listCompletions(file, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
