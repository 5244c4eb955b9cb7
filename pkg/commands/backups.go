package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/commands/options"
	"tableflip.dev/redo/pkg/runner/backups"
	"tableflip.dev/redo/pkg/store"
)

func addBackups(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	restore := ""

	cmd := &cobra.Command{
		Use:   "backups [file]",
		Short: "List snapshots taken before each save, or restore one.",
		Example: `
redo backups
redo backups --restore 3f2a9c01d4e5b6a7-20240301T090000.000000000Z
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
			b := backups.Backups{
				File:    fo.Path,
				Store:   store.NewBackups(cfg.BackupPath(), cfg.Keep()),
				Restore: restore,
				JSON:    output.JSON,
			}
			err = b.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&restore, "restore", "", "Replace the file with the snapshot stored under this key.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
