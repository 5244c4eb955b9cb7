package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/commands/options"
	"tableflip.dev/redo/pkg/runner/ui"
	"tableflip.dev/redo/pkg/store"
)

var (
	output = &options.OutputOptions{}
	debug  = &options.DebugOptions{}
)

func New() *cobra.Command {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "redo [file]",
		Short: options.Wrap80("Checklists in a plain text file, edited from the terminal."),
		Long: options.Wrap80(`Opens the checklist file in an interactive editor. Lists are
written back to the file when you quit with ctrl+q. Without a file argument
the configured default path is used.`),
		Example: `
redo
redo ~/work.todo
`,
		Args: options.FileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if err := fo.Resolve(cfg, args); err != nil {
				return err
			}
			u := ui.UI{
				File:    fo.Path,
				Backups: store.NewBackups(cfg.BackupPath(), cfg.Keep()),
				LogPath: cfg.LogPath(),
				Debug:   debug.Debug,
			}
			return u.Do(cmd.Context())
		},
	}

	options.AddDebugArg(cmd, debug)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addBackups(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
