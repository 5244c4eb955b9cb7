package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where lists are stored.",
		Example: `
redo info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := info.Info{}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
