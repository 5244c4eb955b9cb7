package options

import (
	"errors"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/redo/pkg/store"
)

// FileOptions picks the checklist file a command works on.
type FileOptions struct {
	Path string
}

// FileArgs accepts at most one positional file argument.
func FileArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("accepts at most one file")
	}
	return nil
}

// Resolve sets Path from the first positional argument, falling back to the
// configured default.
func (o *FileOptions) Resolve(cfg store.Config, args []string) error {
	if len(args) > 0 && args[0] != "" {
		p, err := homedir.Expand(args[0])
		if err != nil {
			return err
		}
		o.Path = p
		return nil
	}
	o.Path = cfg.FilePath()
	if o.Path == "" {
		return errors.New("no file given and no default path configured")
	}
	return nil
}

// ListOptions names the list an item goes into.
type ListOptions struct {
	List string
}

func AddListArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.List, "list", "l", "",
		"Title of the list, without brackets. Created when missing.")
	_ = cmd.MarkFlagRequired("list")
}

// DebugOptions controls log verbosity.
type DebugOptions struct {
	Debug bool
}

func AddDebugArg(cmd *cobra.Command, o *DebugOptions) {
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Write debug logs to the configured log file.")
}
