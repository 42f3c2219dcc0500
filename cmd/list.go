package cmd

import (
	"github.com/spf13/cobra"

	"github.com/locsift/locsift/internal/adapter"
	"github.com/locsift/locsift/internal/controller"
)

var listVerboseFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List the source files a scan would visit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, listVerboseFlag)

			fsAdapter := adapter.NewLocalSourceFSAdapter(adapter.DefaultDiscoveryConfig(), logger)

			files, err := fsAdapter.Discover(scanRoot(args))
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd, listVerboseFlag)

			return ui.DisplayFiles(files)
		},
	}

	cmd.Flags().BoolVarP(&listVerboseFlag, "verbose", "v", false, "log discovery details")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
