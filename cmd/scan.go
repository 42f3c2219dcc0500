package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command, the explicit spelling of the root
// command's default behavior.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a Swift source tree for untranslated strings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, scanRoot(args))
		},
	}

	addScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
