// Package cmd provides the root command and CLI setup for locsift.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/locsift/locsift/internal/adapter"
	"github.com/locsift/locsift/internal/controller"
	"github.com/locsift/locsift/internal/domain"
	m "github.com/locsift/locsift/internal/model"
)

var rulesFlag string
var parallelFlag int
var formatFlag string
var outputFlag string
var localeFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locsift [path]",
		Short: "Find untranslated string literals in Swift projects",
		Long: `Locsift scans a Swift source tree for hard-coded string literals that
still need translation. Every literal is classified (localizable text,
log noise, boilerplate, oversized policy text) and the surviving
occurrences are merged into a deduplicated, stably ordered inventory
ready to drive a localization workflow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, scanRoot(args))
		},
	}

	addScanFlags(cmd)

	return cmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rulesFlag, "rules", "r", "", "path to a YAML rule-table override")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 4, "number of parallel workers")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "jsonl", fmt.Sprintf("export format %v", adapter.ExportFormats()))
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the inventory to this file")
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "zh-Hans", "source locale recorded in locale-aware exports")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print per-file progress")
}

func scanRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}

func runScan(cmd *cobra.Command, root m.Path) error {
	logger := newLogger(cmd, verboseFlag)

	rules, err := domain.LoadRuleSet(rulesFlag)
	if err != nil {
		return err
	}

	classifier, err := domain.NewClassifier(rules)
	if err != nil {
		return err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter(adapter.DefaultDiscoveryConfig(), logger)

	info, err := fsAdapter.FileInfo(root)
	if err != nil {
		return fmt.Errorf("scan root: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("scan root is not a directory: %s", root)
	}

	swiftAdapter := adapter.NewTreeSitterSwiftAdapter()
	ui := controller.NewSimpleUI(cmd, verboseFlag)

	progress := make(chan m.ProgressEvent, 256)
	done := make(chan struct{})

	go func() {
		defer close(done)

		for ev := range progress {
			ui.DisplayProgress(ev)
		}
	}()

	scanner := domain.NewScanner(
		fsAdapter,
		swiftAdapter,
		classifier,
		logger,
		domain.WithWorkers(parallelFlag),
		domain.WithProgress(progress),
	)

	report, scanErr := scanner.Scan(cmd.Context(), root)

	close(progress)
	<-done

	if scanErr != nil {
		return scanErr
	}

	if err := ui.DisplaySummary(report); err != nil {
		return err
	}

	return exportReport(report)
}

func exportReport(report *m.ScanReport) error {
	if outputFlag == "" {
		return nil
	}

	exporter, err := adapter.NewExporter(formatFlag, adapter.ExportOptions{SourceLanguage: localeFlag})
	if err != nil {
		return err
	}

	out, err := os.Create(outputFlag)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	defer func() { _ = out.Close() }()

	if err := exporter.Export(out, report); err != nil {
		return fmt.Errorf("export %s: %w", exporter.Format(), err)
	}

	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
