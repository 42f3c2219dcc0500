package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/locsift/locsift/internal/model"
)

// SimpleUI implements UI with plain text written through the cobra
// command's output stream.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI. With verbose set, per-file progress
// lines are printed as they arrive.
func NewSimpleUI(cmd *cobra.Command, verbose bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, verbose: verbose}
}

// DisplayProgress prints a per-file progress line in verbose mode.
func (s *SimpleUI) DisplayProgress(ev m.ProgressEvent) {
	if !s.verbose || ev.Kind != m.ProgressFileFinished {
		return
	}

	if ev.Err != nil {
		s.printf("skip %s: %v\n", ev.File, ev.Err)
		return
	}

	s.printf("done %s (%d records)\n", ev.File, ev.Records)
}

// DisplayFiles lists discovered files, one per line.
func (s *SimpleUI) DisplayFiles(files []m.Path) error {
	if len(files) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	for _, file := range files {
		s.printf("%s\n", file)
	}

	return nil
}

// DisplaySummary renders a per-file record-count table with totals.
func (s *SimpleUI) DisplaySummary(report *m.ScanReport) error {
	perFile := make(map[string]int)
	for _, record := range report.Records {
		perFile[string(record.File)]++
	}

	paths := make([]string, 0, len(perFile))
	for path := range perFile {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Strings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range paths {
		table.Append([]string{path, fmt.Sprintf("%d", perFile[path])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", len(report.Records)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if len(report.FileErrors) > 0 {
		s.printf("\n%d file(s) skipped:\n", len(report.FileErrors))

		for _, fe := range report.FileErrors {
			s.printf("  %s: %v\n", fe.File, fe.Err)
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
