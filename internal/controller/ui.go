// Package controller provides output controllers for presenting scan
// results.
package controller

import (
	m "github.com/locsift/locsift/internal/model"
)

// UI defines how scan output reaches the user. Implementations can use
// different output methods (plain text, machine-readable, etc).
type UI interface {
	// DisplayProgress renders one progress notification. It must be cheap:
	// the scanner drops events the consumer is too slow for.
	DisplayProgress(ev m.ProgressEvent)

	// DisplayFiles lists discovered files without scanning them.
	DisplayFiles(files []m.Path) error

	// DisplaySummary renders the final per-file summary table for a
	// completed scan.
	DisplaySummary(report *m.ScanReport) error
}
