package model

import "time"

// FileError records a recovered per-file failure. The file's contribution
// is missing from the record set but the scan as a whole completed.
type FileError struct {
	File Path
	Err  error
}

// ScanReport is the aggregate outcome of one scan: the deduplicated,
// canonically ordered record inventory plus the failures encountered
// along the way.
type ScanReport struct {
	// ScanID uniquely identifies this scan run.
	ScanID string
	// Root is the directory the scan started from.
	Root Path
	// Records holds unique normalized texts sorted by (file, line, column).
	Records []StringRecord
	// FileErrors lists files skipped due to read or parse failures,
	// sorted by path.
	FileErrors []FileError
	// FilesScanned counts files that contributed a result (including files
	// that produced zero records).
	FilesScanned int
	// Duration is the wall-clock time the scan took.
	Duration time.Duration
}
