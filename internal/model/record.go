// Package model defines the data structures for the string inventory scan.
package model

// Path represents a file system path.
type Path string

// StringRecord is one observed string-literal occurrence that passed
// classification. Records are immutable once created; the deduplication
// step replaces records, it never edits them.
type StringRecord struct {
	// File is the path of the source file the literal was found in.
	File Path
	// Line and Column are the 1-based position of the literal's start.
	Line   int
	Column int
	// RawText is the literal exactly as written in source, interpolation
	// syntax included. Kept for audit traceability.
	RawText string
	// NormalizedText is the literal with every interpolated expression
	// replaced by a placeholder token. It is the deduplication key and is
	// never empty.
	NormalizedText string
	// IsLocalized is true when the literal is the first argument of a
	// recognized localization call.
	IsLocalized bool
}

// ProgressKind identifies the type of a progress notification.
type ProgressKind string

const (
	// ProgressFileStarted signals a worker picked up a file.
	ProgressFileStarted ProgressKind = "started"
	// ProgressFileFinished signals a worker completed a file.
	ProgressFileFinished ProgressKind = "finished"
)

// ProgressEvent is a droppable notification emitted while scanning. The
// scanner never blocks on a consumer accepting one.
type ProgressEvent struct {
	Kind    ProgressKind
	File    Path
	Records int
	Err     error
}
