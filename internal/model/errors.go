package model

import "fmt"

// ReadError reports a file that could not be read or decoded as UTF-8
// text. It is recovered per file: the file is skipped and surfaced as a
// log entry.
type ReadError struct {
	File Path
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a file whose contents could not be parsed into a
// syntax tree. Recovered per file, same as ReadError.
type ParseError struct {
	File Path
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DiscoveryError reports a failure enumerating the scan root. It is fatal
// to the whole scan: no partial output is implied to be complete.
type DiscoveryError struct {
	Root Path
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }
