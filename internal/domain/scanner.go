package domain

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/locsift/locsift/internal/adapter"
	m "github.com/locsift/locsift/internal/model"
)

// Scanner coordinates a scan: it discovers eligible files under a root,
// fans per-file visiting across a worker pool, and merges the partial
// results into one canonical report. A Scanner is created per scan
// configuration and owns the accumulator for the duration of a Scan call.
type Scanner struct {
	fs         adapter.SourceFSAdapter
	swift      adapter.SwiftFileAdapter
	classifier *Classifier
	workers    int
	progress   chan<- m.ProgressEvent
	log        zerolog.Logger
}

// ScannerOption customizes a Scanner.
type ScannerOption func(*Scanner)

// WithWorkers bounds the worker pool size.
func WithWorkers(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithProgress registers a channel for file started/finished events.
// Sends never block: an unconsumed notification is dropped.
func WithProgress(ch chan<- m.ProgressEvent) ScannerOption {
	return func(s *Scanner) {
		s.progress = ch
	}
}

// NewScanner constructs a Scanner over the provided adapters.
func NewScanner(fs adapter.SourceFSAdapter, swift adapter.SwiftFileAdapter, classifier *Classifier, log zerolog.Logger, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		fs:         fs,
		swift:      swift,
		classifier: classifier,
		workers:    1,
		log:        log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan extracts the string inventory under root. Per-file read and parse
// failures are recovered and reported in the result; a discovery failure
// is fatal and returned as a DiscoveryError. The final record order does
// not depend on worker scheduling.
func (s *Scanner) Scan(ctx context.Context, root m.Path) (*m.ScanReport, error) {
	start := time.Now()
	scanID := uuid.NewString()

	files, err := s.fs.Discover(root)
	if err != nil {
		return nil, &m.DiscoveryError{Root: root, Err: err}
	}

	var (
		mu       sync.Mutex
		records  []m.StringRecord
		fileErrs []m.FileError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, file := range files {
		g.Go(func() error {
			s.notify(m.ProgressEvent{Kind: m.ProgressFileStarted, File: file})

			recs, visitErr := s.visitFile(gctx, file)

			mu.Lock()
			if visitErr != nil {
				fileErrs = append(fileErrs, m.FileError{File: file, Err: visitErr})
			} else {
				records = append(records, recs...)
			}
			mu.Unlock()

			if visitErr != nil {
				s.log.Warn().Err(visitErr).Str("file", string(file)).Str("scan_id", scanID).Msg("file skipped")
			}

			s.notify(m.ProgressEvent{
				Kind:    m.ProgressFileFinished,
				File:    file,
				Records: len(recs),
				Err:     visitErr,
			})

			// Per-file failures never abort the batch.
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(fileErrs, func(i, j int) bool {
		return fileErrs[i].File < fileErrs[j].File
	})

	report := &m.ScanReport{
		ScanID:       scanID,
		Root:         root,
		Records:      Deduplicate(records),
		FileErrors:   fileErrs,
		FilesScanned: len(files) - len(fileErrs),
		Duration:     time.Since(start),
	}

	s.log.Info().
		Str("scan_id", scanID).
		Int("files", len(files)).
		Int("skipped", len(fileErrs)).
		Int("records", len(report.Records)).
		Dur("duration", report.Duration).
		Msg("scan complete")

	return report, nil
}

// visitFile reads, parses, and visits a single file. Each invocation is
// independent: it shares no state with other workers.
func (s *Scanner) visitFile(ctx context.Context, file m.Path) ([]m.StringRecord, error) {
	src, err := s.fs.ReadFile(file)
	if err != nil {
		return nil, &m.ReadError{File: file, Err: err}
	}

	tree, err := s.swift.Parse(ctx, src)
	if err != nil {
		return nil, &m.ParseError{File: file, Err: err}
	}
	defer tree.Close()

	visitor := newFileVisitor(s.classifier, file, src)

	return visitor.Visit(tree.RootNode()), nil
}

func (s *Scanner) notify(ev m.ProgressEvent) {
	if s.progress == nil {
		return
	}

	select {
	case s.progress <- ev:
	default:
	}
}
