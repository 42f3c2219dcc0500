// Package adapter contains filesystem, parser, and export adapters for the
// locsift CLI.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	m "github.com/locsift/locsift/internal/model"
)

// SourceFSAdapter abstracts filesystem operations the domain layer relies
// on when scanning user projects. It hides direct `os` access so the
// scanner logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover enumerates eligible source files under root. The returned
	// list is complete and fixed before any caller starts processing it.
	Discover(root m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents. Content
	// that is not valid UTF-8 is rejected.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence
	// or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// DiscoveryConfig controls which files Discover yields.
type DiscoveryConfig struct {
	// Extensions lists the source-file extensions to include.
	Extensions []string
	// ExcludedSegments lists directory names that exclude a whole subtree
	// (dependency caches, build output, test dirs).
	ExcludedSegments []string
	// BundleSuffixes lists directory-name suffixes treated as
	// self-contained bundles; their descendants are skipped.
	BundleSuffixes []string
}

// DefaultDiscoveryConfig returns the discovery rules for Swift projects.
func DefaultDiscoveryConfig() DiscoveryConfig {
	return DiscoveryConfig{
		Extensions: []string{".swift"},
		ExcludedSegments: []string{
			"Pods", "Carthage", ".build", "DerivedData",
			"Tests", "UITests", "node_modules",
		},
		BundleSuffixes: []string{
			".xcassets", ".bundle", ".framework", ".app", ".playground",
		},
	}
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct {
	cfg DiscoveryConfig
	log zerolog.Logger
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter with the
// provided discovery rules.
func NewLocalSourceFSAdapter(cfg DiscoveryConfig, log zerolog.Logger) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{cfg: cfg, log: log}
}

// Discover walks root and collects eligible source files. A failure at the
// root (missing path, permission denied) aborts discovery; failures deeper
// in the tree are logged and the entry is skipped.
func (a *LocalSourceFSAdapter) Discover(root m.Path) ([]m.Path, error) {
	rootStr, err := filepath.Abs(string(root))
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", rootStr)
	}

	var files []m.Path

	err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootStr {
				return err
			}

			a.log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == rootStr {
				return nil
			}

			if strings.HasPrefix(name, ".") || a.isExcludedSegment(name) || a.isBundle(name) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		if !a.hasEligibleExtension(name) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	a.log.Info().Int("count", len(files)).Str("root", rootStr).Msg("discovered files")

	return files, nil
}

// ReadFile loads file contents from disk, rejecting non-UTF-8 content.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: not valid UTF-8", path)
	}

	return content, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func (a *LocalSourceFSAdapter) hasEligibleExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range a.cfg.Extensions {
		if ext == e {
			return true
		}
	}

	return false
}

func (a *LocalSourceFSAdapter) isExcludedSegment(name string) bool {
	for _, seg := range a.cfg.ExcludedSegments {
		if name == seg {
			return true
		}
	}

	return false
}

func (a *LocalSourceFSAdapter) isBundle(name string) bool {
	for _, suffix := range a.cfg.BundleSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}
