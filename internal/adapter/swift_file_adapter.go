package adapter

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// ErrNilTree is returned when the parser produces no tree for an input.
var ErrNilTree = errors.New("parser returned nil tree")

// SwiftFileAdapter encapsulates Swift parsing so the domain layer can
// focus on classification rules while delegating grammar details to an
// infrastructure component.
type SwiftFileAdapter interface {
	// Parse builds a syntax tree for the provided source bytes. The
	// caller owns the returned tree and must Close it.
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)
}

// TreeSitterSwiftAdapter provides a concrete SwiftFileAdapter backed by
// the tree-sitter Swift grammar. It is safe for concurrent use: each
// Parse call creates its own parser instance.
type TreeSitterSwiftAdapter struct{}

// NewTreeSitterSwiftAdapter constructs a TreeSitterSwiftAdapter.
func NewTreeSitterSwiftAdapter() *TreeSitterSwiftAdapter {
	return &TreeSitterSwiftAdapter{}
}

// Parse builds a syntax tree for the provided source bytes.
func (a *TreeSitterSwiftAdapter) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(swift.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, ErrNilTree
	}

	return tree, nil
}
