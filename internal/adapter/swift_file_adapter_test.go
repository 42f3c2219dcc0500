package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeSitterSwiftAdapterParse(t *testing.T) {
	parser := NewTreeSitterSwiftAdapter()

	tree, err := parser.Parse(context.Background(), []byte("let s = \"确定\"\n"))
	require.NoError(t, err)

	defer tree.Close()

	root := tree.RootNode()
	require.NotNil(t, root)
	assert.False(t, root.HasError())
	assert.Greater(t, root.NamedChildCount(), uint32(0))
}

func TestTreeSitterSwiftAdapterRecoversFromBrokenSyntax(t *testing.T) {
	parser := NewTreeSitterSwiftAdapter()

	// tree-sitter recovers from syntax errors; the tree is still usable
	// and literal positions survive.
	tree, err := parser.Parse(context.Background(), []byte("func broken( { let s = \"确定\"\n"))
	require.NoError(t, err)

	defer tree.Close()

	assert.True(t, tree.RootNode().HasError())
}

func TestTreeSitterSwiftAdapterConcurrentUse(t *testing.T) {
	parser := NewTreeSitterSwiftAdapter()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			tree, err := parser.Parse(context.Background(), []byte("let s = \"确定\"\n"))
			assert.NoError(t, err)

			if tree != nil {
				tree.Close()
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
