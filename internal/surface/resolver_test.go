package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	doc := NewDocument(100, 50, nil)

	a := NewElement("box")
	a.SetID("alpha")
	a.AddClass("target")
	doc.Insert(a)

	b := NewElement("item")
	b.AddClass("target")
	doc.Insert(b)

	t.Run("id selector", func(t *testing.T) {
		els := doc.Resolve("#alpha")
		require.Len(t, els, 1)
		assert.Equal(t, a, els[0])
	})

	t.Run("class selector preserves document order", func(t *testing.T) {
		els := doc.Resolve(".target")
		require.Len(t, els, 2)
		assert.Equal(t, a, els[0])
		assert.Equal(t, b, els[1])
	})

	t.Run("tag selector", func(t *testing.T) {
		els := doc.Resolve("item")
		require.Len(t, els, 1)
		assert.Equal(t, b, els[0])
	})

	t.Run("single element", func(t *testing.T) {
		els := doc.Resolve(a)
		require.Len(t, els, 1)
		assert.Equal(t, a, els[0])
	})

	t.Run("element slice is copied", func(t *testing.T) {
		in := []*Element{a, b}
		els := doc.Resolve(in)
		require.Len(t, els, 2)
		els[0] = nil
		assert.Equal(t, a, in[0])
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, doc.Resolve("#missing"))
		assert.Empty(t, doc.Resolve(".missing"))
	})

	t.Run("unsupported input yields empty", func(t *testing.T) {
		assert.Empty(t, doc.Resolve(42))
		assert.Empty(t, doc.Resolve(nil))
		assert.Empty(t, doc.Resolve((*Element)(nil)))
		assert.Empty(t, doc.Resolve(""))
		assert.Empty(t, doc.Resolve("   "))
	})
}
