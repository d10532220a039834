package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctxmenu/ctxmenu/internal/surface"
)

func TestNormalize_Defaults(t *testing.T) {
	called := false
	def := Definition{
		{Key: "open", Spec: Do(func(_ *surface.Element, _ string, _ *surface.Element, _ any) {
			called = true
		})},
		{Key: "copy", Spec: Options{Label: "Copy", Title: "copy it"}},
		{Key: "sep", Spec: nil},
	}

	items := Normalize(def)
	require.Len(t, items, 3)

	// Every normalized item has a label, an enabled flag, and a callable
	// handler.
	for _, item := range items {
		assert.NotEmpty(t, item.Label)
		assert.NotNil(t, item.OnSelect)
	}

	open := items[0]
	assert.Equal(t, "open", open.Key)
	assert.Equal(t, "open", open.Label)
	assert.True(t, open.Enabled)
	open.OnSelect(nil, "open", nil, nil)
	assert.True(t, called)

	cp := items[1]
	assert.Equal(t, "Copy", cp.Label)
	assert.Equal(t, "copy it", cp.Title)
	assert.True(t, cp.Enabled)
	// Default handler is a no-op, not nil.
	assert.NotPanics(t, func() { cp.OnSelect(nil, "copy", nil, nil) })

	sep := items[2]
	assert.Equal(t, "sep", sep.Label)
	assert.False(t, sep.Enabled)
	assert.NotPanics(t, func() { sep.OnSelect(nil, "sep", nil, nil) })
}

func TestNormalize_OptionsEnabledOverride(t *testing.T) {
	items := Normalize(Definition{
		{Key: "on", Spec: Options{Enabled: Bool(true)}},
		{Key: "off", Spec: Options{Enabled: Bool(false)}},
		{Key: "unset", Spec: Options{}},
	})

	assert.True(t, items.Find("on").Enabled)
	assert.False(t, items.Find("off").Enabled)
	assert.True(t, items.Find("unset").Enabled)
}

func TestNormalize_DuplicateKeyOverwritesKeepsPosition(t *testing.T) {
	items := Normalize(Definition{
		{Key: "a", Spec: Options{Label: "first"}},
		{Key: "b", Spec: Options{Label: "middle"}},
		{Key: "a", Spec: Options{Label: "second"}},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Key)
	assert.Equal(t, "second", items[0].Label)
	assert.Equal(t, "b", items[1].Key)
}

func TestNormalize_IndependentResults(t *testing.T) {
	def := Definition{
		{Key: "toggle", Spec: Options{}},
	}

	first := Normalize(def)
	second := Normalize(def)

	first.Find("toggle").Enabled = false
	assert.True(t, second.Find("toggle").Enabled,
		"normalizations of the same definition must not share state")
}

func TestItemList_Clone(t *testing.T) {
	orig := Normalize(Definition{
		{Key: "x", Spec: Options{}},
	})
	dup := orig.Clone()

	dup.Find("x").Enabled = false
	assert.True(t, orig.Find("x").Enabled)
}

func TestItemList_Find(t *testing.T) {
	items := Normalize(Definition{
		{Key: "a", Spec: nil},
	})

	assert.NotNil(t, items.Find("a"))
	assert.Nil(t, items.Find("missing"))
}
