package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyHistory(t *testing.T) {
	h := New()

	assert.False(t, h.CanBack())
	assert.False(t, h.CanForward())
	assert.Equal(t, "", h.Current())

	_, ok := h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestZeroValueUsableWithoutNew(t *testing.T) {
	var h History

	assert.False(t, h.CanBack())
	assert.Equal(t, "", h.Current())

	h.Push("/a")
	h.Push("/b")

	assert.Equal(t, "/b", h.Current())
	path, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/a", path)
}

func TestPushAdvancesCursor(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/b")

	assert.Equal(t, "/b", h.Current())
	assert.Equal(t, 2, h.Len())
	assert.True(t, h.CanBack())
	assert.False(t, h.CanForward())
}

func TestBackAndForward(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/b")
	h.Push("/c")

	path, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/b", path)
	assert.True(t, h.CanForward())

	path, ok = h.Back()
	require.True(t, ok)
	assert.Equal(t, "/a", path)
	assert.False(t, h.CanBack())

	_, ok = h.Back()
	assert.False(t, ok, "back at the start is a no-op")
	assert.Equal(t, "/a", h.Current())

	path, ok = h.Forward()
	require.True(t, ok)
	assert.Equal(t, "/b", path)
}

func TestPushTruncatesForwardEntries(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/b")
	h.Push("/c")

	_, ok := h.Back()
	require.True(t, ok)
	_, ok = h.Back()
	require.True(t, ok)

	h.Push("/d")

	assert.Equal(t, []string{"/a", "/d"}, h.Entries())
	assert.Equal(t, "/d", h.Current())

	_, ok = h.Forward()
	assert.False(t, ok, "/d is the last entry, forward must fail")

	path, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/a", path)
}

func TestBackForwardNeverAppend(t *testing.T) {
	h := New()
	h.Push("/a")
	h.Push("/b")

	h.Back()
	h.Forward()
	h.Back()
	h.Forward()

	assert.Equal(t, 2, h.Len())
}
