package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestListOrdering(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"zeta", "Alpha", "beta"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0755))
	}
	for _, f := range []string{"Readme.md", "app.txt", "Binary"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644))
	}

	entries := List(dir)
	require.Len(t, entries, 6)

	// Folders first, each group case-insensitively sorted.
	assert.Equal(t, []string{"Alpha", "beta", "zeta", "app.txt", "Binary", "Readme.md"}, names(entries))
	for i := 0; i < 3; i++ {
		assert.True(t, entries[i].IsFolder)
	}
	for i := 3; i < 6; i++ {
		assert.False(t, entries[i].IsFolder)
	}
}

func TestListSizes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"), make([]byte, 2048), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries := List(dir)
	require.Len(t, entries, 2)

	assert.Equal(t, "sub", entries[0].Name)
	assert.Empty(t, entries[0].SizeText, "folders carry no size tag")
	assert.Equal(t, "2.0 KB", entries[1].SizeText)
	assert.Equal(t, "one.txt (2.0 KB)", entries[1].Display())
}

func TestListUnreadableDirectory(t *testing.T) {
	entries := List(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListFullPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	entries := List(dir)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "a.txt"), entries[0].Path)
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.in))
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a", "b", "c", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0644))
	}

	names, more := Preview(dir, 5)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.False(t, more)

	names, more = Preview(dir, 2)
	assert.Len(t, names, 2)
	assert.True(t, more)

	names, more = Preview(filepath.Join(dir, "missing"), 5)
	assert.Nil(t, names)
	assert.False(t, more)
}
