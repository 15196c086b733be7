package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, l *Loader, n int) []Result {
	t.Helper()
	results := make([]Result, 0, n)
	for len(results) < n {
		select {
		case r := <-l.Results():
			results = append(results, r)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %d scan results, got %d", n, len(results))
		}
	}
	return results
}

func TestLoaderDeliversEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0644))

	l := NewLoader()
	seq := l.Dispatch(dir)

	r := collect(t, l, 1)[0]
	assert.Equal(t, seq, r.Seq)
	assert.Equal(t, dir, r.Path)
	require.Len(t, r.Entries, 1)
	assert.Equal(t, "f.txt", r.Entries[0].Name)
	assert.False(t, l.Stale(r))
}

func TestLoaderStaleResultsAreDiscardable(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "b.txt"), nil, 0644))

	l := NewLoader()
	first := l.Dispatch(dirA)
	second := l.Dispatch(dirB)
	require.Greater(t, second, first)

	// Both scans complete; only the second may be applied.
	for _, r := range collect(t, l, 2) {
		if r.Seq == first {
			assert.True(t, l.Stale(r), "superseded scan must read as stale")
		} else {
			assert.Equal(t, second, r.Seq)
			assert.False(t, l.Stale(r))
			require.Len(t, r.Entries, 1)
			assert.Equal(t, "b.txt", r.Entries[0].Name)
		}
	}
}

func TestLoaderSequenceIsMonotonic(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader()

	prev := uint64(0)
	for i := 0; i < 5; i++ {
		seq := l.Dispatch(dir)
		assert.Greater(t, seq, prev)
		prev = seq
	}
	collect(t, l, 5)
}
