package gui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"filey/internal/config"
	"filey/internal/scan"

	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.md"), []byte("y"), 0644))

	cfg := config.New()
	cfg.AnimType = config.AnimNone // keep swaps synchronous for tests
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	a := newApp(test.NewApp(), cfg, cfgPath, dir)
	a.buildUI()
	t.Cleanup(a.shutdown)

	a.navigate(dir, true, false)
	applyNextScan(t, a)
	return a, dir
}

func applyNextScan(t *testing.T, a *App) {
	t.Helper()
	select {
	case r := <-a.loader.Results():
		a.applyScan(r)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scan result")
	}
}

func visibleNames(a *App) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.visible))
	for _, e := range a.visible {
		out = append(out, e.Name)
	}
	return out
}

func TestInitialScanPopulatesList(t *testing.T) {
	a, dir := newTestApp(t)

	assert.Equal(t, []string{"Docs", "notes.txt", "todo.md"}, visibleNames(a))
	assert.Equal(t, dir, a.pathLabel.Text)
	assert.Equal(t, "3 items", a.statusLabel.Text)
	assert.True(t, a.backBtn.Disabled(), "nothing to go back to yet")
}

func TestNavigationRecordsHistory(t *testing.T) {
	a, dir := newTestApp(t)

	a.navigate(filepath.Join(dir, "Docs"), true, false)
	applyNextScan(t, a)
	assert.Equal(t, filepath.Join(dir, "Docs"), a.currentPath)
	assert.False(t, a.backBtn.Disabled())
	assert.True(t, a.forwardBtn.Disabled())

	path, ok := a.hist.Back()
	require.True(t, ok)
	a.navigate(path, false, false)
	applyNextScan(t, a)
	assert.Equal(t, dir, a.currentPath)
	assert.False(t, a.forwardBtn.Disabled())
}

func TestSearchNarrowsVisibleRows(t *testing.T) {
	a, _ := newTestApp(t)

	a.searchEntry.SetText("notes")
	assert.Equal(t, []string{"notes.txt"}, visibleNames(a))

	a.searchEntry.SetText("*.md")
	assert.Equal(t, []string{"todo.md"}, visibleNames(a))

	a.searchEntry.SetText("")
	assert.Equal(t, []string{"Docs", "notes.txt", "todo.md"}, visibleNames(a))
}

func TestNavigateClearsSearch(t *testing.T) {
	a, dir := newTestApp(t)

	a.searchEntry.SetText("notes")
	a.navigate(filepath.Join(dir, "Docs"), true, false)
	applyNextScan(t, a)

	assert.Empty(t, a.query)
	assert.Empty(t, a.searchEntry.Text)
}

// Scan results arrive on the pump goroutine while search edits come from
// the event loop. Run both at once so the race detector can see any
// unguarded access to the browsing state.
func TestConcurrentScanAndSearch(t *testing.T) {
	a, dir := newTestApp(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 25; i++ {
			a.loader.Dispatch(dir)
			r := <-a.loader.Results()
			if !a.loader.Stale(r) {
				a.applyScan(r)
			}
		}
	}()

	queries := []string{"notes", "*.md", "Docs", ""}
	for i := 0; i < 25; i++ {
		a.searchEntry.SetText(queries[i%len(queries)])
	}
	<-done

	a.searchEntry.SetText("")
	assert.Equal(t, []string{"Docs", "notes.txt", "todo.md"}, visibleNames(a))
}

func TestDropOnFolderRowMovesEntry(t *testing.T) {
	a, dir := newTestApp(t)

	// notes.txt is row 1, Docs is row 0.
	a.dropOnIndex(a.visible[1], 0)
	applyNextScan(t, a)

	assert.FileExists(t, filepath.Join(dir, "Docs", "notes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestDropOnFileRowIsNoOp(t *testing.T) {
	a, dir := newTestApp(t)

	// Row 2 is todo.md, a file: the drop resolves to the containing folder.
	a.dropOnIndex(a.visible[1], 2)
	applyNextScan(t, a)

	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.Equal(t, []string{"Docs", "notes.txt", "todo.md"}, visibleNames(a))
}

func TestStaleScanResultIgnored(t *testing.T) {
	a, dir := newTestApp(t)

	a.loader.Dispatch(filepath.Join(dir, "Docs"))
	first := <-a.loader.Results()
	a.loader.Dispatch(dir)
	second := <-a.loader.Results()

	a.applyScan(second)
	before := visibleNames(a)
	if !a.loader.Stale(first) {
		t.Fatal("first result should be stale")
	}
	assert.Equal(t, before, visibleNames(a))
}

func TestNavigationPersistsLastPath(t *testing.T) {
	a, dir := newTestApp(t)

	sub := filepath.Join(dir, "Docs")
	a.navigate(sub, true, false)
	applyNextScan(t, a)

	loaded := config.LoadFile(a.cfgPath)
	assert.Equal(t, sub, loaded.LastPath)
}

func TestBrowserThemeMapsRoles(t *testing.T) {
	th := newBrowserTheme(config.DarkTheme)

	bg := th.Color(fynetheme.ColorNameBackground, 0)
	assert.Equal(t, color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 255}, bg)

	sel := th.Color(fynetheme.ColorNameSelection, 0)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x7a, B: 0xcc, A: 255}, sel)
}

func TestEntryRowShowsNameAndSize(t *testing.T) {
	a, _ := newTestApp(t)

	row := newEntryRow(a)
	row.setEntry(1, a.visible[1])
	assert.Equal(t, "notes.txt", row.name.Text)
	assert.Equal(t, scan.HumanSize(1), row.size.Text)
}
