// Package gui is the desktop front end: a single-window file browser built
// on fyne. It shares the scanner, history, transition, and file operation
// packages with the TUI and adds drag-and-drop, context menus, and the two
// settings dialogs.
package gui

import (
	"fmt"
	"sync"
	"time"

	"filey/internal/config"
	"filey/internal/fileops"
	"filey/internal/history"
	"filey/internal/log"
	"filey/internal/scan"
	"filey/internal/transition"
	"filey/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application. Scan results arrive on the pump goroutine
// while fyne delivers events on the main one, so every access to the
// browsing state goes through mu.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	cfg     *config.Settings
	cfgPath string

	loader  *scan.Loader
	watcher *watch.Watcher
	clip    fileops.Clipboard

	mu          sync.Mutex
	hist        *history.History
	seq         *transition.Sequencer
	currentPath string
	entries     []scan.Entry
	visible     []scan.Entry
	query       string
	animateNext bool
	anim        *fyne.Animation

	startPath string

	pathLabel   *widget.Label
	backBtn     *widget.Button
	forwardBtn  *widget.Button
	searchEntry *widget.Entry
	list        *widget.List
	fadeCover   *canvas.Rectangle
	statusLabel *widget.Label

	done chan struct{}
}

// NewApp creates the GUI application browsing startPath.
func NewApp(cfg *config.Settings, cfgPath, startPath string) *App {
	fyneApp := app.NewWithID("io.github.filey")
	return newApp(fyneApp, cfg, cfgPath, startPath)
}

func newApp(fyneApp fyne.App, cfg *config.Settings, cfgPath, startPath string) *App {
	fyneApp.Settings().SetTheme(newBrowserTheme(cfg.Theme))

	watcher, err := watch.New()
	if err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher = nil
	}

	a := &App{
		fyneApp:   fyneApp,
		cfg:       cfg,
		cfgPath:   cfgPath,
		loader:    scan.NewLoader(),
		hist:      history.New(),
		seq:       transition.New(transition.ParseKind(cfg.AnimType), time.Duration(cfg.AnimDuration)*time.Millisecond),
		watcher:   watcher,
		startPath: startPath,
		done:      make(chan struct{}),
	}

	a.window = a.fyneApp.NewWindow("Filey")
	return a
}

// Run builds the window and blocks until it is closed.
func (a *App) Run() {
	a.buildUI()

	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.handleOSDrop(uris)
	})
	a.window.SetCloseIntercept(func() {
		a.shutdown()
		a.window.Close()
	})

	go a.pump()
	a.navigate(a.startPath, true, false)

	a.window.Resize(fyne.NewSize(760, 560))
	a.window.ShowAndRun()
}

// pump feeds loader results and watcher refreshes into the UI until
// shutdown.
func (a *App) pump() {
	var refresh <-chan string
	if a.watcher != nil {
		refresh = a.watcher.Refresh()
	}
	for {
		select {
		case r := <-a.loader.Results():
			if a.loader.Stale(r) {
				continue
			}
			a.applyScan(r)
		case dir := <-refresh:
			a.mu.Lock()
			current := a.currentPath
			a.mu.Unlock()
			if dir == current {
				a.loader.Dispatch(dir)
			}
		case <-a.done:
			return
		}
	}
}

func (a *App) applyScan(r scan.Result) {
	// Runs with mu held, from Request, Reset, or a transition tick.
	swap := func() {
		a.entries = r.Entries
	}

	a.mu.Lock()
	animate := a.animateNext
	a.animateNext = false
	if animate {
		a.seq.Request(swap)
		if !a.seq.Idle() {
			a.mu.Unlock()
			a.startTransition()
			return
		}
	} else {
		a.seq.Reset()
		swap()
	}
	a.mu.Unlock()

	a.refreshList()
	a.applyFrame()
}

// startTransition drives the sequencer from a fyne animation ticker.
func (a *App) startTransition() {
	a.mu.Lock()
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
	total := 2 * a.seq.Duration()
	a.mu.Unlock()

	var anim *fyne.Animation
	anim = fyne.NewAnimation(total, func(float32) {
		a.mu.Lock()
		wasOut := a.seq.Phase() == transition.AnimatingOut
		still := a.seq.Tick()
		swapped := wasOut && a.seq.Phase() != transition.AnimatingOut
		if !still && a.anim == anim {
			a.anim = nil
		}
		a.mu.Unlock()

		if swapped {
			a.refreshList()
		}
		a.applyFrame()
		if !still {
			anim.Stop()
		}
	})
	anim.Curve = fyne.AnimationLinear

	a.mu.Lock()
	a.anim = anim
	a.mu.Unlock()
	anim.Start()
}

// applyFrame renders the sequencer's current visibility: an alpha cover for
// fade, a horizontal offset for slide.
func (a *App) applyFrame() {
	a.mu.Lock()
	kind := a.seq.Kind()
	v := a.seq.Visibility()
	cover := config.ParseColor(a.cfg.Theme.Background)
	a.mu.Unlock()

	switch kind {
	case transition.Slide:
		offset := float32(1-v) * a.list.Size().Width
		a.list.Move(fyne.NewPos(offset, a.list.Position().Y))
	default:
		cover.A = uint8(255 * (1 - v))
		a.fadeCover.FillColor = cover
		a.fadeCover.Refresh()
	}
}

// navigate switches the displayed directory: records history when asked,
// dispatches a background scan, repoints the watcher, and persists the
// session.
func (a *App) navigate(path string, push, animate bool) {
	a.mu.Lock()
	a.currentPath = path
	if push {
		a.hist.Push(path)
	}
	a.query = ""
	a.animateNext = animate
	a.mu.Unlock()

	if a.searchEntry != nil && a.searchEntry.Text != "" {
		a.searchEntry.SetText("")
	}
	a.loader.Dispatch(path)

	if a.watcher != nil {
		if err := a.watcher.Watch(path); err != nil {
			log.Debugf("could not watch %s: %v", path, err)
		}
	}

	a.cfg.LastPath = path
	a.saveConfig()
}

// rescan reloads the current directory, after a mutating file operation.
func (a *App) rescan(animate bool) {
	a.mu.Lock()
	a.animateNext = animate
	path := a.currentPath
	a.mu.Unlock()
	a.loader.Dispatch(path)
}

// refreshList recomputes the visible rows under the lock, then pushes the
// snapshot into the widgets.
func (a *App) refreshList() {
	a.mu.Lock()
	a.visible = scan.Filter(a.entries, a.query)
	path := a.currentPath
	count := len(a.visible)
	canBack := a.hist.CanBack()
	canForward := a.hist.CanForward()
	a.mu.Unlock()

	a.pathLabel.SetText(path)
	a.statusLabel.SetText(fmt.Sprintf("%d items", count))

	if canBack {
		a.backBtn.Enable()
	} else {
		a.backBtn.Disable()
	}
	if canForward {
		a.forwardBtn.Enable()
	} else {
		a.forwardBtn.Disable()
	}

	a.list.UnselectAll()
	a.list.Refresh()
}

// visibleAt returns the row at index, if it still exists.
func (a *App) visibleAt(index int) (scan.Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.visible) {
		return scan.Entry{}, false
	}
	return a.visible[index], true
}

func (a *App) visibleCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.visible)
}

func (a *App) path() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentPath
}

func (a *App) shutdown() {
	a.mu.Lock()
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
	a.seq.Reset()
	a.mu.Unlock()

	if a.watcher != nil {
		a.watcher.Stop()
	}
	close(a.done)
	a.saveConfig()
}

// ShowError displays an error dialog.
func (a *App) ShowError(err error) {
	if err == nil {
		return
	}
	dialog.ShowError(err, a.window)
}

// ShowInfo displays an information dialog.
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.window)
}

func (a *App) saveConfig() {
	if err := config.Save(a.cfg, a.cfgPath); err != nil {
		log.Warnf("could not save settings: %v", err)
	}
}
