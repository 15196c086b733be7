// Package tui is the terminal front end: the same browser core as the GUI,
// rendered with bubbletea. Scans arrive as messages from the background
// loader and transitions are driven by tick messages through the shared
// sequencer.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"filey/internal/config"
	"filey/internal/fileops"
	"filey/internal/history"
	"filey/internal/log"
	"filey/internal/scan"
	"filey/internal/transition"
	"filey/internal/watch"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modePromptNewFile
	modePromptNewFolder
	modePromptRename
	modeConfirmDelete
)

// Model is the bubbletea model for the browse view.
type Model struct {
	cfg     *config.Settings
	cfgPath string

	loader  *scan.Loader
	hist    *history.History
	seq     *transition.Sequencer
	watcher *watch.Watcher
	clip    fileops.Clipboard

	currentPath string
	entries     []scan.Entry
	visible     []scan.Entry
	cursor      int
	animateNext bool

	mode     mode
	filter   textinput.Model
	input    textinput.Model
	grabbed  string
	status   string
	showHelp bool

	width  int
	height int
	styles Styles
}

// New creates the model rooted at startPath.
func New(cfg *config.Settings, cfgPath, startPath string) *Model {
	filter := textinput.New()
	filter.Placeholder = "search current folder..."
	filter.CharLimit = 128

	input := textinput.New()
	input.CharLimit = 255

	watcher, err := watch.New()
	if err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher = nil
	}

	return &Model{
		cfg:         cfg,
		cfgPath:     cfgPath,
		loader:      scan.NewLoader(),
		hist:        history.New(),
		seq:         transition.New(transition.ParseKind(cfg.AnimType), time.Duration(cfg.AnimDuration)*time.Millisecond),
		watcher:     watcher,
		currentPath: startPath,
		filter:      filter,
		input:       input,
		styles:      NewStyles(cfg.Theme),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.navigate(m.currentPath, true, false),
		listenScans(m.loader),
	}
	if m.watcher != nil {
		cmds = append(cmds, listenRefresh(m.watcher.Refresh()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanResultMsg:
		return m.handleScanResult(msg)

	case refreshMsg:
		// External change in the displayed directory: plain re-scan.
		cmds := []tea.Cmd{listenRefresh(m.watcher.Refresh())}
		if msg.dir == m.currentPath {
			m.animateNext = false
			m.loader.Dispatch(m.currentPath)
		}
		return m, tea.Batch(cmds...)

	case transitionTickMsg:
		if m.seq.Tick() {
			return m, transitionTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleScanResult(msg scanResultMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{listenScans(m.loader)}

	if m.loader.Stale(msg.result) {
		return m, tea.Batch(cmds...)
	}

	entries := msg.result.Entries
	swap := func() {
		m.entries = entries
		m.applyFilter()
	}

	if m.animateNext {
		m.seq.Request(swap)
		if !m.seq.Idle() {
			cmds = append(cmds, transitionTick())
		}
	} else {
		m.seq.Reset()
		swap()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modePromptNewFile, modePromptNewFolder, modePromptRename:
		return m.handlePromptKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.shutdown()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}

	case "enter", "l", "right":
		return m.openCurrent()

	case "backspace", "h", "left":
		parent := filepath.Dir(m.currentPath)
		if parent != m.currentPath {
			return m, m.navigate(parent, true, true)
		}

	case "[", "alt+left":
		if path, ok := m.hist.Back(); ok {
			return m, m.navigate(path, false, false)
		}
	case "]", "alt+right":
		if path, ok := m.hist.Forward(); ok {
			return m, m.navigate(path, false, false)
		}

	case "/":
		m.mode = modeFilter
		m.status = ""
		return m, m.filter.Focus()

	case "n":
		return m.prompt(modePromptNewFile, "new file name", "")
	case "N":
		return m.prompt(modePromptNewFolder, "new folder name", "")
	case "r":
		if entry, ok := m.currentEntry(); ok {
			return m.prompt(modePromptRename, "rename to", entry.Name)
		}
	case "d":
		if entry, ok := m.currentEntry(); ok {
			m.mode = modeConfirmDelete
			m.status = fmt.Sprintf("Delete '%s'? (y/n)", entry.Name)
		}

	case "y":
		if entry, ok := m.currentEntry(); ok {
			m.clip.Set(entry.Path)
			m.status = fmt.Sprintf("Copied '%s'", entry.Name)
		}
	case "p":
		if !m.clip.Usable() {
			m.status = "Nothing to paste or source no longer exists"
			break
		}
		if _, err := fileops.Paste(m.clip.Path(), m.currentPath); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		return m, m.rescan(false)

	case "m":
		return m.handleMoveKey()

	case "?":
		m.showHelp = !m.showHelp

	case "esc":
		if m.grabbed != "" {
			m.grabbed = ""
			m.status = "Move cancelled"
		} else if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		} else {
			m.status = ""
		}
	}
	return m, nil
}

// handleMoveKey is the keyboard rendition of drag-and-drop: the first press
// grabs the selected entry, the second drops it on the selected folder (or
// the current directory when the selection is a file).
func (m *Model) handleMoveKey() (tea.Model, tea.Cmd) {
	if m.grabbed == "" {
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		m.grabbed = entry.Path
		m.status = fmt.Sprintf("Moving '%s': press m on a destination folder, esc cancels", entry.Name)
		return m, nil
	}

	destDir := m.currentPath
	if entry, ok := m.currentEntry(); ok && entry.IsFolder {
		destDir = entry.Path
	}
	src := m.grabbed
	m.grabbed = ""

	moved, err := fileops.Move(src, destDir)
	switch {
	case err != nil:
		m.status = err.Error()
	case moved:
		m.status = fmt.Sprintf("Moved '%s'", filepath.Base(src))
	default:
		m.status = ""
	}
	// Drops take the animated refresh path.
	return m, m.rescan(true)
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.filter.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		name := m.input.Value()
		promptMode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		var err error
		switch promptMode {
		case modePromptNewFile:
			err = fileops.CreateFile(m.currentPath, name)
		case modePromptNewFolder:
			err = fileops.CreateFolder(m.currentPath, name)
		case modePromptRename:
			if entry, ok := m.currentEntry(); ok {
				_, err = fileops.Rename(entry.Path, name)
			}
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		return m, m.rescan(false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		m.status = ""
		if entry, ok := m.currentEntry(); ok {
			if err := fileops.Delete(entry.Path); err != nil {
				m.status = err.Error()
			}
		}
		return m, m.rescan(false)
	case "n", "N", "esc":
		m.mode = modeBrowse
		m.status = ""
	}
	return m, nil
}

func (m *Model) openCurrent() (tea.Model, tea.Cmd) {
	entry, ok := m.currentEntry()
	if !ok {
		return m, nil
	}
	if entry.IsFolder {
		return m, m.navigate(entry.Path, true, true)
	}
	if err := fileops.OpenExternal(entry.Path); err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m *Model) prompt(kind mode, placeholder, initial string) (tea.Model, tea.Cmd) {
	m.mode = kind
	m.status = ""
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// navigate switches the displayed directory: records history when asked,
// dispatches a background scan, repoints the watcher, and persists the
// session.
func (m *Model) navigate(path string, push, animate bool) tea.Cmd {
	m.currentPath = path
	if push {
		m.hist.Push(path)
	}
	m.cursor = 0
	m.filter.SetValue("")
	m.animateNext = animate
	m.loader.Dispatch(path)

	if m.watcher != nil {
		if err := m.watcher.Watch(path); err != nil {
			log.Debugf("could not watch %s: %v", path, err)
		}
	}

	m.cfg.LastPath = path
	if err := config.Save(m.cfg, m.cfgPath); err != nil {
		log.Warnf("could not save settings: %v", err)
	}
	return nil
}

// rescan reloads the current directory, after a mutating file operation.
func (m *Model) rescan(animate bool) tea.Cmd {
	m.animateNext = animate
	m.loader.Dispatch(m.currentPath)
	return nil
}

func (m *Model) applyFilter() {
	m.visible = scan.Filter(m.entries, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentEntry() (scan.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return scan.Entry{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) shutdown() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.seq.Reset()
	if err := config.Save(m.cfg, m.cfgPath); err != nil {
		log.Warnf("could not save settings: %v", err)
	}
}

// Accessors used by the view and tests.

// CurrentPath returns the displayed directory.
func (m *Model) CurrentPath() string { return m.currentPath }

// Visible returns the rows currently displayed.
func (m *Model) Visible() []scan.Entry { return m.visible }

// Cursor returns the selected row index.
func (m *Model) Cursor() int { return m.cursor }

// Run starts the TUI over the given settings, browsing startPath.
func Run(cfg *config.Settings, cfgPath, startPath string) error {
	p := tea.NewProgram(New(cfg, cfgPath, startPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
