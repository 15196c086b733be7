package gui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"filey/internal/fileops"
	"filey/internal/scan"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func (a *App) buildUI() {
	a.pathLabel = widget.NewLabel("")
	a.pathLabel.Truncation = fyne.TextTruncateEllipsis

	a.statusLabel = widget.NewLabel("")

	a.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		a.mu.Lock()
		path, ok := a.hist.Back()
		a.mu.Unlock()
		if ok {
			a.navigate(path, false, false)
		}
	})
	a.forwardBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		a.mu.Lock()
		path, ok := a.hist.Forward()
		a.mu.Unlock()
		if ok {
			a.navigate(path, false, false)
		}
	})
	a.backBtn.Disable()
	a.forwardBtn.Disable()

	upBtn := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		current := a.path()
		parent := filepath.Dir(current)
		if parent != current {
			a.navigate(parent, true, true)
		}
	})
	refreshBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		a.rescan(false)
	})

	animBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), a.showAnimationDialog)
	themeBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), a.showThemeDialog)

	a.searchEntry = widget.NewEntry()
	a.searchEntry.SetPlaceHolder("Search current folder...")
	a.searchEntry.OnChanged = func(q string) {
		a.mu.Lock()
		a.query = q
		a.visible = scan.Filter(a.entries, a.query)
		count := len(a.visible)
		a.mu.Unlock()
		a.statusLabel.SetText(fmt.Sprintf("%d items", count))
		a.list.Refresh()
	}

	a.list = widget.NewList(
		func() int { return a.visibleCount() },
		func() fyne.CanvasObject { return newEntryRow(a) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row := obj.(*entryRow)
			entry, ok := a.visibleAt(int(id))
			if !ok {
				return
			}
			row.setEntry(int(id), entry)
		},
	)

	a.fadeCover = canvas.NewRectangle(color.Transparent)

	navRow := container.NewBorder(nil, nil,
		container.NewHBox(a.backBtn, a.forwardBtn, upBtn, refreshBtn),
		container.NewHBox(animBtn, themeBtn),
		a.pathLabel,
	)

	content := container.NewBorder(
		container.NewVBox(navRow, a.searchEntry),
		a.statusLabel,
		nil,
		nil,
		container.NewStack(a.list, a.fadeCover),
	)

	a.window.SetContent(content)
}

// openEntry activates a row: folders navigate, files open externally.
func (a *App) openEntry(entry scan.Entry) {
	if entry.IsFolder {
		a.navigate(entry.Path, true, true)
		return
	}
	if err := fileops.OpenExternal(entry.Path); err != nil {
		a.ShowError(err)
	}
}

func (a *App) promptNewFolder() {
	a.promptName("New Folder", "Folder name", "", func(name string) error {
		return fileops.CreateFolder(a.path(), name)
	})
}

func (a *App) promptNewFile() {
	a.promptName("New File", "File name", "", func(name string) error {
		return fileops.CreateFile(a.path(), name)
	})
}

func (a *App) promptRename(entry scan.Entry) {
	a.promptName("Rename", "New name", entry.Name, func(name string) error {
		_, err := fileops.Rename(entry.Path, name)
		return err
	})
}

func (a *App) promptName(title, label, initial string, apply func(string) error) {
	entry := widget.NewEntry()
	entry.SetText(initial)

	items := []*widget.FormItem{widget.NewFormItem(label, entry)}
	dialog.ShowForm(title, "OK", "Cancel", items, func(ok bool) {
		if !ok || entry.Text == "" {
			return
		}
		if err := apply(entry.Text); err != nil {
			a.ShowError(err)
			return
		}
		a.rescan(false)
	}, a.window)
}

func (a *App) confirmDelete(entry scan.Entry) {
	dialog.ShowConfirm("Delete", "Delete '"+entry.Name+"'?", func(ok bool) {
		if !ok {
			return
		}
		if err := fileops.Delete(entry.Path); err != nil {
			a.ShowError(err)
		}
		a.rescan(false)
	}, a.window)
}

func (a *App) copyEntry(entry scan.Entry) {
	a.clip.Set(entry.Path)
	a.statusLabel.SetText("Copied '" + entry.Name + "'")
}

func (a *App) pasteClipboard() {
	if !a.clip.Usable() {
		a.statusLabel.SetText("Nothing to paste or source no longer exists")
		return
	}
	if _, err := fileops.Paste(a.clip.Path(), a.path()); err != nil {
		a.ShowError(err)
		return
	}
	a.rescan(false)
}

// dropOnIndex moves src into the folder targeted by a row drag. A file row
// resolves to its containing folder, as does a drop past the end of the
// list.
func (a *App) dropOnIndex(src scan.Entry, index int) {
	destDir := a.path()
	if target, ok := a.visibleAt(index); ok {
		if target.IsFolder && target.Path != src.Path {
			destDir = target.Path
		}
	}

	moved, err := fileops.Move(src.Path, destDir)
	switch {
	case err != nil:
		a.ShowError(err)
	case moved:
		a.statusLabel.SetText("Moved '" + src.Name + "'")
	}
	a.rescan(true)
}

// handleOSDrop moves paths dropped onto the window from outside into the
// current directory.
func (a *App) handleOSDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	dest := a.path()
	for _, uri := range uris {
		if _, err := fileops.Move(uri.Path(), dest); err != nil {
			a.ShowError(err)
		}
	}
	a.rescan(true)
}
