package gui

import (
	"strings"
	"time"

	"filey/internal/scan"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const previewLimit = 5

// entryRow is one row of the browser list. It handles activation on double
// tap, the secondary-click context menu, drag-to-move onto folder rows, and
// a folder preview popup on hover.
type entryRow struct {
	widget.BaseWidget
	app   *App
	index int
	entry scan.Entry

	icon *widget.Icon
	name *widget.Label
	size *widget.Label

	lastTap time.Time
	dragY   float32
	preview *widget.PopUp
}

var (
	_ fyne.Tappable          = (*entryRow)(nil)
	_ fyne.SecondaryTappable = (*entryRow)(nil)
	_ fyne.Draggable         = (*entryRow)(nil)
	_ desktop.Hoverable      = (*entryRow)(nil)
)

func newEntryRow(a *App) *entryRow {
	r := &entryRow{
		app:   a,
		index: -1,
		icon:  widget.NewIcon(theme.FileIcon()),
		name:  widget.NewLabel(""),
		size:  widget.NewLabel(""),
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

func (r *entryRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, r.icon, r.size, r.name)
	return widget.NewSimpleRenderer(content)
}

func (r *entryRow) setEntry(index int, entry scan.Entry) {
	r.index = index
	r.entry = entry

	if entry.IsFolder {
		r.icon.SetResource(theme.FolderIcon())
	} else {
		r.icon.SetResource(theme.FileIcon())
	}
	r.name.SetText(entry.Name)
	r.size.SetText(entry.SizeText)
}

func (r *entryRow) Tapped(_ *fyne.PointEvent) {
	r.hidePreview()
	r.app.list.Select(r.index)

	now := time.Now()
	if now.Sub(r.lastTap) < fyne.CurrentApp().Driver().DoubleTapDelay() {
		r.app.openEntry(r.entry)
	}
	r.lastTap = now
}

func (r *entryRow) TappedSecondary(e *fyne.PointEvent) {
	r.hidePreview()
	r.app.list.Select(r.index)

	entry := r.entry
	paste := fyne.NewMenuItem("Paste", r.app.pasteClipboard)
	paste.Disabled = !r.app.clip.Usable()

	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Open", func() { r.app.openEntry(entry) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("New Folder", r.app.promptNewFolder),
		fyne.NewMenuItem("New File", r.app.promptNewFile),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rename", func() { r.app.promptRename(entry) }),
		fyne.NewMenuItem("Delete", func() { r.app.confirmDelete(entry) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Copy", func() { r.app.copyEntry(entry) }),
		paste,
	)
	widget.ShowPopUpMenuAtPosition(menu, fyne.CurrentApp().Driver().CanvasForObject(r), e.AbsolutePosition)
}

// Dragged accumulates the vertical distance so DragEnd can resolve which row
// the entry was released over.
func (r *entryRow) Dragged(e *fyne.DragEvent) {
	if r.dragY == 0 {
		r.hidePreview()
		r.app.statusLabel.SetText("Moving '" + r.entry.Name + "'")
	}
	r.dragY += e.Dragged.DY
}

func (r *entryRow) DragEnd() {
	rowHeight := r.Size().Height
	if rowHeight <= 0 {
		rowHeight = r.MinSize().Height
	}

	offset := int(r.dragY/rowHeight + 0.5*sign(r.dragY))
	r.dragY = 0
	r.app.dropOnIndex(r.entry, r.index+offset)
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

func (r *entryRow) MouseIn(e *desktop.MouseEvent) {
	r.showPreview(e.AbsolutePosition)
}

func (r *entryRow) MouseMoved(_ *desktop.MouseEvent) {}

func (r *entryRow) MouseOut() {
	r.hidePreview()
}

// showPreview pops up the first few child names of a folder row.
func (r *entryRow) showPreview(pos fyne.Position) {
	if !r.entry.IsFolder {
		return
	}
	names, more := scan.Preview(r.entry.Path, previewLimit)
	if len(names) == 0 {
		return
	}
	if more {
		names = append(names, "...")
	}

	label := widget.NewLabel(strings.Join(names, "\n"))
	r.preview = widget.NewPopUp(label, fyne.CurrentApp().Driver().CanvasForObject(r))
	r.preview.ShowAtPosition(pos.AddXY(12, 12))
}

func (r *entryRow) hidePreview() {
	if r.preview != nil {
		r.preview.Hide()
		r.preview = nil
	}
}
