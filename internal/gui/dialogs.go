package gui

import (
	"fmt"
	"time"

	"filey/internal/config"
	"filey/internal/transition"

	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showAnimationDialog edits the transition kind and duration. Accepting
// persists the settings and reconfigures the sequencer.
func (a *App) showAnimationDialog() {
	durations := make([]string, len(config.AnimDurations))
	for i, d := range config.AnimDurations {
		durations[i] = fmt.Sprintf("%d ms", d)
	}

	durationSelect := widget.NewSelect(durations, nil)
	durationSelect.SetSelected(fmt.Sprintf("%d ms", a.cfg.AnimDuration))

	kindSelect := widget.NewSelect([]string{config.AnimFade, config.AnimSlide, config.AnimNone}, nil)
	kindSelect.SetSelected(a.cfg.AnimType)

	items := []*widget.FormItem{
		widget.NewFormItem("Effect", kindSelect),
		widget.NewFormItem("Duration", durationSelect),
	}

	dialog.ShowForm("Animation Settings", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}

		var ms int
		fmt.Sscanf(durationSelect.Selected, "%d ms", &ms)

		a.mu.Lock()
		a.cfg.AnimDuration = ms
		a.cfg.AnimType = kindSelect.Selected
		kind := transition.ParseKind(a.cfg.AnimType)
		a.seq.Configure(kind, time.Duration(ms)*time.Millisecond)
		if kind == transition.None {
			a.seq.Reset()
		}
		a.mu.Unlock()

		if kind == transition.None {
			a.applyFrame()
		}
		a.saveConfig()
	}, a.window)
}

// showThemeDialog edits the five color roles as hex values. Each entry is
// validated as #rrggbb; accepting applies the theme and persists it.
func (a *App) showThemeDialog() {
	hex := validation.NewRegexp(`^#[0-9a-fA-F]{6}$`, "use #rrggbb")

	roles := []struct {
		label string
		value string
	}{
		{"Background", a.cfg.Theme.Background},
		{"Text", a.cfg.Theme.Text},
		{"Selected", a.cfg.Theme.SelectedBg},
		{"Hover", a.cfg.Theme.HoverBg},
		{"Tooltip", a.cfg.Theme.TooltipBg},
	}

	entries := make([]*widget.Entry, len(roles))
	items := make([]*widget.FormItem, len(roles))
	for i, role := range roles {
		entry := widget.NewEntry()
		entry.SetText(role.value)
		entry.Validator = hex
		entries[i] = entry
		items[i] = widget.NewFormItem(role.label, entry)
	}

	dialog.ShowForm("Theme Editor", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}

		t := config.Theme{
			Background: entries[0].Text,
			Text:       entries[1].Text,
			SelectedBg: entries[2].Text,
			HoverBg:    entries[3].Text,
			TooltipBg:  entries[4].Text,
		}
		if !t.Complete() {
			a.ShowError(fmt.Errorf("theme must set all five colors"))
			return
		}

		a.mu.Lock()
		a.cfg.Theme = t
		a.mu.Unlock()
		a.fyneApp.Settings().SetTheme(newBrowserTheme(t))
		a.saveConfig()
		a.list.Refresh()
	}, a.window)
}
