package gui

import (
	"image/color"

	"filey/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// browserTheme maps the five configured color roles onto fyne's theme names
// and delegates everything else to the default theme.
type browserTheme struct {
	base  fyne.Theme
	roles config.Theme
}

func newBrowserTheme(roles config.Theme) fyne.Theme {
	return &browserTheme{base: theme.DefaultTheme(), roles: roles}
}

func (t *browserTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return config.ParseColor(t.roles.Background)
	case theme.ColorNameForeground:
		return config.ParseColor(t.roles.Text)
	case theme.ColorNameSelection:
		return config.ParseColor(t.roles.SelectedBg)
	case theme.ColorNameHover:
		return config.ParseColor(t.roles.HoverBg)
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return config.ParseColor(t.roles.TooltipBg)
	}
	return t.base.Color(name, variant)
}

func (t *browserTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *browserTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *browserTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
