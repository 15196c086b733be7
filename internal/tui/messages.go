package tui

import (
	"time"

	"filey/internal/scan"

	tea "github.com/charmbracelet/bubbletea"
)

// scanResultMsg carries a finished background scan into the update loop.
type scanResultMsg struct {
	result scan.Result
}

// refreshMsg signals that the watched directory changed on disk.
type refreshMsg struct {
	dir string
}

// transitionTickMsg drives the transition sequencer's clock.
type transitionTickMsg struct{}

const transitionFPS = 30

func listenScans(l *scan.Loader) tea.Cmd {
	return func() tea.Msg {
		return scanResultMsg{result: <-l.Results()}
	}
}

func listenRefresh(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{dir: <-ch}
	}
}

func transitionTick() tea.Cmd {
	return tea.Tick(time.Second/transitionFPS, func(time.Time) tea.Msg {
		return transitionTickMsg{}
	})
}
