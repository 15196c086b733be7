package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const slideOffset = 8

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n")
	}
	if m.mode == modePromptNewFile || m.mode == modePromptNewFolder || m.mode == modePromptRename {
		b.WriteString("  " + m.input.View() + "\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderHeader() string {
	back := "[<]"
	forward := "[>]"
	if !m.hist.CanBack() {
		back = m.styles.Faded.Render(back)
	} else {
		back = m.styles.Entry.Render(back)
	}
	if !m.hist.CanForward() {
		forward = m.styles.Faded.Render(forward)
	} else {
		forward = m.styles.Entry.Render(forward)
	}

	title := m.styles.Title.Render("Filey")
	path := m.styles.Path.Render(m.currentPath)
	return lipgloss.JoinHorizontal(lipgloss.Top, " ", title, "  ", back, " ", forward, "  ", path)
}

func (m *Model) renderList() string {
	rows := m.listHeight()
	if len(m.visible) == 0 {
		return m.styles.Faded.Render("  0 items") + strings.Repeat("\n", maxInt(rows-1, 0))
	}

	// Window the list around the cursor.
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := minInt(start+rows, len(m.visible))

	visibility := m.seq.Visibility()
	indent := ""
	if m.seq.Kind().String() == "Slide" && visibility < 1 {
		indent = strings.Repeat(" ", int((1-visibility)*slideOffset))
	}
	faded := visibility < 1

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := m.visible[i]

		marker := "  "
		style := m.styles.Entry
		if entry.IsFolder {
			style = m.styles.Folder
		}
		if i == m.cursor {
			marker = "> "
			style = m.styles.Selected
		}
		if faded {
			style = m.styles.Faded
		}

		name := entry.Name
		if entry.IsFolder {
			name += "/"
		}
		line := indent + marker + style.Render(name)
		if entry.SizeText != "" {
			line += " " + m.styles.SizeTag.Render("("+entry.SizeText+")")
		}
		if entry.Path == m.grabbed {
			line += " " + m.styles.Status.Render("moving")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - start; i < rows; i++ {
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderFooter() string {
	count := fmt.Sprintf("%d items", len(m.visible))
	status := m.status
	if status == "" {
		status = count
	}

	lines := "  " + m.styles.Status.Render(status)
	if m.showHelp {
		help := "enter open • h parent • [/] history • / filter • n/N new file/folder • r rename • d delete • y copy • p paste • m move • q quit"
		lines += "\n  " + m.styles.Help.Render(help)
	} else {
		lines += "\n  " + m.styles.Help.Render("? help")
	}
	return lines
}

func (m *Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	h := m.height - 5
	if m.mode == modeFilter || m.filter.Value() != "" {
		h--
	}
	return maxInt(h, 3)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
