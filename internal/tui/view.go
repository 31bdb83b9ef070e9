package tui

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toasts/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	footer := styles.HelpStyle.Render(m.help.ShortHelpView(m.keys.shortHelp(m.controller.HasToasts(), m.page == PageCompose)))
	body := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderPage())

	bodyH := max(h-lipgloss.Height(footer), 1)
	content := lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body) + "\n" + footer

	// Toasts go on top of everything.
	if m.controller.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

// isTextInput reports whether a key press should be typed into the compose
// field rather than treated as a command.
func isTextInput(msg tea.KeyPressMsg) bool {
	k := msg.Key()
	return k.Text != "" || k.Code == tea.KeyBackspace || k.Code == tea.KeyLeft || k.Code == tea.KeyRight
}
