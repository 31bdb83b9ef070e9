package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toasts/internal/core/notify"
	"github.com/colonyops/toasts/internal/core/styles"
)

// Page identifies a demo page. Each page exercises one dispatch call site.
type Page int

const (
	PageHome Page = iota
	PageFragment
	PageCompose
	PageClear
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageFragment:
		return "Fragment"
	case PageCompose:
		return "Compose"
	case PageClear:
		return "Clear"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

const fragmentMarkdown = "**Deploy failed** on `api-2`\n\nRolled back to the previous release."

// activatePage runs the dispatch call site that belongs to the current page.
func (m *Model) activatePage() {
	switch m.page {
	case PageHome:
		m.dispatch.Add(notify.Message("Hello World"), notify.CategoryInfo)
	case PageFragment:
		m.dispatch.Add(notify.Markdown(fragmentMarkdown, m.contentWidth()), notify.CategoryDanger)
	case PageCompose:
		msg := strings.TrimSpace(m.input.Value())
		if msg == "" {
			return
		}
		m.dispatch.Add(notify.Message(msg), m.composeCategory())
		m.input.Reset()
	case PageClear:
		if m.dispatch.Len() > 0 {
			m.dispatch.Clear()
		}
	}
}

func (m *Model) contentWidth() int {
	return m.toastView.ContentWidth()
}

func (m *Model) composeCategory() notify.Category {
	if m.categoryIdx == 0 {
		return notify.CategoryNone
	}
	return notify.Categories()[m.categoryIdx-1]
}

func (m *Model) cycleCategory() {
	m.categoryIdx = (m.categoryIdx + 1) % (len(notify.Categories()) + 1)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, pageCount)
	for p := range pageCount {
		if p == m.page {
			tabs = append(tabs, styles.TabActiveStyle.Render(p.String()))
		} else {
			tabs = append(tabs, styles.TabInactiveStyle.Render(p.String()))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if m.buildInfo.Version != "" {
		row += "  " + styles.TextMutedStyle.Render(m.buildInfo.Version)
	}
	return row
}

func (m Model) renderPage() string {
	var title, body string

	switch m.page {
	case PageHome:
		title = "Payload toast"
		body = "Press " + styles.ButtonStyle.Render("enter") + ` to add {"message": "Hello World"}.`
	case PageFragment:
		title = "Fragment toast"
		body = "Press " + styles.ButtonStyle.Render("enter") + " to add a rendered markdown fragment styled as danger."
	case PageCompose:
		title = "Compose"
		category := string(m.composeCategory())
		if category == "" {
			category = "none"
		}
		body = m.input.View() + "\n\n" +
			styles.TextMutedStyle.Render("category: ") + styles.TextPrimaryStyle.Render(category)
	case PageClear:
		title = "Clear"
		n := m.dispatch.Len()
		if n == 0 {
			body = styles.TextMutedStyle.Render("No active notifications.")
		} else {
			body = fmt.Sprintf("%d active notification(s).\n\n", n) +
				styles.ButtonStyle.Render("enter") + " clear all"
		}
	}

	return styles.PageBodyStyle.Render(styles.PageTitleStyle.Render(title) + "\n" + body)
}
