package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toasts/internal/core/notify"
	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/internal/tui/jsoncolor"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the notifications in the store as a stack and composites
// it as an overlay. The rendered stack is cached and rebuilt only after the
// store's list changes or focus moves.
type ToastView struct {
	store      *notify.Store
	controller *ToastController
	width      int
	maxVisible int

	unsubscribe func()
	dirty       bool
	cached      string
	cachedFocus notify.ID
	renders     int
}

// NewToastView subscribes a renderer to store. width and maxVisible fall back
// to defaults when not positive.
func NewToastView(store *notify.Store, controller *ToastController, width, maxVisible int) *ToastView {
	if width <= 0 {
		width = defaultToastWidth
	}
	if maxVisible <= 0 {
		maxVisible = defaultMaxVisible
	}

	controller.SetVisible(maxVisible)

	v := &ToastView{
		store:      store,
		controller: controller,
		width:      width,
		maxVisible: maxVisible,
		dirty:      true,
	}
	v.unsubscribe = store.Subscribe(func([]notify.Notification) {
		v.dirty = true
	})
	return v
}

// ContentWidth is the wrap width available inside a toast, after the border
// and padding.
func (v *ToastView) ContentWidth() int {
	return max(v.width-4, 10)
}

// Close detaches the view from the store.
func (v *ToastView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Invalidate forces the next View call to re-render.
func (v *ToastView) Invalidate() {
	v.dirty = true
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	focus := v.controller.Focused()
	if !v.dirty && focus == v.cachedFocus {
		return v.cached
	}

	v.cached = v.render(v.store.Notifications(), focus)
	v.cachedFocus = focus
	v.dirty = false
	v.renders++
	return v.cached
}

func (v *ToastView) render(list []notify.Notification, focus notify.ID) string {
	if len(list) == 0 {
		return ""
	}

	rendered := make([]string, 0, min(len(list), v.maxVisible)+1)

	hidden := len(list) - v.maxVisible
	start := 0
	if hidden > 0 {
		start = hidden
		more := fmt.Sprintf("+%d more", hidden)
		rendered = append(rendered, styles.ToastMoreStyle.Width(v.width).Align(lipgloss.Right).Render(more))
	}

	for i := start; i < len(list); i++ {
		n := list[i]
		rendered = append(rendered, v.renderToast(i+1, n, n.ID == focus))
	}

	return strings.Join(rendered, "\n")
}

// toastStyle resolves the icon and style for a category.
func toastStyle(c notify.Category) (string, lipgloss.Style) {
	switch c {
	case notify.CategoryInfo:
		return styles.IconToastInfo, styles.ToastInfoStyle
	case notify.CategorySuccess:
		return styles.IconToastSuccess, styles.ToastSuccessStyle
	case notify.CategoryWarning:
		return styles.IconToastWarning, styles.ToastWarningStyle
	case notify.CategoryDanger:
		return styles.IconToastDanger, styles.ToastDangerStyle
	default:
		return styles.IconToastNeutral, styles.ToastNeutralStyle
	}
}

// renderContent dispatches on the content tag: fragments are invoked,
// payloads are formatted as JSON.
func renderContent(c notify.Content) string {
	switch c.Kind() {
	case notify.ContentFragment:
		return c.Render()
	case notify.ContentPayload:
		return jsoncolor.Payload(c.Payload())
	default:
		return ""
	}
}

func (v *ToastView) renderToast(pos int, n notify.Notification, focused bool) string {
	icon, style := toastStyle(n.Category)
	if focused {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	// Border and padding take two columns each side.
	inner := v.width - 4

	label := fmt.Sprintf("%s %d", icon, pos)
	if n.Category != notify.CategoryNone {
		label += " " + string(n.Category)
	}
	if remaining, ok := v.controller.Remaining(n.ID); ok {
		label += styles.TextMutedStyle.Render(fmt.Sprintf(" %s %ds", styles.IconBullet, int(remaining.Round(time.Second)/time.Second)))
	}

	dismiss := styles.ToastDismissStyle.Render("[" + styles.IconDismiss + "]")
	gap := max(inner-lipgloss.Width(label)-lipgloss.Width(dismiss), 1)
	header := label + strings.Repeat(" ", gap) + dismiss

	body := renderContent(n.Content)
	content := header
	if body != "" {
		content += "\n" + body
	}

	return style.Width(v.width).Render(content)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
