package tui

import (
	"slices"
	"time"

	"github.com/colonyops/toasts/internal/core/notify"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
)

const (
	defaultToastWidth = 50
	defaultMaxVisible = 5
	toastTickInterval = 100 * time.Millisecond
	noFocus           = notify.ID(0)
)

// ToastController drives the lifecycle of the toasts in the store: the
// focused toast, dismissal, bulk clear, and optional expiry after a TTL.
// It never edits the list itself; every change is a command sent through
// the dispatcher.
type ToastController struct {
	dispatch  *tuinotify.Dispatcher
	ttl       time.Duration
	deadlines map[notify.ID]time.Time
	focus     notify.ID
	visible   int // 0 means every toast is drawn
	ticking   bool
	now       func() time.Time
}

// NewToastController creates a controller. A zero ttl keeps toasts until
// they are dismissed.
func NewToastController(dispatch *tuinotify.Dispatcher, ttl time.Duration) *ToastController {
	return &ToastController{
		dispatch:  dispatch,
		ttl:       ttl,
		deadlines: make(map[notify.ID]time.Time),
		now:       time.Now,
	}
}

// SetVisible limits focus to the n newest toasts, the ones the view draws.
// n <= 0 makes every toast focusable.
func (c *ToastController) SetVisible(n int) {
	c.visible = max(n, 0)
}

// visibleTail returns the part of list that is drawn.
func (c *ToastController) visibleTail(list []notify.Notification) []notify.Notification {
	if c.visible > 0 && len(list) > c.visible {
		return list[len(list)-c.visible:]
	}
	return list
}

// Sync reconciles controller state with list after a store change: new
// toasts get a deadline, removed toasts lose theirs, and focus moves off a
// toast that no longer exists or is no longer drawn.
func (c *ToastController) Sync(list []notify.Notification) {
	live := make(map[notify.ID]bool, len(list))
	for _, n := range list {
		live[n.ID] = true
		if _, ok := c.deadlines[n.ID]; !ok && c.ttl > 0 {
			c.deadlines[n.ID] = c.now().Add(c.ttl)
		}
	}

	for id := range c.deadlines {
		if !live[id] {
			delete(c.deadlines, id)
		}
	}

	if c.focus != noFocus && !slices.ContainsFunc(c.visibleTail(list), func(n notify.Notification) bool { return n.ID == c.focus }) {
		c.focus = noFocus
	}
}

// Tick dismisses every toast whose deadline has passed.
func (c *ToastController) Tick() {
	now := c.now()
	var expired []notify.ID
	for id, deadline := range c.deadlines {
		if !now.Before(deadline) {
			expired = append(expired, id)
		}
	}
	slices.Sort(expired)

	for _, id := range expired {
		delete(c.deadlines, id)
		c.dispatch.Dismiss(id)
	}
}

// Expiring reports whether any toast is waiting on a deadline.
func (c *ToastController) Expiring() bool {
	return len(c.deadlines) > 0
}

// Remaining returns how long the toast with id has left, and false when it
// does not expire.
func (c *ToastController) Remaining(id notify.ID) (time.Duration, bool) {
	deadline, ok := c.deadlines[id]
	if !ok {
		return 0, false
	}
	return max(deadline.Sub(c.now()), 0), true
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return c.dispatch.Len() > 0
}

// Focused returns the focused toast id, or 0 when nothing is focused.
func (c *ToastController) Focused() notify.ID {
	return c.focus
}

// FocusNext moves focus to the next drawn toast (towards the newest),
// wrapping within the drawn toasts.
func (c *ToastController) FocusNext() {
	c.moveFocus(1)
}

// FocusPrev moves focus to the previous drawn toast (towards the oldest),
// wrapping within the drawn toasts.
func (c *ToastController) FocusPrev() {
	c.moveFocus(-1)
}

func (c *ToastController) moveFocus(delta int) {
	list := c.visibleTail(c.dispatch.List())
	if len(list) == 0 {
		c.focus = noFocus
		return
	}

	idx := slices.IndexFunc(list, func(n notify.Notification) bool { return n.ID == c.focus })
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(list) - 1
	default:
		idx = (idx + delta + len(list)) % len(list)
	}
	c.focus = list[idx].ID
}

// DismissFocused removes the focused toast. With nothing focused it removes
// the newest one.
func (c *ToastController) DismissFocused() {
	id := c.focus
	if id == noFocus {
		list := c.dispatch.List()
		if len(list) == 0 {
			return
		}
		id = list[len(list)-1].ID
	}
	c.dispatch.Dismiss(id)
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.dispatch.Clear()
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
