// Package notify is the dispatch surface UI components use to mutate the
// toast store.
package notify

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/toasts/internal/core/notify"
)

// ChangedMsg is delivered to the Bubble Tea program after the store's list
// changed.
type ChangedMsg struct {
	Notifications []notify.Notification
}

// Dispatcher is the handle any UI element receives: it reads the current
// list and submits commands to the single store mounted for the program.
type Dispatcher struct {
	store   *notify.Store
	changed chan []notify.Notification
	cancel  func()
}

// NewDispatcher wraps store and subscribes to its changes.
func NewDispatcher(store *notify.Store) *Dispatcher {
	d := &Dispatcher{
		store:   store,
		changed: make(chan []notify.Notification, 1),
	}
	d.cancel = store.Subscribe(d.signal)
	return d
}

// signal keeps only the newest list pending; the renderer only ever needs
// the latest state.
func (d *Dispatcher) signal(list []notify.Notification) {
	for {
		select {
		case d.changed <- list:
			return
		default:
		}
		select {
		case <-d.changed:
		default:
		}
	}
}

// Close detaches the dispatcher from the store.
func (d *Dispatcher) Close() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Store returns the underlying store.
func (d *Dispatcher) Store() *notify.Store {
	return d.store
}

// Dispatch submits cmd to the store.
func (d *Dispatcher) Dispatch(cmd notify.Command) notify.Notification {
	return d.store.Dispatch(cmd)
}

// List returns the current notifications in insertion order.
func (d *Dispatcher) List() []notify.Notification {
	return d.store.Notifications()
}

// Len returns the number of active notifications. Consumers use it to decide
// whether to offer "clear all".
func (d *Dispatcher) Len() int {
	return d.store.Len()
}

// Add dispatches an Add command and returns the new id.
func (d *Dispatcher) Add(content notify.Content, category notify.Category) notify.ID {
	return d.store.Add(content, category)
}

// Dismiss dispatches RemoveOne.
func (d *Dispatcher) Dismiss(id notify.ID) {
	d.store.RemoveOne(id)
}

// Clear dispatches RemoveAll.
func (d *Dispatcher) Clear() {
	d.store.RemoveAll()
}

// Info adds a payload with the info category.
func (d *Dispatcher) Info(payload any) notify.ID {
	return d.Add(notify.Payload(payload), notify.CategoryInfo)
}

// Success adds a payload with the success category.
func (d *Dispatcher) Success(payload any) notify.ID {
	return d.Add(notify.Payload(payload), notify.CategorySuccess)
}

// Warn adds a payload with the warning category.
func (d *Dispatcher) Warn(payload any) notify.ID {
	return d.Add(notify.Payload(payload), notify.CategoryWarning)
}

// Danger adds a payload with the danger category.
func (d *Dispatcher) Danger(payload any) notify.ID {
	return d.Add(notify.Payload(payload), notify.CategoryDanger)
}

// Infof adds a formatted info message.
func (d *Dispatcher) Infof(format string, args ...any) notify.ID {
	return d.Add(notify.Message(fmt.Sprintf(format, args...)), notify.CategoryInfo)
}

// Warnf adds a formatted warning message.
func (d *Dispatcher) Warnf(format string, args ...any) notify.ID {
	return d.Add(notify.Message(fmt.Sprintf(format, args...)), notify.CategoryWarning)
}

// Dangerf adds a formatted danger message.
func (d *Dispatcher) Dangerf(format string, args ...any) notify.ID {
	return d.Add(notify.Message(fmt.Sprintf(format, args...)), notify.CategoryDanger)
}

// Listen returns a command that blocks until the store changes and then
// delivers a ChangedMsg. Re-issue it after each ChangedMsg to keep listening.
func (d *Dispatcher) Listen() tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Notifications: <-d.changed}
	}
}
