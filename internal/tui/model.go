// Package tui implements the Bubble Tea demo application that hosts the
// toast store, its renderer and the pages that dispatch notifications.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/toasts/internal/core/config"
	"github.com/colonyops/toasts/internal/core/logging"
	"github.com/colonyops/toasts/internal/core/notify"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
)

// Opts are optional startup settings.
type Opts struct {
	BuildInfo BuildInfo
	Script    tuinotify.Script // replayed into the store once the program starts
	Warnings  []string         // shown as warning toasts on startup
}

// Model is the root Bubble Tea model. It mounts exactly one toast store for
// the lifetime of the program.
type Model struct {
	cfg        *config.Config
	log        zerolog.Logger
	store      *notify.Store
	dispatch   *tuinotify.Dispatcher
	controller *ToastController
	toastView  *ToastView

	keys      keyMap
	help      help.Model
	input     textinput.Model
	buildInfo BuildInfo

	page        Page
	categoryIdx int
	width       int
	height      int
	quitting    bool

	script   tuinotify.Script
	warnings []string
}

// New builds the model. The store is taken from ctx when one was installed
// with notify.WithStore; otherwise a fresh one is created.
func New(ctx context.Context, cfg *config.Config, opts Opts) Model {
	logger := logging.Component("tui")

	store, ok := notify.FromContext(ctx)
	if !ok {
		store = notify.NewStore(notify.WithLogger(logger))
	}

	dispatch := tuinotify.NewDispatcher(store)
	controller := NewToastController(dispatch, cfg.TUI.ToastTTL)
	toastView := NewToastView(store, controller, cfg.TUI.ToastWidth, cfg.TUI.MaxVisible)

	input := textinput.New()
	input.Placeholder = "Type a message"
	input.CharLimit = 200

	return Model{
		cfg:        cfg,
		log:        logger,
		store:      store,
		dispatch:   dispatch,
		controller: controller,
		toastView:  toastView,
		keys:       newKeyMap(cfg.Keybindings),
		help:       help.New(),
		input:      input,
		buildInfo:  opts.BuildInfo,
		script:     opts.Script,
		warnings:   opts.Warnings,
	}
}

// Store returns the store mounted by the model.
func (m Model) Store() *notify.Store {
	return m.store
}

// Close detaches the renderer and dispatcher from the store. Call it after
// the program exits.
func (m Model) Close() {
	m.toastView.Close()
	m.dispatch.Close()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.dispatch.Listen(), startupMsgCmd)
}

type startupMsg struct{}

func startupMsgCmd() tea.Msg { return startupMsg{} }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startupMsg:
		return m.handleStartup()

	case tuinotify.ChangedMsg:
		m.controller.Sync(msg.Notifications)
		return m, tea.Batch(m.dispatch.Listen(), m.ensureToastTick())

	case toastTickMsg:
		return m.handleToastTick()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.page == PageCompose {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleStartup() (tea.Model, tea.Cmd) {
	if len(m.script) > 0 {
		if err := m.dispatch.Replay(m.script, m.contentWidth()); err != nil {
			m.log.Warn().Err(err).Msg("startup script failed")
			m.dispatch.Dangerf("startup script: %v", err)
		}
		m.script = nil
	}

	for _, w := range m.warnings {
		m.dispatch.Warnf("%s", w)
	}
	m.warnings = nil

	return m.afterDispatch()
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.controller.Tick()
	m.toastView.Invalidate()
	if m.controller.Expiring() {
		return m, scheduleToastTick()
	}
	m.controller.SetTicking(false)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	composing := m.page == PageCompose

	switch {
	case keyMatches(msg, m.keys.ForceQuit), !composing && keyMatches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case keyMatches(msg, m.keys.NextPage):
		return m.switchPage(1)

	case keyMatches(msg, m.keys.PrevPage):
		return m.switchPage(-1)

	case keyMatches(msg, m.keys.Activate):
		m.activatePage()
		return m.afterDispatch()

	case composing && keyMatches(msg, m.keys.Category):
		m.cycleCategory()
		return m, nil
	}

	if composing && isTextInput(msg) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case keyMatches(msg, m.keys.Next):
		m.controller.FocusNext()
	case keyMatches(msg, m.keys.Prev):
		m.controller.FocusPrev()
	case keyMatches(msg, m.keys.Dismiss):
		m.controller.DismissFocused()
		return m.afterDispatch()
	case m.controller.HasToasts() && keyMatches(msg, m.keys.ClearAll):
		m.controller.DismissAll()
		return m.afterDispatch()
	}

	return m, nil
}

func (m Model) switchPage(delta int) (tea.Model, tea.Cmd) {
	m.page = Page((int(m.page) + delta + int(pageCount)) % int(pageCount))
	if m.page == PageCompose {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

// afterDispatch syncs the controller with the store right away so focus and
// deadlines are correct before the next frame, and starts the expiry timer
// when needed.
func (m Model) afterDispatch() (tea.Model, tea.Cmd) {
	m.controller.Sync(m.dispatch.List())
	return m, m.ensureToastTick()
}

// ensureToastTick starts the expiry tick chain when a toast is waiting on a
// deadline and no chain is running. The chain stops by itself once nothing
// is left to expire.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.controller.Expiring() || m.controller.Ticking() {
		return nil
	}
	m.controller.SetTicking(true)
	return scheduleToastTick()
}

// Page returns the active page.
func (m Model) Page() Page {
	return m.page
}
