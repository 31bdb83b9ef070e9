package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toasts/internal/core/config"
	"github.com/colonyops/toasts/internal/core/notify"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
	"github.com/colonyops/toasts/pkg/tuitest"
)

func newTestModel(t *testing.T, mutate func(*config.Config), opts Opts) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	m := New(context.Background(), &cfg, opts)
	t.Cleanup(m.Close)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	result, _ := tuitest.Send(m, msgs...)
	out, ok := result.(Model)
	require.True(t, ok)
	return out
}

func TestModel_UsesStoreFromContext(t *testing.T) {
	store := notify.NewStore()
	ctx := notify.WithStore(context.Background(), store)
	cfg := config.DefaultConfig()

	m := New(ctx, &cfg, Opts{})
	t.Cleanup(m.Close)

	assert.Same(t, store, m.Store())
}

func TestModel_HomePageAddsHelloWorld(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	m = send(t, m, tuitest.KeyCode(tea.KeyEnter))

	list := m.Store().Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, map[string]any{"message": "Hello World"}, list[0].Content.Payload())
	assert.Equal(t, notify.CategoryInfo, list[0].Category)
}

func TestModel_FragmentPageAddsDangerFragment(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	m = send(t, m, tuitest.KeyCode(tea.KeyTab), tuitest.KeyCode(tea.KeyEnter))

	assert.Equal(t, PageFragment, m.Page())
	list := m.Store().Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, notify.ContentFragment, list[0].Content.Kind())
	assert.Equal(t, notify.CategoryDanger, list[0].Category)
}

func TestModel_ComposePageAddsTypedMessage(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	msgs := []tea.Msg{tuitest.KeyCode(tea.KeyTab), tuitest.KeyCode(tea.KeyTab)}
	for _, k := range tuitest.Type("ship it") {
		msgs = append(msgs, k)
	}
	// none -> info -> success
	msgs = append(msgs, tuitest.KeyCtrl('o'), tuitest.KeyCtrl('o'), tuitest.KeyCode(tea.KeyEnter))

	m = send(t, m, msgs...)

	assert.Equal(t, PageCompose, m.Page())
	list := m.Store().Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, map[string]any{"message": "ship it"}, list[0].Content.Payload())
	assert.Equal(t, notify.CategorySuccess, list[0].Category)
	assert.Empty(t, m.input.Value(), "input resets after submit")
}

func TestModel_ComposeTypingDoesNotTriggerToastKeys(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	m.Store().Add(notify.Message("keep me"), notify.CategoryNone)

	m = send(t, m, tuitest.KeyCode(tea.KeyTab), tuitest.KeyCode(tea.KeyTab), tuitest.KeyPress('x'), tuitest.KeyPress('C'))

	assert.Equal(t, 1, m.Store().Len())
	assert.Equal(t, "xC", m.input.Value())
}

func TestModel_ComposeEmptyMessageIsIgnored(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	m = send(t, m, tuitest.KeyCode(tea.KeyTab), tuitest.KeyCode(tea.KeyTab), tuitest.KeyCode(tea.KeyEnter))

	assert.Zero(t, m.Store().Len())
}

func TestModel_ClearPageClearsAll(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	m.Store().Add(notify.Message("a"), notify.CategoryNone)
	m.Store().Add(notify.Message("b"), notify.CategoryNone)

	m = send(t, m, tuitest.KeyShiftTab(), tuitest.KeyCode(tea.KeyEnter))

	assert.Equal(t, PageClear, m.Page())
	assert.Zero(t, m.Store().Len())
}

func TestModel_DismissKeyRemovesFocused(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	first := m.Store().Add(notify.Message("first"), notify.CategoryNone)
	second := m.Store().Add(notify.Message("second"), notify.CategoryNone)
	third := m.Store().Add(notify.Message("third"), notify.CategoryNone)

	// j twice focuses the second toast.
	m = send(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('j'))
	require.Equal(t, second, m.controller.Focused())

	m = send(t, m, tuitest.KeyPress('x'))

	list := m.Store().Notifications()
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, third, list[1].ID)
}

func TestModel_ClearAllKey(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	m.Store().Add(notify.Message("a"), notify.CategoryNone)

	m = send(t, m, tuitest.KeyPress('C'))

	assert.Zero(t, m.Store().Len())
}

func TestModel_ClearAllHiddenWhenEmpty(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	help := m.keys.shortHelp(false, false)
	for _, b := range help {
		assert.NotEqual(t, "clear all", b.Help().Desc)
	}

	m.Store().Add(notify.Message("a"), notify.CategoryNone)
	found := false
	for _, b := range m.keys.shortHelp(m.controller.HasToasts(), false) {
		if b.Help().Desc == "clear all" {
			found = true
		}
	}
	assert.True(t, found)

	m = send(t, m, tuitest.KeyShiftTab())
	view := tuitest.StripANSI(m.render())
	assert.Contains(t, view, "clear all")
}

func TestModel_StartupReplaysScriptAndWarnings(t *testing.T) {
	m := newTestModel(t, nil, Opts{
		Script: tuinotify.Script{
			{Kind: tuinotify.KindAdd, Content: []byte(`{"message":"scripted"}`)},
		},
		Warnings: []string{"careful"},
	})

	m = send(t, m, startupMsg{})

	list := m.Store().Notifications()
	require.Len(t, list, 2)
	assert.Equal(t, map[string]any{"message": "scripted"}, list[0].Content.Payload())
	assert.Equal(t, notify.CategoryWarning, list[1].Category)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	result, cmd := m.Update(tuitest.KeyPress('q'))

	require.NotNil(t, cmd)
	assert.True(t, result.(Model).quitting)
}

func TestModel_ViewOverlaysToasts(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	m = send(t, m, tuitest.WindowSize(100, 30), tuitest.KeyCode(tea.KeyEnter))

	view := tuitest.StripANSI(m.render())
	assert.Contains(t, view, "Hello World")
	assert.Contains(t, view, "Home")
}

// TestToastUpdateLoop_TickChainExpiresAtTTL drives the Update loop with
// tick messages and checks the toast is dismissed once its TTL elapses.
func TestToastUpdateLoop_TickChainExpiresAtTTL(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.TUI.ToastTTL = time.Second }, Opts{})

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.controller.now = func() time.Time { return now }

	result, cmd := m.Update(tuitest.KeyCode(tea.KeyEnter))
	m = result.(Model)
	require.NotNil(t, cmd, "adding a toast with a ttl starts the tick chain")
	require.True(t, m.controller.Ticking())

	ticks := 0
	for cmd != nil {
		now = now.Add(toastTickInterval)
		result, cmd = m.Update(toastTickMsg(now))
		m = result.(Model)
		ticks++
		if ticks > 100 {
			t.Fatal("tick chain ran for >100 ticks without expiring")
		}
	}

	assert.Equal(t, int(time.Second/toastTickInterval), ticks)
	assert.False(t, m.controller.HasToasts())
	assert.False(t, m.controller.Ticking())
}

func TestToastUpdateLoop_NoTTLNoTick(t *testing.T) {
	m := newTestModel(t, nil, Opts{})

	_, cmd := m.Update(tuitest.KeyCode(tea.KeyEnter))

	assert.Nil(t, cmd)
}

func TestToastUpdateLoop_ChangedMsgSyncsFocus(t *testing.T) {
	m := newTestModel(t, nil, Opts{})
	id := m.Store().Add(notify.Message("a"), notify.CategoryNone)
	m = send(t, m, tuitest.KeyPress('j'))
	require.Equal(t, id, m.controller.Focused())

	// Removed outside the key handlers, e.g. by a background command.
	m.Store().RemoveOne(id)
	m = send(t, m, tuinotify.ChangedMsg{Notifications: m.Store().Notifications()})

	assert.Equal(t, noFocus, m.controller.Focused())
}
