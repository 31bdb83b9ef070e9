package notify

import (
	"encoding/json"
	"fmt"

	"github.com/colonyops/toasts/internal/core/notify"
)

// Command kinds in the JSON wire format.
const (
	KindAdd       = "add"
	KindRemoveOne = "removeOne"
	KindRemoveAll = "removeAll"
)

// Step is one entry of a JSON command script:
//
//	{"kind": "add", "content": {"message": "hi"}, "category": "info"}
//	{"kind": "add", "markdown": "**bold**", "category": "danger"}
//	{"kind": "removeOne", "id": 2}
//	{"kind": "removeAll"}
type Step struct {
	Kind     string          `json:"kind"`
	Content  json.RawMessage `json:"content,omitempty"`
	Markdown string          `json:"markdown,omitempty"`
	Category notify.Category `json:"category,omitempty"`
	ID       notify.ID       `json:"id,omitempty"`
}

// Script is an ordered list of steps.
type Script []Step

// Command converts the step into a store command. markdownWidth is the wrap
// width for markdown fragments.
func (s Step) Command(markdownWidth int) (notify.Command, error) {
	switch s.Kind {
	case KindAdd:
		if !s.Category.IsValid() {
			return nil, fmt.Errorf("unknown category %q", s.Category)
		}
		if s.Markdown != "" {
			return notify.Add{Content: notify.Markdown(s.Markdown, markdownWidth), Category: s.Category}, nil
		}

		var payload any
		if len(s.Content) > 0 {
			if err := json.Unmarshal(s.Content, &payload); err != nil {
				return nil, fmt.Errorf("decode content: %w", err)
			}
		}
		return notify.Add{Content: notify.Payload(payload), Category: s.Category}, nil

	case KindRemoveOne:
		return notify.RemoveOne{ID: s.ID}, nil

	case KindRemoveAll:
		return notify.RemoveAll{}, nil

	default:
		return notify.Unknown{Kind: s.Kind}, nil
	}
}

// Commands converts every step, stopping at the first malformed one.
func (sc Script) Commands(markdownWidth int) ([]notify.Command, error) {
	cmds := make([]notify.Command, 0, len(sc))
	for i, step := range sc {
		cmd, err := step.Command(markdownWidth)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Kind, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Replay dispatches every command of the script in order.
func (d *Dispatcher) Replay(sc Script, markdownWidth int) error {
	cmds, err := sc.Commands(markdownWidth)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		d.Dispatch(cmd)
	}
	return nil
}
