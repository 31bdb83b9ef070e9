package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/logging"
	"github.com/colonyops/toasts/internal/core/notify"
	"github.com/colonyops/toasts/internal/tui"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
	"github.com/colonyops/toasts/pkg/iojson"
)

type ReplayCmd struct {
	flags  *Flags
	fr     *iojson.FileReader[tuinotify.Script]
	format string
}

func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{
		flags: flags,
		fr:    &iojson.FileReader[tuinotify.Script]{},
	}
}

func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "replay",
		Usage: "Replay a JSON command script and print the resulting toast stack",
		UsageText: `toasts replay [options]

Read from stdin:
  echo '[{"kind":"add","content":{"message":"Hello World"},"category":"info"}]' | toasts replay

Read from file:
  toasts replay -f script.json --format json`,
		Description: `Dispatches every step of the script, in order, into a fresh toast store
and prints what is left once the script ends.

Script schema (an array of steps):
  {"kind": "add", "content": {...}, "category": "info"}
  {"kind": "add", "markdown": "**bold**", "category": "danger"}
  {"kind": "removeOne", "id": 2}
  {"kind": "removeAll"}

Ids are assigned from 1 in the order toasts are added. Steps with an
unknown kind are ignored. category is one of info, success, warning,
danger, or omitted for a neutral toast.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, jsonl)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

// toastRecord is the JSON shape of one remaining notification.
type toastRecord struct {
	ID        notify.ID       `json:"id"`
	Category  notify.Category `json:"category,omitempty"`
	Kind      string          `json:"kind"`
	Payload   any             `json:"payload,omitempty"`
	Text      string          `json:"text,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func newToastRecord(n notify.Notification) toastRecord {
	rec := toastRecord{
		ID:        n.ID,
		Category:  n.Category,
		Kind:      n.Content.Kind().String(),
		CreatedAt: n.CreatedAt,
	}
	switch n.Content.Kind() {
	case notify.ContentPayload:
		rec.Payload = n.Content.Payload()
	case notify.ContentFragment:
		rec.Text = ansi.Strip(n.Content.Render())
	}
	return rec
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "replay")
	if path := c.String("file"); path != "" {
		ctx = logging.WithScript(ctx, path)
	}

	w, ew := c.Root().Writer, c.Root().ErrWriter

	switch cmd.format {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("unknown format %q (expected text, json or jsonl)", cmd.format)
	}

	script, err := cmd.fr.Read()
	if err != nil {
		if cmd.format != "text" {
			return iojson.WriteError(ew, fmt.Sprintf("read script: %s", err), nil)
		}
		return fmt.Errorf("read script: %w", err)
	}

	cfg := cmd.flags.Config
	store := notify.NewStore(notify.WithLogger(logging.Component("notify")))
	dispatch := tuinotify.NewDispatcher(store)
	defer dispatch.Close()

	view := tui.NewToastView(store, tui.NewToastController(dispatch, 0), cfg.TUI.ToastWidth, cfg.TUI.MaxVisible)
	defer view.Close()

	if err := dispatch.Replay(script, view.ContentWidth()); err != nil {
		if cmd.format != "text" {
			return iojson.WriteError(ew, fmt.Sprintf("invalid script: %s", err), nil)
		}
		return fmt.Errorf("invalid script: %w", err)
	}

	list := dispatch.List()
	log.Debug().Ctx(ctx).Int("steps", len(script)).Int("remaining", len(list)).Msg("script replayed")

	switch cmd.format {
	case "json":
		records := make([]toastRecord, 0, len(list))
		for _, n := range list {
			records = append(records, newToastRecord(n))
		}
		return iojson.WriteWith(w, ew, records)
	case "jsonl":
		for _, n := range list {
			if err := iojson.WriteLine(w, newToastRecord(n)); err != nil {
				return err
			}
		}
		return nil
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no notifications")
		return err
	}
	_, err = fmt.Fprintln(w, view.View())
	return err
}
