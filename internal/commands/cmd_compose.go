package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/notify"
	"github.com/colonyops/toasts/internal/core/styles"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
	"github.com/colonyops/toasts/pkg/iojson"
)

type ComposeCmd struct {
	flags    *Flags
	file     string
	message  string
	category string
	markdown bool
}

func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "compose",
		Usage: "Append an add step to a JSON command script",
		UsageText: `toasts compose -f script.json [options]

Interactive:
  toasts compose -f script.json

Non-interactive:
  toasts compose -f script.json -m "Deploy finished" --category success`,
		Description: `Builds a notification with a form (or from flags) and appends it as an
"add" step to the script file, creating the file when it does not exist.
The script can be fed to 'toasts replay' or 'toasts --script'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the JSON script to append to",
				Required:    true,
				Destination: &cmd.file,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "notification text (skips the form)",
				Destination: &cmd.message,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "category (info, success, warning, danger); empty for neutral",
				Destination: &cmd.category,
			},
			&cli.BoolFlag{
				Name:        "markdown",
				Usage:       "render the message as markdown instead of a JSON payload",
				Destination: &cmd.markdown,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ComposeCmd) run(_ context.Context, c *cli.Command) error {
	if cmd.message == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	step, err := composeStep(cmd.message, notify.Category(cmd.category), cmd.markdown)
	if err != nil {
		return err
	}

	n, err := appendStep(cmd.file, step)
	if err != nil {
		return err
	}

	log.Debug().Str("file", cmd.file).Int("steps", n).Msg("step appended")
	_, err = fmt.Fprintf(c.Root().Writer, "%s appended step %d to %s\n",
		styles.TextSuccessStyle.Render(styles.IconBullet), n, cmd.file)
	return err
}

func (cmd *ComposeCmd) runForm() error {
	options := []huh.Option[string]{huh.NewOption("none", "")}
	for _, cat := range notify.Categories() {
		options = append(options, huh.NewOption(string(cat), string(cat)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Message").
				Description("Text shown in the toast").
				Validate(validateMessage).
				Value(&cmd.message),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&cmd.category),
			huh.NewConfirm().
				Title("Render as markdown?").
				Value(&cmd.markdown),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func validateMessage(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("message cannot be empty")
	}
	return nil
}

// composeStep builds an add step. Plain messages become a {"message": ...}
// payload; markdown messages are stored as source and rendered on replay.
func composeStep(message string, category notify.Category, markdown bool) (tuinotify.Step, error) {
	if err := validateMessage(message); err != nil {
		return tuinotify.Step{}, err
	}
	if !category.IsValid() {
		return tuinotify.Step{}, fmt.Errorf("unknown category %q", category)
	}

	message = strings.TrimSpace(message)
	step := tuinotify.Step{Kind: tuinotify.KindAdd, Category: category}
	if markdown {
		step.Markdown = message
		return step, nil
	}

	content, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return tuinotify.Step{}, fmt.Errorf("encode content: %w", err)
	}
	step.Content = content
	return step, nil
}

// appendStep adds step to the script stored at path and returns the new
// number of steps. A missing file starts an empty script.
func appendStep(path string, step tuinotify.Step) (int, error) {
	var script tuinotify.Script

	existing, err := iojson.ReadFile[tuinotify.Script](path)
	switch {
	case err == nil:
		script = existing
	case errors.Is(err, os.ErrNotExist):
	default:
		return 0, fmt.Errorf("read script: %w", err)
	}

	script = append(script, step)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("write script: %w", err)
	}
	if err := saveScript(f, script); err != nil {
		return 0, err
	}
	return len(script), nil
}

// saveScript encodes script to w and closes it. A failed close is reported
// since the file may be incomplete.
func saveScript(w io.WriteCloser, script tuinotify.Script) error {
	if err := iojson.WriteWith(w, os.Stderr, script); err != nil {
		_ = w.Close()
		return fmt.Errorf("write script: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
