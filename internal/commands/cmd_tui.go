package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/logging"
	"github.com/colonyops/toasts/internal/core/notify"
	"github.com/colonyops/toasts/internal/tui"
	tuinotify "github.com/colonyops/toasts/internal/tui/notify"
	"github.com/colonyops/toasts/pkg/iojson"
)

type TuiCmd struct {
	flags      *Flags
	build      tui.BuildInfo
	scriptPath string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "script",
			Usage:       "JSON command script replayed into the toast stack on startup",
			Sources:     cli.EnvVars("TOASTS_SCRIPT"),
			Destination: &cmd.scriptPath,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "tui")

	var script tuinotify.Script
	if cmd.scriptPath != "" {
		ctx = logging.WithScript(ctx, cmd.scriptPath)
		s, err := iojson.ReadFile[tuinotify.Script](cmd.scriptPath)
		if err != nil {
			return fmt.Errorf("read script %s: %w", cmd.scriptPath, err)
		}
		script = s
	}

	var warnings []string
	for _, w := range cmd.flags.Config.Warnings() {
		warnings = append(warnings, w.Message)
	}

	// One store per program run.
	store := notify.NewStore(notify.WithLogger(logging.Component("notify")))
	ctx = notify.WithStore(ctx, store)

	m := tui.New(ctx, cmd.flags.Config, tui.Opts{
		BuildInfo: cmd.build,
		Script:    script,
		Warnings:  warnings,
	})
	defer m.Close()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().Ctx(ctx).Int("remaining", store.Len()).Msg("tui exited")
	return nil
}
