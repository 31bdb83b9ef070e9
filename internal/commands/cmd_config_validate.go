package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/config"
	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toasts config validate [options]",
				Description: "Validates the configuration file, checking the theme, toast sizing and keybinding conflicts.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validateResult struct {
	Valid    bool                       `json:"valid"`
	Path     string                     `json:"path"`
	Error    string                     `json:"error,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	result := validateResult{Valid: true, Path: cmd.flags.ConfigPath}
	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		result.Valid = false
		result.Error = err.Error()
	}
	result.Warnings = cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		writeValidateText(c.Root().Writer, result)
	}

	if !result.Valid {
		return errors.New("configuration is invalid")
	}
	return nil
}

func writeValidateText(w io.Writer, result validateResult) {
	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintln(w, styles.TextWarningStyle.Render(fmt.Sprintf("%s: %s", warn.Category, warn.Message)))
		if warn.Item != "" {
			_, _ = fmt.Fprintf(w, "  Item: %s\n", warn.Item)
		}
	}

	if result.Error != "" {
		_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(result.Error))
		return
	}

	_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("Configuration is valid"))
}
