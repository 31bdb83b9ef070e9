package commands

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/pkg/iojson"
)

type ThemesCmd struct {
	flags  *Flags
	format string
}

func NewThemesCmd(flags *Flags) *ThemesCmd {
	return &ThemesCmd{flags: flags}
}

func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List built-in color themes",
		UsageText: "toasts themes [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, jsonl)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

type themeInfo struct {
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

func (cmd *ThemesCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer
	current := cmd.flags.Config.TUI.Theme

	for _, name := range styles.ThemeNames() {
		if cmd.format == "jsonl" {
			if err := iojson.WriteLine(out, themeInfo{Name: name, Current: name == current}); err != nil {
				return err
			}
			continue
		}

		marker := " "
		if name == current {
			marker = styles.IconBullet
		}
		palette, _ := styles.GetPalette(name)
		if _, err := fmt.Fprintf(out, "%s %-12s %s\n", marker, name, swatch(palette)); err != nil {
			return err
		}
	}
	return nil
}

// swatch renders one block per semantic color of p.
func swatch(p styles.Palette) string {
	var b strings.Builder
	for _, c := range []color.Color{p.Primary, p.Secondary, p.Success, p.Warning, p.Error, p.Muted} {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("██"))
	}
	return b.String()
}
