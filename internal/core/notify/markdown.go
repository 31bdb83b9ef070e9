package notify

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/toasts/internal/core/styles"
)

// Markdown returns a fragment that renders src as terminal markdown wrapped
// at width columns. Rendering happens each time the fragment is invoked so
// theme changes are picked up. On renderer failure the raw source is shown.
func Markdown(src string, width int) Content {
	return Fragment(func() string {
		style := styles.GlamourStyle()
		noMargin := uint(0)
		style.Document.Margin = &noMargin

		renderer, err := glamour.NewTermRenderer(
			glamour.WithStyles(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
			return src
		}

		out, err := renderer.Render(src)
		if err != nil {
			log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
			return src
		}
		return strings.TrimSpace(out)
	})
}
