package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdown styles model replies for the terminal. The glamour renderer is
// built lazily on first use and rebuilt when the requested width changes,
// so a resize costs nothing until the next repaint actually renders a
// reply.
type markdown struct {
	renderer *glamour.TermRenderer
	width    int
}

// render returns text styled at the given width, or the raw input when
// glamour is unavailable. A width of zero or less renders at 80 columns.
func (m *markdown) render(text string, width int) string {
	if width <= 0 {
		width = 80
	}

	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Detect light/dark terminal
			glamour.WithWordWrap(width),
		)
		if err != nil {
			// Plain text beats no text.
			return text
		}
		m.renderer = r
		m.width = width
	}

	rendered, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSuffix(rendered, "\n")
}
