package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Orbinite house orange for branding.
const orbiniteOrange = "#F4862B"

// ORBINITE ASCII art banner (filled block style).
var bannerArt = []string{
	" ██████╗ ██████╗ ██████╗ ██╗███╗   ██╗██╗████████╗███████╗",
	"██╔═══██╗██╔══██╗██╔══██╗██║████╗  ██║██║╚══██╔══╝██╔════╝",
	"██║   ██║██████╔╝██████╔╝██║██╔██╗ ██║██║   ██║   █████╗  ",
	"██║   ██║██╔══██╗██╔══██╗██║██║╚██╗██║██║   ██║   ██╔══╝  ",
	"╚██████╔╝██║  ██║██████╔╝██║██║ ╚████║██║   ██║   ███████╗",
	" ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝╚═╝  ╚═══╝╚═╝   ╚═╝   ╚══════╝",
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	Banner    lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	Tips      lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Separator lipgloss.Style
	StatusBar lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orbiniteOrange)),
		User:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Tips:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// RenderBanner returns the ASCII art banner as a styled string.
func (s Styles) RenderBanner() string {
	var b strings.Builder
	for _, line := range bannerArt {
		_, _ = b.WriteString(s.Banner.Render(line))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}

// welcomeTips contains getting started tips displayed under the banner.
var welcomeTips = []string{
	"Tips om te beginnen:",
	"  • Stel je vraag in gewone taal",
	"  • /reset begint een nieuw gesprek, /exit sluit af",
	"  • Ctrl+C annuleert, Ctrl+D sluit af",
	"  • Pijltjestoetsen bladeren door eerdere vragen",
}

// RenderWelcomeTips returns the styled welcome tips.
func (s Styles) RenderWelcomeTips() string {
	var b strings.Builder
	for _, tip := range welcomeTips {
		_, _ = b.WriteString(s.Tips.Render(tip))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}
