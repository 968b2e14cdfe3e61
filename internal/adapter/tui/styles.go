package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8a93a3", Dark: "#5c6b82"}
	colorDanger  = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Styles groups every style the wizard draws with.
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Step     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	NavOn    lipgloss.Style
	NavOff   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		App:      lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Step:     lipgloss.NewStyle().Foreground(colorMuted),
		Label:    lipgloss.NewStyle().Width(14).Foreground(colorMuted),
		Focused:  lipgloss.NewStyle().Width(14).Bold(true).Foreground(colorPrimary),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		NavOn:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		NavOff: lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true),
		Notice: lipgloss.NewStyle().Foreground(colorInfo),
		Error:  lipgloss.NewStyle().Foreground(colorDanger),
	}
}
