package display

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header    lipgloss.Style
	round     lipgloss.Style
	redCard   lipgloss.Style
	blackCard lipgloss.Style
	war       lipgloss.Style
	winner    lipgloss.Style
	draw      lipgloss.Style
	info      lipgloss.Style
}

// Styles are bound to a renderer so the colour profile follows the writer
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		round: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		redCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		blackCard: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true),
		war: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		winner: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
