package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem/internal/deck"
)

type styles struct {
	Header   lipgloss.Style
	Street   lipgloss.Style
	HandInfo lipgloss.Style
	Actions  lipgloss.Style
	Prompt   lipgloss.Style
	RedCard  lipgloss.Style
	Card     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Street: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		HandInfo: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Actions: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Card: r.NewStyle().
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// cards renders cards as "[A♠ K♥]" with red suits colored
func (s styles) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = s.RedCard.Render(c.String())
		} else {
			parts[i] = s.Card.Render(c.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
