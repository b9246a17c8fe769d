package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/eventscout/pkg/api"
)

// Theme centralizes Lip Gloss styles for the dashboard UI.
type Theme struct {
	Header   lipgloss.Style
	Footer   FooterTheme
	Table    TableTheme
	Panel    PanelTheme
	Modal    ModalTheme
	Statuses map[api.Status]lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// TableTheme styles the event listing.
type TableTheme struct {
	Heading  lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
}

// PanelTheme styles the detail panel.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
}

// ModalTheme styles the centered confirm overlay.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI. Status colors match
// the web dashboard's badges.
func Default() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Table: TableTheme{
			Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
			Row:      lipgloss.NewStyle(),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Body:  lipgloss.NewStyle(),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Statuses: map[api.Status]lipgloss.Style{
			api.StatusNew:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			api.StatusUpdated:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			api.StatusUnchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			api.StatusImported:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
			api.StatusInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}

// Status renders a status with its badge color.
func (t Theme) Status(s api.Status) string {
	if style, ok := t.Statuses[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}
