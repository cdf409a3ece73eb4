package views

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt    lipgloss.Style
	Search    lipgloss.Style
	Status    lipgloss.Style
	Count     lipgloss.Style
	Match     lipgloss.Style
	Highlight lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpSep   lipgloss.Style
}

// NewStyles creates styles bound to the given renderer. The renderer must
// point at the terminal the UI draws on, which is not standard output.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Prompt:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Search:    r.NewStyle(),
		Status:    r.NewStyle().Faint(true),
		Count:     r.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Match:     r.NewStyle(),
		Highlight: r.NewStyle().Reverse(true),
		HelpKey:   r.NewStyle().Foreground(lipgloss.Color("241")),
		HelpDesc:  r.NewStyle().Foreground(lipgloss.Color("239")),
		HelpSep:   r.NewStyle().Foreground(lipgloss.Color("237")),
	}
}

// HelpStyles returns help.Styles drawn with the same renderer
func (s *Styles) HelpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       s.HelpSep,
		ShortKey:       s.HelpKey,
		ShortDesc:      s.HelpDesc,
		ShortSeparator: s.HelpSep,
		FullKey:        s.HelpKey,
		FullDesc:       s.HelpDesc,
		FullSeparator:  s.HelpSep,
	}
}
