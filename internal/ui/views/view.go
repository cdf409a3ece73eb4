package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tpick/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Prompt     string
	Search     string
	Frame      logic.Frame
	Candidates int    // size of the candidate list
	Help       string // rendered key help for the status line
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view: prompt and search echo, status line,
// then the visible matches with the selection highlighted. It never paints
// more rows than the terminal has.
func (r *Renderer) Render(state ViewState) string {
	if state.Height <= 0 {
		return ""
	}

	lines := make([]string, 0, state.Height)
	lines = append(lines, r.renderPrompt(state))

	if state.Height > 1 {
		lines = append(lines, r.renderStatus(state))
	}

	for i, match := range state.Frame.Visible {
		if len(lines) >= state.Height {
			break
		}
		text := r.fit(sanitize(match), state.Width)
		if i == 0 {
			lines = append(lines, r.styles.Highlight.Render(text))
		} else {
			lines = append(lines, r.styles.Match.Render(text))
		}
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderPrompt(state ViewState) string {
	prompt := r.fit(state.Prompt, state.Width)
	search := sanitize(state.Search)
	if state.Width > 0 {
		// keep the tail of a long search visible, the end is where typing happens
		room := state.Width - lipgloss.Width(prompt)
		for search != "" && ansi.StringWidth(search) > room {
			_, size := utf8.DecodeRuneInString(search)
			search = search[size:]
		}
	}
	return r.styles.Prompt.Render(prompt) + r.styles.Search.Render(search)
}

func (r *Renderer) renderStatus(state ViewState) string {
	count := fmt.Sprintf("%d/%d", state.Frame.Total, state.Candidates)
	if state.Frame.Offset > 0 {
		count = fmt.Sprintf("%s +%d", count, state.Frame.Offset)
	}
	line := r.styles.Count.Render(count)
	if state.Help != "" {
		line += r.styles.Status.Render("  ") + state.Help
	}
	if state.Width > 0 && lipgloss.Width(line) > state.Width {
		line = ansi.Truncate(line, state.Width, "")
	}
	return line
}

// fit truncates s to the terminal width
func (r *Renderer) fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// sanitize replaces control characters, which would corrupt the screen
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return '?'
		case r >= 0x80 && r < 0xa0:
			return '?'
		}
		return r
	}, s)
}
