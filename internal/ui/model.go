package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tpick/internal/ui/input"
	inputtypes "tpick/internal/ui/input/types"
	"tpick/internal/ui/logic"
	"tpick/internal/ui/state"
	"tpick/internal/ui/views"
)

// DefaultPrompt is shown in front of the search text
const DefaultPrompt = "pattern: "

// Options configure a picking session. They are fixed for its lifetime.
type Options struct {
	Candidates []string
	Prefix     string
	Suffix     string
	Prompt     string
	QuitOnQQ   bool

	// Renderer draws the styles; it should target the session terminal
	Renderer *lipgloss.Renderer
}

// Model represents the UI state
type Model struct {
	opts  Options
	state *state.AppState // session state, only touched from Update

	help         help.Model
	matcher      *logic.Matcher
	inputHandler *input.Handler
	renderer     *views.Renderer
}

// NewModel creates a new UI model and resolves the first frame
func NewModel(opts Options) *Model {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	styles := views.NewStyles(opts.Renderer)

	m := &Model{
		opts:         opts,
		state:        state.NewAppState(opts.Candidates),
		help:         help.New(),
		matcher:      logic.NewMatcher(),
		inputHandler: input.New(opts.QuitOnQQ),
		renderer:     views.NewRenderer(styles),
	}
	m.help.Styles = styles.HelpStyles()
	m.refresh()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages. Each message is processed to completion: state
// change, matching, viewport clamp. The view is drawn afterwards.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.refresh()

	case tea.KeyMsg:
		for _, action := range m.inputHandler.HandleKey(msg) {
			m.processAction(action)
			if m.state.Done() {
				log.Printf("session %s", m.state.Outcome)
				return m, tea.Quit
			}
		}
		m.refresh()
	}

	return m, nil
}

// processAction applies one action to the session state
func (m *Model) processAction(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.AppendAction:
		m.state.Search.Append(a.Rune)

	case inputtypes.BackspaceAction:
		m.state.Search.RemoveLast()

	case inputtypes.NavigateAction:
		m.state.Offset = logic.Navigate(m.state.Offset, a.Direction, m.state.Height)

	case inputtypes.AcceptAction:
		m.state.Accept()

	case inputtypes.CancelAction:
		log.Printf("cancelled: %s", a.Reason)
		m.state.Cancel()
	}
}

// refresh rebuilds the pattern, matches the candidates and clamps the offset
func (m *Model) refresh() {
	pattern := logic.BuildPattern(m.opts.Prefix, m.state.Search.String(), m.opts.Suffix)
	match := func() logic.MatchSet {
		return m.matcher.Match(pattern, m.state.Candidates)
	}

	frame, offset := logic.Resolve(match, m.state.Offset, logic.VisibleRows(m.state.Height))
	if offset != m.state.Offset {
		log.Printf("offset %d past %d matches, reflowed to %d", m.state.Offset, frame.Total, offset)
	}
	m.state.Offset = offset
	m.state.Frame = frame
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Done() {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:      m.state.Width,
		Height:     m.state.Height,
		Prompt:     m.opts.Prompt,
		Search:     m.state.Search.String(),
		Frame:      m.state.Frame,
		Candidates: len(m.state.Candidates),
		Help:       m.help.ShortHelpView(m.inputHandler.Keys().ShortHelp()),
	})
}

// Result reports the selection once the session has ended
func (m *Model) Result() Result {
	return Result{
		Selection: m.state.Selection,
		Accepted:  m.state.Outcome == state.OutcomeAccepted,
	}
}

// Result is the outcome of a picking session
type Result struct {
	Selection string
	Accepted  bool
}
