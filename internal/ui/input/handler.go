package input

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tpick/internal/ui/input/types"
	"tpick/internal/ui/logic"
)

// quitRune is the key that quits when pressed twice in a row
const quitRune = 'q'

// Handler turns key presses into actions for the editing state
type Handler struct {
	keys     KeyMap
	quitOnQQ bool
	qCount   int // consecutive 'q' presses
}

// New creates a handler. quitOnQQ enables the double-q quit shortcut.
func New(quitOnQQ bool) *Handler {
	return &Handler{
		keys:     DefaultKeyMap(),
		quitOnQQ: quitOnQQ,
	}
}

// Keys returns the key bindings, for help rendering
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key message. A nil result means the key changes
// nothing; the caller still re-renders.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	if h.quitOnQQ {
		if isQuitRune(msg) {
			h.qCount++
			if h.qCount >= 2 {
				h.qCount = 0
				return []types.Action{types.CancelAction{Reason: "qq"}}
			}
		} else {
			h.qCount = 0
		}
	}

	switch {
	case key.Matches(msg, h.keys.Cancel):
		reason := "escape"
		if msg.Type == tea.KeyCtrlC {
			reason = "interrupt"
		}
		return []types.Action{types.CancelAction{Reason: reason}}

	case key.Matches(msg, h.keys.Accept):
		return []types.Action{types.AcceptAction{}}

	case key.Matches(msg, h.keys.Backspace):
		return []types.Action{types.BackspaceAction{}}

	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionUp}}

	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionDown}}

	case key.Matches(msg, h.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionPageUp}}

	case key.Matches(msg, h.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionPageDown}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []types.Action{types.AppendAction{Rune: types.Wildcard}}

	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		// Pasted text arrives as several runes in one message
		var actions []types.Action
		for _, r := range msg.Runes {
			if r == ' ' {
				r = types.Wildcard
			}
			if isSearchRune(r) {
				actions = append(actions, types.AppendAction{Rune: r})
			}
		}
		return actions
	}

	return nil
}

func isQuitRune(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste &&
		len(msg.Runes) == 1 && msg.Runes[0] == quitRune
}

// isSearchRune reports whether r can be typed into the search text:
// letters, digits, punctuation and symbols.
func isSearchRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.IsPunct(r) || unicode.IsSymbol(r)
}
