package types

// Text actions
type AppendAction struct {
	Rune rune
}

func (a AppendAction) Type() string { return "append" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown"
}

func (a NavigateAction) Type() string { return "navigate" }

// Terminal actions
type AcceptAction struct{}

func (a AcceptAction) Type() string { return "accept" }

type CancelAction struct {
	Reason string // "escape", "interrupt", "qq"
}

func (a CancelAction) Type() string { return "cancel" }
