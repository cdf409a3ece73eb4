package types

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Wildcard is appended to the search text when space is pressed
const Wildcard = '*'
