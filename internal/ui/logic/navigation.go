package logic

// ReservedRows is the number of terminal rows above the match list:
// the prompt line and the status line.
const ReservedRows = 2

// Navigation directions
const (
	DirectionUp       = "up"
	DirectionDown     = "down"
	DirectionPageUp   = "pageup"
	DirectionPageDown = "pagedown"
)

// Frame is one resolved view of the match list
type Frame struct {
	Visible     []string // rows painted top to bottom
	Total       int      // number of matches
	Offset      int      // matches scrolled off the top
	Rows        int      // row capacity of the list area
	NeedsReflow bool     // offset ran past the end of the matches
}

// Selection returns the first visible match, if any
func (f Frame) Selection() (string, bool) {
	if len(f.Visible) == 0 {
		return "", false
	}
	return f.Visible[0], true
}

// VisibleRows returns the list capacity for a terminal of the given height
func VisibleRows(termHeight int) int {
	rows := termHeight - ReservedRows
	if rows < 0 {
		return 0
	}
	return rows
}

// Step returns the signed offset change for a navigation direction.
// Page steps use half of the full terminal height, not just the list area.
func Step(direction string, termHeight int) int {
	switch direction {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	case DirectionPageUp:
		return -(termHeight / 2)
	case DirectionPageDown:
		return termHeight / 2
	default:
		return 0
	}
}

// Navigate applies a navigation step to offset, floored at zero
func Navigate(offset int, direction string, termHeight int) int {
	offset += Step(direction, termHeight)
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Layout maps matches and an offset onto a window of rows
func Layout(matches MatchSet, offset, rows int) Frame {
	if offset < 0 {
		offset = 0
	}
	if rows < 0 {
		rows = 0
	}

	total := len(matches)
	start := offset
	if start > total {
		start = total
	}
	end := start + rows
	if end > total {
		end = total
	}

	return Frame{
		Visible:     matches[start:end],
		Total:       total,
		Offset:      offset,
		Rows:        rows,
		NeedsReflow: offset > 0 && total <= offset,
	}
}

// Resolve runs matching and layout, correcting an offset that scrolled past
// the last match. The correction moves the offset to the last match, which is
// always in range, so at most one extra pass is made.
func Resolve(match func() MatchSet, offset, rows int) (Frame, int) {
	if offset < 0 {
		offset = 0
	}

	frame := Layout(match(), offset, rows)
	if !frame.NeedsReflow {
		return frame, offset
	}

	offset = frame.Total - 1
	if offset < 0 {
		offset = 0
	}
	return Layout(match(), offset, rows), offset
}
