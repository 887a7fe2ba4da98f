package tui

import "github.com/vovakirdan/space-shooter/internal/core"

// Default hold windows in ticks. The first press has to outlast the
// terminal's auto-repeat delay (usually 250-500ms); after that, repeats
// arrive every few ticks.
const (
	DefaultFirstHold  = 30
	DefaultRepeatHold = 6
)

// HoldTracker turns key presses into held key state. Terminals only report
// presses (and auto-repeats), never releases, so an action counts as held
// until its window expires without another press.
type HoldTracker struct {
	first  int
	repeat int
	until  map[core.Action]int
}

// NewHoldTracker creates a tracker with the given windows in ticks.
func NewHoldTracker(first, repeat int) *HoldTracker {
	if first < 1 {
		first = DefaultFirstHold
	}
	if repeat < 1 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{first: first, repeat: repeat, until: make(map[core.Action]int)}
}

// Press records a press of a at tick now. Pressing a direction releases
// the opposite one.
func (h *HoldTracker) Press(a core.Action, now int) {
	window := h.first
	if h.Held(a, now) {
		window = h.repeat
	}
	h.until[a] = now + window
	if opp, ok := opposite(a); ok {
		delete(h.until, opp)
	}
}

// Held reports whether a is still held at tick now.
func (h *HoldTracker) Held(a core.Action, now int) bool {
	t, ok := h.until[a]
	return ok && now < t
}

// Fill sets every action held at tick now on frame.
func (h *HoldTracker) Fill(frame *core.InputFrame, now int) {
	for a, t := range h.until {
		if now < t {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	default:
		return core.ActionNone, false
	}
}
