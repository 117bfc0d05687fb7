package core

// heldActions are the movement actions tracked by HeldInput.
var heldActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// HeldInput turns per-tick input frames into held-key state.
//
// Terminals only deliver key presses (plus autorepeat), never releases, so a
// movement key stays down until no new press arrives for holdTicks ticks.
// With holdTicks == 1 a key is down exactly on the ticks it appears.
type HeldInput struct {
	holdTicks int
	remaining map[Action]int
	prev      map[Action]bool
	cur       map[Action]bool
}

// NewHeldInput creates a tracker. holdTicks below 1 is treated as 1.
func NewHeldInput(holdTicks int) *HeldInput {
	h := &HeldInput{holdTicks: max(holdTicks, 1)}
	h.Reset()
	return h
}

// Reset releases every key.
func (h *HeldInput) Reset() {
	h.remaining = make(map[Action]int, len(heldActions))
	h.prev = make(map[Action]bool, len(heldActions))
	h.cur = make(map[Action]bool, len(heldActions))
}

// Update advances the tracker by one tick using the frame's actions.
func (h *HeldInput) Update(f InputFrame) {
	for _, a := range heldActions {
		if f.Has(a) {
			h.remaining[a] = h.holdTicks
		}
		h.prev[a] = h.cur[a]
		h.cur[a] = h.remaining[a] > 0
		if h.remaining[a] > 0 {
			h.remaining[a]--
		}
	}
}

// Down reports whether the action is held this tick.
func (h *HeldInput) Down(a Action) bool {
	return h.cur[a]
}

// Pressed reports whether the action went down this tick.
func (h *HeldInput) Pressed(a Action) bool {
	return h.cur[a] && !h.prev[a]
}

// Released reports whether the action went up this tick.
func (h *HeldInput) Released(a Action) bool {
	return !h.cur[a] && h.prev[a]
}
