package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionFire           // Space - fire the cannon
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldInput turns per-tick key presses into held key state.
//
// Terminals deliver key presses (with auto-repeat), never key releases, so a
// direction is considered held for a fixed number of ticks after its last
// press. Pressing a direction releases its opposite immediately.
type HeldInput struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldInput creates a latch that holds directions for holdTicks ticks.
// A non-positive holdTicks holds a press for exactly one tick.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldInput{
		holdTicks: holdTicks,
		remaining: make(map[Action]int, 4),
	}
}

var opposites = map[Action]Action{
	ActionLeft:  ActionRight,
	ActionRight: ActionLeft,
	ActionUp:    ActionDown,
	ActionDown:  ActionUp,
}

// Observe advances the latch by one tick using the frame's presses.
func (h *HeldInput) Observe(f InputFrame) {
	for a, opp := range opposites {
		if f.Has(a) {
			h.remaining[a] = h.holdTicks
			if !f.Has(opp) {
				h.remaining[opp] = 0
			}
			continue
		}
		if h.remaining[a] > 0 {
			h.remaining[a]--
		}
	}
}

// Held reports whether a direction is currently held.
func (h *HeldInput) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Axis returns -1, 0 or +1 for a pair of opposing directions.
func (h *HeldInput) Axis(neg, pos Action) int {
	axis := 0
	if h.Held(neg) {
		axis--
	}
	if h.Held(pos) {
		axis++
	}
	return axis
}

// Reset releases every held direction.
func (h *HeldInput) Reset() {
	clear(h.remaining)
}
