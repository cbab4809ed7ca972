package selection

import (
	"log/slog"
	"strings"
)

// ToolState enumerates the states of the selection tool.
type ToolState int

const (
	StateActive ToolState = iota
	StateInactive
)

func (s ToolState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// ToggleListener is called on each successful state transition.
type ToggleListener func(prev, next ToolState)

// KeyMap names the keys that switch the tool off and on.
type KeyMap struct {
	Deactivate []string
	Activate   []string
}

// DefaultKeyMap mirrors the usual pan/zoom convention: q switches the
// selector off so toolbar tools can be used, a switches it back on.
func DefaultKeyMap() KeyMap {
	return KeyMap{Deactivate: []string{"q", "Q"}, Activate: []string{"a", "A"}}
}

// Toggle enables and disables the active selection tool based on key
// identity. It starts Active and has no terminal state. Not safe for
// concurrent use; callers drive it from the UI event loop.
type Toggle struct {
	state     ToolState
	keys      KeyMap
	logger    *slog.Logger
	listeners []ToggleListener
}

// NewToggle returns a controller in StateActive. An empty key map falls back
// to DefaultKeyMap.
func NewToggle(keys KeyMap, logger *slog.Logger) *Toggle {
	if len(keys.Activate) == 0 && len(keys.Deactivate) == 0 {
		keys = DefaultKeyMap()
	}
	return &Toggle{state: StateActive, keys: keys, logger: logger}
}

// AddListener registers l for future transitions.
func (t *Toggle) AddListener(l ToggleListener) {
	if t == nil || l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// Current returns the current state.
func (t *Toggle) Current() ToolState {
	if t == nil {
		return StateInactive
	}
	return t.state
}

// Active reports whether the selection tool accepts input.
func (t *Toggle) Active() bool { return t.Current() == StateActive }

// HandleKey applies a key press. Keys that match neither list, or that match
// the current state, are no-ops. It reports whether a transition happened.
func (t *Toggle) HandleKey(key string) bool {
	if t == nil {
		return false
	}
	switch {
	case t.state == StateActive && contains(t.keys.Deactivate, key):
		return t.transition(StateInactive)
	case t.state == StateInactive && contains(t.keys.Activate, key):
		return t.transition(StateActive)
	}
	return false
}

// SetActive forces the state, as a toolbar button would.
func (t *Toggle) SetActive(active bool) bool {
	if t == nil {
		return false
	}
	if active {
		return t.transition(StateActive)
	}
	return t.transition(StateInactive)
}

func (t *Toggle) transition(next ToolState) bool {
	prev := t.state
	if prev == next {
		return false
	}
	t.state = next
	if t.logger != nil {
		t.logger.Debug("selector toggled", "from", prev.String(), "to", next.String())
	}
	for _, l := range t.listeners {
		l(prev, next)
	}
	return true
}

func contains(keys []string, key string) bool {
	key = strings.TrimSpace(key)
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
