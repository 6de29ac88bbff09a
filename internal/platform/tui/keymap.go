package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycaster/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a":
		return core.ActionTurnLeft
	case "right", "d":
		return core.ActionTurnRight
	case "up", "w":
		return core.ActionAdvance
	case "down", "s":
		return core.ActionRetreat
	case "v":
		return core.ActionToggleRays
	case "p", " ":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}
	return MenuActionNone
}

// HoldTracker turns key presses into held signals. Terminals report presses
// and auto-repeats but never releases, so an action counts as held until
// hold has passed without another press of its key.
type HoldTracker struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHoldTracker creates a tracker that keeps each press held for hold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// opposite returns the action a press cancels: a new direction replaces the
// opposite one immediately instead of waiting for it to expire.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionTurnLeft:
		return core.ActionTurnRight
	case core.ActionTurnRight:
		return core.ActionTurnLeft
	case core.ActionAdvance:
		return core.ActionRetreat
	case core.ActionRetreat:
		return core.ActionAdvance
	default:
		return core.ActionNone
	}
}

// Press records a press (or auto-repeat) of a held action at now.
// One-shot actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.Held() {
		return
	}
	delete(h.until, opposite(a))
	h.until[a] = now.Add(h.hold)
}

// Held reports whether the action is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return f
}

// ReleaseAll drops every held action.
func (h *HoldTracker) ReleaseAll() {
	clear(h.until)
}
