package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionAdvance) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionAdvance)
	f.Set(ActionTurnLeft)
	if !f.Has(ActionAdvance) || !f.Has(ActionTurnLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionAdvance) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionAdvance) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRetreat) {
		t.Error("zero frame should report nothing held")
	}
	f.Set(ActionRetreat)
	if !f.Has(ActionRetreat) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionTurnRight, ActionRetreat)
	if !f.Has(ActionTurnRight) || !f.Has(ActionRetreat) || f.Has(ActionAdvance) {
		t.Errorf("FrameOf built wrong frame: %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionTurnLeft.String() != "TurnLeft" {
		t.Errorf("String() = %q", ActionTurnLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestActionHeld(t *testing.T) {
	held := []Action{ActionTurnLeft, ActionTurnRight, ActionAdvance, ActionRetreat}
	oneShot := []Action{ActionNone, ActionToggleRays, ActionPause, ActionRestart, ActionBack, ActionQuit}

	for _, a := range held {
		if !a.Held() {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range oneShot {
		if a.Held() {
			t.Errorf("%v should be one-shot", a)
		}
	}
}
