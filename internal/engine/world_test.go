package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/raycaster/internal/core"
)

var testTuning = Tuning{Speed: 0.025, TurnStep: math.Pi / 200, Border: 0.25}

var testStart = Player{Pos: core.V(1.5, 1.5), Angle: 3 * math.Pi / 2}

func mustWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(room(13), testStart, testTuning)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func TestNewWorldValidation(t *testing.T) {
	m := room(13)

	tests := []struct {
		name     string
		start    Player
		tuning   Tuning
		expected error
	}{
		{"zero speed", testStart, Tuning{Speed: 0, TurnStep: 0.01, Border: 0.25}, ErrSpeed},
		{"speed plus border too large", testStart, Tuning{Speed: 0.8, TurnStep: 0.01, Border: 0.25}, ErrSpeed},
		{"negative turn step", testStart, Tuning{Speed: 0.025, TurnStep: -1, Border: 0.25}, ErrTurnStep},
		{"bad border", testStart, Tuning{Speed: 0.025, TurnStep: 0.01, Border: 0}, ErrBorder},
		{"start in wall", Player{Pos: core.V(0.5, 0.5)}, testTuning, ErrStartBlocked},
		{"start outside map", Player{Pos: core.V(-3, 20)}, testTuning, ErrStartBlocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWorld(m, tc.start, tc.tuning)
			if !errors.Is(err, tc.expected) {
				t.Errorf("NewWorld() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestWorldAdvanceFromStart(t *testing.T) {
	w := mustWorld(t)

	w.Step(core.FrameOf(core.ActionAdvance))

	p := w.Player()
	if !p.Pos.ApproxEqual(core.V(1.5, 1.525), eps) {
		t.Errorf("position = %v, expected (1.5, 1.525)", p.Pos)
	}
	res, ok := w.LastResolution()
	if !ok || res.Outcome != Moved || !res.Mask.Empty() {
		t.Errorf("last resolution = %+v (ok %v), expected clean move", res, ok)
	}
}

func TestWorldTurning(t *testing.T) {
	w := mustWorld(t)

	w.Step(core.FrameOf(core.ActionTurnLeft))
	if got := w.Player().Angle; math.Abs(got-(testStart.Angle-testTuning.TurnStep)) > eps {
		t.Errorf("after left: angle = %g", got)
	}

	w.Step(core.FrameOf(core.ActionTurnRight))
	w.Step(core.FrameOf(core.ActionTurnRight))
	if got := w.Player().Angle; math.Abs(got-(testStart.Angle+testTuning.TurnStep)) > eps {
		t.Errorf("after two rights: angle = %g", got)
	}

	w.Step(core.FrameOf(core.ActionTurnLeft, core.ActionTurnRight))
	if got := w.Player().Angle; math.Abs(got-(testStart.Angle+testTuning.TurnStep)) > eps {
		t.Errorf("left and right together should cancel, angle = %g", got)
	}

	if _, ok := w.LastResolution(); ok {
		t.Error("turning alone should not resolve a move")
	}
}

func TestWorldTurnsBeforeMoving(t *testing.T) {
	w := mustWorld(t)

	w.Step(core.FrameOf(core.ActionTurnRight, core.ActionAdvance))

	expected := testStart.Pos.Add(Forward(testStart.Angle + testTuning.TurnStep).Scale(testTuning.Speed))
	if got := w.Player().Pos; !got.ApproxEqual(expected, eps) {
		t.Errorf("position = %v, expected %v", got, expected)
	}
}

func TestWorldAdvanceAndRetreatCancel(t *testing.T) {
	w := mustWorld(t)

	w.Step(core.FrameOf(core.ActionAdvance, core.ActionRetreat))

	if got := w.Player().Pos; !got.ApproxEqual(testStart.Pos, eps) {
		t.Errorf("position = %v, expected start", got)
	}
	if s := w.Stats(); s.Moves != 2 {
		t.Errorf("moves = %d, expected 2", s.Moves)
	}
}

func TestWorldRetreatIntoWall(t *testing.T) {
	w := mustWorld(t)

	// Facing south from the north-west corner, backing up heads north.
	for i := 0; i < 40; i++ {
		w.Step(core.FrameOf(core.ActionRetreat))
	}

	p := w.Player()
	if p.Pos.Y < 1.25-eps {
		t.Errorf("retreated through the wall: %v", p.Pos)
	}
	s := w.Stats()
	if s.Ticks != 40 {
		t.Errorf("ticks = %d, expected 40", s.Ticks)
	}
	if s.Moves+s.Slides+s.Blocked != 40 {
		t.Errorf("stats = %+v, expected 40 resolutions", s)
	}
	if s.Slides == 0 && s.Blocked == 0 {
		t.Errorf("stats = %+v, expected at least one wall contact", s)
	}
}

func TestWorldReset(t *testing.T) {
	w := mustWorld(t)

	for i := 0; i < 10; i++ {
		w.Step(core.FrameOf(core.ActionTurnLeft, core.ActionAdvance))
	}
	w.Reset()

	if w.Player() != testStart {
		t.Errorf("player = %+v, expected start %+v", w.Player(), testStart)
	}
	if w.Stats() != (Stats{}) {
		t.Errorf("stats = %+v, expected zero", w.Stats())
	}
	if _, ok := w.LastResolution(); ok {
		t.Error("last resolution should be cleared")
	}
}

func TestWorldDeterminism(t *testing.T) {
	script := []core.InputFrame{
		core.FrameOf(core.ActionAdvance),
		core.FrameOf(core.ActionTurnLeft, core.ActionAdvance),
		core.FrameOf(core.ActionTurnRight),
		core.FrameOf(core.ActionRetreat),
		core.NewInputFrame(),
	}

	run := func() (Player, Stats) {
		w := mustWorld(t)
		for i := 0; i < 1000; i++ {
			w.Step(script[i%len(script)])
		}
		return w.Player(), w.Stats()
	}

	p1, s1 := run()
	p2, s2 := run()
	if p1 != p2 || s1 != s2 {
		t.Errorf("runs diverged: %+v %+v vs %+v %+v", p1, s1, p2, s2)
	}
}
