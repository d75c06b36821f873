package sliderule

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "multiply", "a": 2, "b": 3, "animate": true},
			{"action": "drag", "fromX": 600, "fromY": 500, "toX": 500, "toY": 600, "frames": 12},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-drag"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if s := runner.steps[0]; s.Action != "multiply" || s.A != 2 || s.B != 3 || !s.Animate {
		t.Errorf("step 0 mismatch: %+v", s)
	}
	if s := runner.steps[1]; s.FromX != 600 || s.ToY != 600 || s.Frames != 12 {
		t.Errorf("step 1 mismatch: %+v", s)
	}
	if s := runner.steps[3]; s.Label != "after-drag" {
		t.Errorf("step 3 mismatch: %+v", s)
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("expected ErrEmptyScript, got %v", err)
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil || !strings.Contains(err.Error(), "click") {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func newTestSession(t *testing.T, script string) *Session {
	t.Helper()
	r, _, _ := newTestRule(t)
	s := NewSession(r, 60)
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s.SetTestRunner(runner)
	return s
}

// runScript updates the session until its runner is done.
func runScript(t *testing.T, s *Session) int {
	t.Helper()
	for i := 1; i <= maxTestFrames; i++ {
		s.Update()
		if s.testRunner.Done() {
			return i
		}
	}
	t.Fatal("script did not finish")
	return 0
}

func TestRunnerMultiplyAnimated(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "multiply", "a": 1.5, "b": 4, "animate": true},
		{"action": "screenshot", "label": "six"}
	]}`)
	runScript(t, s)
	assertNear(t, "outer value", s.Rule.State.Outer.Value(), 6)
	labels := s.takeScreenshots()
	if len(labels) != 1 || labels[0] != "six" {
		t.Errorf("screenshots = %v, want [six]", labels)
	}
	if len(s.testRunner.Errs()) != 0 {
		t.Errorf("errors: %v", s.testRunner.Errs())
	}
}

func TestRunnerWaitsForAnimation(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "multiply", "a": 2, "b": 3, "animate": true},
		{"action": "reset"}
	]}`)
	s.Update()
	if !s.Rule.Animating() {
		t.Fatal("multiply should be animating")
	}
	runScript(t, s)
	if s.Rule.State.Rotations() != (Keyframe{}) {
		t.Errorf("reset ran before multiply finished: %+v", s.Rule.State.Rotations())
	}
}

func TestRunnerDrag(t *testing.T) {
	// Local (100, 0) to (0, 100) sweeps the inner ring a quarter turn.
	s := newTestSession(t, `{"steps": [
		{"action": "drag", "fromX": 600, "fromY": 500, "toX": 500, "toY": 600, "frames": 20}
	]}`)
	runScript(t, s)
	assertNear(t, "inner rotation", s.Rule.State.Inner.Rotation, math.Pi/2)
	assertNear(t, "outer rotation", s.Rule.State.Outer.Rotation, 0)
	if s.Rule.Dragging() {
		t.Error("drag should end with the release")
	}
}

func TestRunnerPointerSteps(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "lock", "lock": true},
		{"action": "press", "x": 500, "y": 280},
		{"action": "move", "x": 510, "y": 280},
		{"action": "release", "x": 520, "y": 280}
	]}`)
	runScript(t, s)
	rot := s.Rule.State.Rotations()
	if rot.Outer <= 0 || rot.Outer != rot.Inner {
		t.Errorf("locked drag rotations = %+v, want equal and positive", rot)
	}
}

func TestRunnerRadixAndZoom(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "multiply", "a": 2, "b": 3},
		{"action": "radix", "radix": 8, "animate": true},
		{"action": "zoomIn"},
		{"action": "zoomIn"},
		{"action": "zoomOut"}
	]}`)
	runScript(t, s)
	if s.Rule.State.Radix() != 8 {
		t.Errorf("radix = %d, want 8", s.Rule.State.Radix())
	}
	assertNear(t, "outer value", s.Rule.State.Outer.Value(), 6)
	if s.Rule.State.Zoom != 1 {
		t.Errorf("zoom = %d, want 1", s.Rule.State.Zoom)
	}
}

func TestRunnerZoomTransition(t *testing.T) {
	r, _, _ := newTestRule(t)
	r.View.Duration = 0.25
	s := NewSession(r, 60)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "zoomIn"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	frames := runScript(t, s)
	if frames < 15 {
		t.Errorf("finished after %d frames, want the transition to be waited for", frames)
	}
	assertNear(t, "view scale", r.View.CurrentScale(), 2)
}

func TestRunnerRecordsErrors(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "multiply", "a": 0, "b": 3},
		{"action": "radix", "radix": 99},
		{"action": "divide", "a": 10, "b": 4}
	]}`)
	runScript(t, s)
	errs := s.testRunner.Errs()
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want 2", errs)
	}
	if !errors.Is(errs[0], ErrInvalidOperand) || !errors.Is(errs[1], ErrInvalidRadix) {
		t.Errorf("unexpected errors: %v", errs)
	}
	assertNear(t, "outer value", s.Rule.State.Outer.Value(), 2.5)
}

func TestRunnerWait(t *testing.T) {
	s := newTestSession(t, `{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "screenshot", "label": "late"}
	]}`)
	for range 5 {
		s.Update()
	}
	if len(s.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before the wait elapsed")
	}
	runScript(t, s)
	if len(s.screenshotQueue) != 1 {
		t.Errorf("screenshot queue = %v", s.screenshotQueue)
	}
}

// --- Injection ---

func TestInjectDragQueue(t *testing.T) {
	r, _, _ := newTestRule(t)
	s := NewSession(r, 60)
	s.InjectDrag(600, 500, 500, 600, 5)
	if len(s.injectQueue) != 5 {
		t.Fatalf("queued %d events, want 5", len(s.injectQueue))
	}
	if s.injectQueue[0].kind != PointerPress || s.injectQueue[4].kind != PointerRelease {
		t.Error("drag should start with a press and end with a release")
	}
	for i := 1; i <= 5; i++ {
		if !s.Update() {
			t.Fatalf("frame %d did not consume an event", i)
		}
	}
	if s.Update() {
		t.Error("empty queue reported an injected event")
	}
	if s.Busy() {
		t.Error("session still busy")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	r, _, _ := newTestRule(t)
	s := NewSession(r, 60)
	s.InjectDrag(0, 0, 10, 10, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("queued %d events, want press and release", len(s.injectQueue))
	}
}
