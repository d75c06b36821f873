package sliderule

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	A       float64 `json:"a,omitempty"`
	B       float64 `json:"b,omitempty"`
	Animate bool    `json:"animate,omitempty"`
	Radix   int     `json:"radix,omitempty"`
	Lock    bool    `json:"lock,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"multiply": true, "divide": true, "reset": true, "radix": true,
	"zoomIn": true, "zoomOut": true, "lock": true,
	"press": true, "move": true, "release": true, "drag": true,
	"wait": true, "screenshot": true,
}

// TestRunner plays a scripted sequence of gestures, pointer input and
// screenshots across frames. Attach it to a Session with SetTestRunner.
// A step only runs once injected input and animations from earlier steps
// have finished.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. Its steps advance from Session.Update.
func (s *Session) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// Errs returns the errors returned by gesture steps, in order.
func (r *TestRunner) Errs() []error {
	return r.errs
}

// step advances the runner by one frame.
func (r *TestRunner) step(s *Session) {
	if r.done {
		return
	}
	if s.Busy() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	rule := s.Rule

	var err error
	switch st.Action {
	case "multiply":
		_, err = rule.Multiply(st.A, st.B, st.Animate)
	case "divide":
		_, err = rule.Divide(st.A, st.B, st.Animate)
	case "reset":
		rule.Reset(st.Animate)
	case "radix":
		err = rule.SetRadix(st.Radix, st.Animate)
	case "zoomIn":
		rule.ZoomIn()
	case "zoomOut":
		rule.ZoomOut()
	case "lock":
		rule.SetLock(st.Lock)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err))
		warnf("test script: %v", r.errs[len(r.errs)-1])
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !s.Busy() {
		r.done = true
	}
}
