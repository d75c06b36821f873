package sliderule

// Session drives a Rule frame by frame without a window: it owns the
// queues for synthetic pointer input, screenshot requests and an optional
// scripted TestRunner. Calculator wraps a Session with real input.
type Session struct {
	Rule *Rule

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	testRunner      *TestRunner
	// dt is the frame time used for view transitions.
	dt float32
}

// NewSession wraps r. tps is the expected number of Update calls per
// second; zero assumes 60.
func NewSession(r *Rule, tps int) *Session {
	if tps <= 0 {
		tps = 60
	}
	return &Session{Rule: r, dt: 1 / float32(tps)}
}

// Update runs one frame: scripted steps, at most one injected pointer
// event, the animation callback and the zoom transition. It reports
// whether an injected event was consumed, in which case real input for the
// frame should be skipped.
func (s *Session) Update() bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	injected := s.processInjectedInput()
	s.Rule.Step()
	if s.Rule.View.Animating() {
		s.Rule.View.Update(s.dt)
		s.Rule.Render()
	}
	return injected
}

// Busy reports whether injected input or an animation is still pending.
func (s *Session) Busy() bool {
	return len(s.injectQueue) > 0 || s.Rule.Animating() || s.Rule.View.Animating()
}
