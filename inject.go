package sliderule

// syntheticPointerEvent is an injected pointer sample. Coordinates are in
// surface pixels, matching what a screenshot shows, and are converted to
// local coordinates through the view like real input.
type syntheticPointerEvent struct {
	kind             PointerKind
	screenX, screenY float64
}

// InjectPress queues a pointer press at the given surface coordinates. The
// event is consumed on the next Update.
func (s *Session) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerPress, screenX: x, screenY: y})
}

// InjectMove queues a pointer move with the button held. Use it between
// InjectPress and InjectRelease.
func (s *Session) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerMove, screenX: x, screenY: y})
}

// InjectRelease queues a pointer release.
func (s *Session) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerRelease, screenX: x, screenY: y})
}

// InjectDrag queues a press at (fromX, fromY), frames-2 moves along the
// straight line and a release at (toX, toY). Minimum frames is 2.
//
// A straight line through the pointer angle sweeps unevenly; keep the
// per-frame angle change under the controller's MaxStep or samples are
// dropped.
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the queue and feeds it to the
// rule. It returns true if an event was consumed.
func (s *Session) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.Rule.HandleScreenPointer(evt.kind, SourceMouse, evt.screenX, evt.screenY)
	return true
}
