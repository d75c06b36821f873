// Package sliderule is an interactive circular slide rule for [Ebitengine].
//
// A rule is two concentric logarithmic scales. The outer scale carries the
// multiplicand and the result; the inner scale carries the second operand.
// Each scale is rotated so that a value v sits at the top reference mark
// when its rotation is -2π·log_R(v), R being the radix. Multiplication and
// division are done the way a physical rule does them: by turning the
// rings relative to each other and reading the outer scale.
//
// # Quick start
//
// [Run] opens a window with a keyboard and mouse driven rule:
//
//	err := sliderule.Run(sliderule.DefaultConfig(), sliderule.DefaultRunConfig())
//
// For full control build a [Rule] over any [Surface] and drive it yourself.
// [Recorder] is a headless surface, handy for tests and tools:
//
//	rec := sliderule.NewRecorder(1000, 1000)
//	out := &sliderule.Readout{}
//	rule, _ := sliderule.NewRule(sliderule.DefaultConfig(), rec, out)
//	rule.Multiply(2, 3, false)
//	fmt.Println(out.Primary) // 6
//
// # Animation
//
// Animated gestures build a [Plan] of keyframes and play one keyframe per
// display frame through [Rule.Frames]. Call [Rule.Step] (or
// [FrameQueue.RunFrame]) once per frame. A new gesture, a drag or
// [Rule.Reset] supersedes whatever plan is playing.
//
// # Dragging
//
// Pointer input goes through [Rule.HandlePointer] in local coordinates or
// [Rule.HandleScreenPointer] in surface pixels. A press on the inner ring
// drags it, a press on the outer ring drags that one, and with
// [Rule.SetLock] both turn together. The central peg is a dead zone.
//
// # Zoom
//
// [Rule.ZoomIn] adds a subdivision layer of ticks around the value at the
// reference mark and doubles the [View] scale, anchored on the outer
// reference point so the reading stays under the guide.
//
// # Scripts and screenshots
//
// A [Session] runs a rule frame by frame without a window. Attach a
// [TestRunner] loaded from JSON with [LoadTestScript] to replay gestures,
// pointer drags and screenshots:
//
//	{"steps": [
//	  {"action": "multiply", "a": 2, "b": 3, "animate": true},
//	  {"action": "screenshot", "label": "two-times-three"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package sliderule
