package sliderule

import "math"

// Ports receives the numbers the rule displays. The renderer writes both
// outputs on every frame; operations call Reject when an input is refused.
type Ports interface {
	SetPrimary(v float64)
	SetSecondary(v float64)
	Reject(err error)
}

// Readout is an in-memory Ports implementation.
type Readout struct {
	Primary   float64
	Secondary float64
	// Err is the last rejection. It is cleared by the next SetPrimary.
	Err error
}

func (r *Readout) SetPrimary(v float64) {
	r.Primary = v
	r.Err = nil
}

func (r *Readout) SetSecondary(v float64) {
	r.Secondary = v
}

// Reject marks the primary output as empty.
func (r *Readout) Reject(err error) {
	r.Primary = math.NaN()
	r.Err = err
}

// discardPorts drops every write.
type discardPorts struct{}

func (discardPorts) SetPrimary(float64)   {}
func (discardPorts) SetSecondary(float64) {}
func (discardPorts) Reject(error)         {}
