package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// StepMode selects how a Spinner advances.
type StepMode int

const (
	// FixedStep advances one step per frame regardless of frame time.
	FixedStep StepMode = iota
	// TimeScaled advances step*dt*60 per frame, matching FixedStep at 60 Hz.
	TimeScaled
)

func (m StepMode) String() string {
	if m == TimeScaled {
		return "time-scaled"
	}
	return "fixed-step"
}

// Spinner owns the rotation state of one animated object.
type Spinner struct {
	Mode     StepMode
	rotation Rotation
}

// NewSpinner returns a spinner at zero rotation.
func NewSpinner(mode StepMode) *Spinner {
	return &Spinner{Mode: mode}
}

// Rotation returns the current angles.
func (s *Spinner) Rotation() Rotation { return s.rotation }

// Step advances the rotation for one frame of duration dt and returns
// the new MVP for viewProj.
func (s *Spinner) Step(viewProj mgl32.Mat4, dt time.Duration) mgl32.Mat4 {
	switch s.Mode {
	case TimeScaled:
		s.rotation = s.rotation.AdvanceScaled(float32(dt.Seconds() * 60))
	default:
		s.rotation = s.rotation.Advance()
	}
	return MVP(viewProj, s.rotation)
}
