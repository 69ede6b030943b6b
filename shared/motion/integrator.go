package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/slipstep/shared/gamemath"
	"github.com/automoto/slipstep/shared/surface"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidDeltaTime = errors.New("motion: delta time must be positive and finite")

// Input is the raw intent for one tick.
type Input struct {
	MoveAxisX   float64
	JumpPressed bool
}

// AxisFromKeys maps held left/right keys to an axis. Right wins when both
// are held.
func AxisFromKeys(left, right bool) float64 {
	switch {
	case right:
		return 1
	case left:
		return -1
	default:
		return 0
	}
}

// Contact is what the host's collision pass observed after the previous
// step. Surface is the region under the character, if any.
type Contact struct {
	Grounded bool
	Surface  *surface.Surface
}

// Result is handed back to the host for position resolution.
type Result struct {
	Velocity mgl64.Vec2
	CanJump  bool
	Phase    Phase

	// DeltaTime is the delta actually integrated, after clamping.
	DeltaTime float64

	Jumped       bool
	Landed       bool
	DeltaClamped bool
}

// Step advances the state by dt. An invalid dt leaves the state untouched.
func (s *State) Step(dt float64, in Input, c Contact) (Result, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidDeltaTime, dt)
	}
	dt, clamped := gamemath.ClampDelta(dt, s.tuning.MaxDeltaTime)

	res := Result{DeltaTime: dt, DeltaClamped: clamped}
	res.Landed = s.transition(c.Grounded)

	if s.phase == Airborne {
		s.velocity[1] += s.tuning.Gravity * dt
	} else {
		s.velocity[1] = 0
		if s.canJump && in.JumpPressed {
			s.velocity[1] = s.tuning.JumpImpulse
			s.canJump = false
			res.Jumped = true
		}
	}

	s.velocity[0] = gamemath.AxisSign(in.MoveAxisX) * s.tuning.Speed.X()

	res.Velocity = s.velocity
	if c.Surface != nil && c.Surface.IsColliding() && c.Surface.HasEffect() {
		res.Velocity = c.Surface.ApplyEffect(s.velocity)
	}
	res.CanJump = s.canJump
	res.Phase = s.phase
	return res, nil
}

// transition applies the host-reported floor contact and reports a landing.
func (s *State) transition(grounded bool) bool {
	s.colliding = grounded
	switch {
	case grounded && s.phase == Airborne:
		s.phase = Grounded
		s.canJump = true
		return true
	case !grounded && s.phase == Grounded:
		s.phase = Airborne
		s.canJump = false
	}
	return false
}
