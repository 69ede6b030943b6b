// Package motion holds per-character movement state and the per-tick
// integrator that turns input and ground contact into a velocity.
//
// The package never moves the character. Hosts apply the returned velocity
// against their own collision geometry and report the resulting contact back
// on the next tick.
package motion

import (
	"fmt"

	"github.com/automoto/slipstep/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultSpeed        = 100.0
	DefaultGravity      = 9.8
	DefaultJumpImpulse  = -300.0
	DefaultMaxDeltaTime = 1.0
)

// Tuning is fixed for the lifetime of a State.
type Tuning struct {
	Speed       mgl64.Vec2
	Gravity     float64
	JumpImpulse float64

	// MaxDeltaTime caps a single step. Zero disables the cap.
	MaxDeltaTime float64

	// ClampDirection bounds the intent accumulator to ±Speed.
	ClampDirection bool
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:          mgl64.Vec2{DefaultSpeed, DefaultSpeed},
		Gravity:        DefaultGravity,
		JumpImpulse:    DefaultJumpImpulse,
		MaxDeltaTime:   DefaultMaxDeltaTime,
		ClampDirection: true,
	}
}

// State is owned by exactly one character and is not safe for concurrent use.
type State struct {
	tuning Tuning

	direction mgl64.Vec2
	velocity  mgl64.Vec2
	canJump   bool
	colliding bool
	phase     Phase
}

// NewState always starts Airborne with no jump available, whatever the host
// believes about the spawn point. Use Ready to seed ground contact.
func NewState(t Tuning) *State {
	return &State{
		tuning: t,
		phase:  Airborne,
	}
}

// Ready is the host's on-ready hook. It clears accumulated intent and
// velocity and seeds the grounded state from the spawn contact.
func (s *State) Ready(groundedNow bool) {
	s.direction = mgl64.Vec2{}
	s.velocity = mgl64.Vec2{}
	s.colliding = groundedNow
	s.canJump = groundedNow
	if groundedNow {
		s.phase = Grounded
	} else {
		s.phase = Airborne
	}
}

func (s *State) Direction() mgl64.Vec2 { return s.direction }
func (s *State) Speed() mgl64.Vec2     { return s.tuning.Speed }
func (s *State) Velocity() mgl64.Vec2  { return s.velocity }
func (s *State) Gravity() float64      { return s.tuning.Gravity }
func (s *State) CanJump() bool         { return s.canJump }
func (s *State) IsColliding() bool     { return s.colliding }
func (s *State) Phase() Phase          { return s.phase }
func (s *State) Tuning() Tuning        { return s.tuning }

// ApplyMovement accumulates movement intent. It does not move the character.
func (s *State) ApplyMovement(xInput, yInput float64) {
	s.direction = s.direction.Add(mgl64.Vec2{xInput, yInput})
	if s.tuning.ClampDirection {
		s.direction = gamemath.ClampVec(s.direction, s.tuning.Speed)
	}
}

func (s *State) String() string {
	return fmt.Sprintf("Player(MovementDirection: (%g, %g), MovementSpeed: (%g, %g), GravityForce: %g, CanJump: %t)",
		s.direction.X(), s.direction.Y(), s.tuning.Speed.X(), s.tuning.Speed.Y(), s.tuning.Gravity, s.canJump)
}
