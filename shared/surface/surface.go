// Package surface describes static level regions a character can touch and
// the effect each one has on the character's velocity.
package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultIceMultiplier is the speed multiplier an ice surface gets when none
// is configured.
const DefaultIceMultiplier = 1.5

// EffectKind tags the variant held by an Effect.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSpeedMultiplier
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectSpeedMultiplier:
		return "speed_multiplier"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// Effect is a tagged variant. Multiplier is only read when Kind is
// EffectSpeedMultiplier.
type Effect struct {
	Kind       EffectKind
	Multiplier float64
}

// SpeedMultiplier returns an effect that scales velocity by m.
func SpeedMultiplier(m float64) Effect {
	return Effect{Kind: EffectSpeedMultiplier, Multiplier: m}
}

// Surface is one environmental region. Point is an origin when the surface is
// used as a region coordinate and an extent when used as a region dimension.
type Surface struct {
	Point mgl64.Vec2

	colliding bool
	effect    Effect
}

// New returns a neutral, non-colliding surface at p.
func New(p mgl64.Vec2) Surface {
	return Surface{Point: p}
}

// NewWithEffect returns a surface at p carrying e.
func NewWithEffect(p mgl64.Vec2, e Effect) Surface {
	return Surface{Point: p, effect: e}
}

// NewIce returns a colliding surface that multiplies velocity by m.
func NewIce(p mgl64.Vec2, m float64) Surface {
	return Surface{Point: p, colliding: true, effect: SpeedMultiplier(m)}
}

func (s Surface) IsColliding() bool { return s.colliding }

// SetColliding is reserved for the collision detector.
func (s *Surface) SetColliding(colliding bool) { s.colliding = colliding }

func (s Surface) Effect() Effect { return s.effect }

// SpeedMultiplier returns 1 for a neutral surface.
func (s Surface) SpeedMultiplier() float64 {
	if s.effect.Kind != EffectSpeedMultiplier {
		return 1
	}
	return s.effect.Multiplier
}

// HasEffect reports whether applying the surface changes a velocity.
func (s Surface) HasEffect() bool {
	return s.effect.Kind == EffectSpeedMultiplier && s.effect.Multiplier != 1
}

// ApplyEffect scales v by the surface multiplier. A zero multiplier is a full
// stop.
func (s Surface) ApplyEffect(v mgl64.Vec2) mgl64.Vec2 {
	return v.Mul(s.SpeedMultiplier())
}

func (s Surface) String() string {
	if s.effect.Kind == EffectSpeedMultiplier {
		return fmt.Sprintf("Ice(Speed Multiplier: %g, Collision: %t)", s.effect.Multiplier, s.colliding)
	}
	return fmt.Sprintf("Environment(Collision: %t)", s.colliding)
}
