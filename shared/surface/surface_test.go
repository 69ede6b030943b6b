package surface

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewIsNeutral(t *testing.T) {
	s := New(mgl64.Vec2{4, 8})

	assert.False(t, s.IsColliding())
	assert.False(t, s.HasEffect())
	assert.Equal(t, 1.0, s.SpeedMultiplier())
	assert.Equal(t, EffectNone, s.Effect().Kind)
}

func TestNeutralApplyEffectIsIdentity(t *testing.T) {
	s := New(mgl64.Vec2{})
	for _, v := range []mgl64.Vec2{{0, 0}, {100, -300}, {-12.5, 9.8}} {
		assert.Equal(t, v, s.ApplyEffect(v))
	}

	explicit := NewWithEffect(mgl64.Vec2{}, SpeedMultiplier(1))
	assert.False(t, explicit.HasEffect())
	assert.Equal(t, mgl64.Vec2{3, 4}, explicit.ApplyEffect(mgl64.Vec2{3, 4}))
}

func TestApplyEffectMultipliesComponentWise(t *testing.T) {
	tests := []struct {
		name string
		m    float64
		in   mgl64.Vec2
		want mgl64.Vec2
	}{
		{"ice", 1.5, mgl64.Vec2{100, 0}, mgl64.Vec2{150, 0}},
		{"ice negative", 1.5, mgl64.Vec2{-100, -300}, mgl64.Vec2{-150, -450}},
		{"sticky", 0.5, mgl64.Vec2{100, 20}, mgl64.Vec2{50, 10}},
		{"full stop", 0, mgl64.Vec2{100, 20}, mgl64.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIce(mgl64.Vec2{}, tt.m)
			in := tt.in

			got := s.ApplyEffect(in)

			assert.InDelta(t, tt.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), got.Y(), 1e-9)
			assert.Equal(t, tt.in, in, "input must not be mutated")
		})
	}
}

func TestNewIceCollides(t *testing.T) {
	s := NewIce(mgl64.Vec2{}, DefaultIceMultiplier)

	assert.True(t, s.IsColliding())
	assert.True(t, s.HasEffect())
	assert.Equal(t, 1.5, s.SpeedMultiplier())
}

func TestSetColliding(t *testing.T) {
	s := New(mgl64.Vec2{})
	s.SetColliding(true)
	assert.True(t, s.IsColliding())
	s.SetColliding(false)
	assert.False(t, s.IsColliding())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Environment(Collision: false)", New(mgl64.Vec2{}).String())
	assert.Equal(t, "Ice(Speed Multiplier: 1.5, Collision: true)", NewIce(mgl64.Vec2{}, 1.5).String())
	assert.Equal(t, "speed_multiplier", EffectSpeedMultiplier.String())
}
