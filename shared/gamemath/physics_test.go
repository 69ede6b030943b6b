package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		max   float64
		want  float64
	}{
		{"within range", 3, 6, 3},
		{"above max", 9, 6, 6},
		{"below negative max", -9, 6, -6},
		{"exactly max", 6, 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSpeed(tt.speed, tt.max))
		})
	}
}

func TestClampVecUsesLimitMagnitude(t *testing.T) {
	got := ClampVec(mgl64.Vec2{250, -250}, mgl64.Vec2{100, -50})
	assert.Equal(t, mgl64.Vec2{100, -50}, got)
}

func TestClampDelta(t *testing.T) {
	dt, cut := ClampDelta(0.5, 1)
	assert.Equal(t, 0.5, dt)
	assert.False(t, cut)

	dt, cut = ClampDelta(4, 1)
	assert.Equal(t, 1.0, dt)
	assert.True(t, cut)

	dt, cut = ClampDelta(4, 0)
	assert.Equal(t, 4.0, dt)
	assert.False(t, cut)
}

func TestAxisSign(t *testing.T) {
	assert.Equal(t, 1.0, AxisSign(0.3))
	assert.Equal(t, -1.0, AxisSign(-7))
	assert.Equal(t, 0.0, AxisSign(0))
	assert.Equal(t, 0.0, AxisSign(math.NaN()))
}
