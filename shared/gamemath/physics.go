package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampVec clamps each component of v to [-limit, limit] of the matching
// component of limit.
func ClampVec(v, limit mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		ClampSpeed(v.X(), math.Abs(limit.X())),
		ClampSpeed(v.Y(), math.Abs(limit.Y())),
	}
}

// ClampDelta caps a frame delta at max. The second return reports whether
// the delta was cut. A non-positive max disables the cap.
func ClampDelta(dt, max float64) (float64, bool) {
	if max > 0 && dt > max {
		return max, true
	}
	return dt, false
}

// AxisSign collapses an analog axis to -1, 0 or 1.
func AxisSign(axis float64) float64 {
	switch {
	case axis > 0:
		return 1
	case axis < 0:
		return -1
	default:
		return 0
	}
}
