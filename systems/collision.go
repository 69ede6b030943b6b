package systems

import (
	"math"

	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every character by the velocity and delta of its
// last motion step and slides it against solid regions. Displacement is
// split into steps no longer than half a cell so thin walls cannot be skipped.
func UpdateCollisions(ecs *ecs.ECS) {
	maxStep := 8.0
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		maxStep = float64(min(space.CellWidth, space.CellHeight)) / 2
	}

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		if m.Err != nil {
			return
		}
		obj := components.Object.Get(e)
		dx := m.Last.Velocity.X() * m.Last.DeltaTime
		dy := m.Last.Velocity.Y() * m.Last.DeltaTime

		steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
		if steps < 1 {
			steps = 1
		}
		sx, sy := dx/float64(steps), dy/float64(steps)
		for i := 0; i < steps; i++ {
			sx = resolveHorizontal(obj.Object, sx)
			sy = resolveVertical(obj.Object, sy)
			if sx == 0 && sy == 0 {
				break
			}
		}
		obj.Update()
	})
}

// resolveHorizontal moves object by dx or flush against the nearest
// blocking solid. It returns the step to keep using, zero once blocked.
func resolveHorizontal(object *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if x, blocked := flushPosition(object, check.ObjectsByTags(tags.ResolvSolid), dx, 0); blocked {
			object.X = x
			return 0
		}
	}
	object.X += dx
	return dx
}

// resolveVertical mirrors resolveHorizontal on the y axis.
func resolveVertical(object *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		if y, blocked := flushPosition(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy); blocked {
			object.Y = y
			return 0
		}
	}
	object.Y += dy
	return dy
}

// flushPosition returns the coordinate on the step axis that leaves object
// touching the closest solid it would otherwise overlap. Snapping to the
// solid's edge keeps resting contact exact.
func flushPosition(object *resolv.Object, solids []*resolv.Object, dx, dy float64) (float64, bool) {
	best, blocked := 0.0, false
	for _, solid := range solids {
		if !overlaps(object, solid, dx, dy) {
			continue
		}
		var pos, from float64
		switch {
		case dx > 0:
			pos, from = solid.X-object.W, object.X
		case dx < 0:
			pos, from = solid.X+solid.W, object.X
		case dy > 0:
			pos, from = solid.Y-object.H, object.Y
		default:
			pos, from = solid.Y+solid.H, object.Y
		}
		if !blocked || math.Abs(pos-from) < math.Abs(best-from) {
			best, blocked = pos, true
		}
	}
	return best, blocked
}

// overlaps reports whether object moved by (dx, dy) would intersect other.
// Touching edges do not count.
func overlaps(object, other *resolv.Object, dx, dy float64) bool {
	x, y := object.X+dx, object.Y+dy
	return x < other.X+other.W && x+object.W > other.X &&
		y < other.Y+other.H && y+object.H > other.Y
}
