package systems

import (
	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSafeGround tracks the last position each character stood on solid
// ground. It runs after collisions, so it re-probes the settled position.
func UpdateSafeGround(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !ProbeGround(obj.Object).Grounded {
			return
		}
		character := components.Character.Get(e)
		character.LastSafeX = obj.X
		character.LastSafeY = obj.Y
		character.HasSafe = true
	})
}
