package systems

import (
	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntent turns held input into this tick's motion input. Jump fires on
// the press edge only.
func UpdateIntent(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)

		intent.Tick.MoveAxisX = intent.MoveAxisX
		intent.Tick.JumpPressed = intent.JumpHeld && !intent.JumpWasHeld
		intent.JumpWasHeld = intent.JumpHeld
	})
}
