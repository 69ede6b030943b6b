package factory

import (
	"github.com/automoto/slipstep/archetypes"
	"github.com/automoto/slipstep/components"
	cfg "github.com/automoto/slipstep/config"
	"github.com/automoto/slipstep/shared/motion"
	"github.com/automoto/slipstep/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningFromConfig maps config values onto the motion core.
func TuningFromConfig(c *cfg.Config) motion.Tuning {
	return motion.Tuning{
		Speed:          mgl64.Vec2{c.Player.SpeedX, c.Player.SpeedY},
		Gravity:        c.Physics.Gravity,
		JumpImpulse:    c.Physics.JumpImpulse,
		MaxDeltaTime:   c.Physics.MaxDeltaTime,
		ClampDirection: c.Player.ClampDirection,
	}
}

// CreateCharacter spawns a character at (x, y). The motion state starts
// airborne; the host calls Ready once the first floor probe has run.
func CreateCharacter(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	w, h := cfg.C.Player.CollisionWidth, cfg.C.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	components.Character.SetValue(character, components.CharacterData{
		ID: uuid.New(),
	})
	components.Motion.SetValue(character, components.MotionData{
		State: motion.NewState(TuningFromConfig(cfg.C)),
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return character
}

// RemoveCharacter takes the character out of the collision space and the world.
func RemoveCharacter(ecs *ecs.ECS, character *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(character).Object)
	}
	ecs.World.Remove(character.Entity())
}
