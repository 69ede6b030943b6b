package systems

import (
	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/shared/motion"
	"github.com/automoto/slipstep/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewMotionSystem returns the system that steps the motion core of every
// character with the contact and intent gathered this tick. Rejected steps
// are reported on log.
func NewMotionSystem(log logrus.FieldLogger) ecs.System {
	return func(ecs *ecs.ECS) {
		updateMotion(ecs, log)
	}
}

func updateMotion(ecs *ecs.ECS, log logrus.FieldLogger) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DeltaTime

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		intent := components.Intent.Get(e)
		contact := components.Contact.Get(e)

		m.State.ApplyMovement(intent.Tick.MoveAxisX, 0)

		res, err := m.State.Step(dt, intent.Tick, motion.Contact{
			Grounded: contact.Grounded,
			Surface:  contact.Surface,
		})
		if err != nil {
			// Keep the body still rather than resolving a stale velocity.
			m.Err = err
			m.Last.Velocity = m.Last.Velocity.Mul(0)
			log.WithFields(logrus.Fields{
				"character": components.Character.Get(e).ID,
				"dt":        dt,
			}).WithError(err).Warn("motion step rejected")
			return
		}
		m.Err = nil
		m.Last = res
	})
}
