package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Install registers the per-tick systems in the order the motion core
// expects: intent, floor probe, motion step, collision, bookkeeping.
func Install(e *ecs.ECS, log logrus.FieldLogger) {
	e.AddSystem(UpdateIntent)
	e.AddSystem(UpdateContacts)
	e.AddSystem(NewMotionSystem(log))
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateSafeGround)
}
