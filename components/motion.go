package components

import (
	"github.com/automoto/slipstep/shared/motion"
	"github.com/yohamta/donburi"
)

// MotionData wraps the per-character motion core. Last is the most recent
// step result and holds the velocity the collision pass resolves.
type MotionData struct {
	State *motion.State
	Last  motion.Result
	Err   error // last step failure, nil after a good step
}

var Motion = donburi.NewComponentType[MotionData]()
