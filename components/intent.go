package components

import (
	"github.com/automoto/slipstep/shared/motion"
	"github.com/yohamta/donburi"
)

// IntentData stores the held state written by the host and the previous
// tick's held state. Jump is edge-triggered, so JumpPressed in Tick is only
// true on the first tick the button is held.
type IntentData struct {
	MoveAxisX   float64
	JumpHeld    bool
	JumpWasHeld bool

	Tick motion.Input
}

var Intent = donburi.NewComponentType[IntentData]()
