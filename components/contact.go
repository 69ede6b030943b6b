package components

import (
	"github.com/automoto/slipstep/shared/surface"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactData is what the floor probe saw this tick.
type ContactData struct {
	Grounded bool
	Ground   *resolv.Object
	Surface  *surface.Surface
}

var Contact = donburi.NewComponentType[ContactData]()

// SurfaceData is attached to every wall entity built from the region set.
type SurfaceData struct {
	Index   int // position in the region set
	Surface surface.Surface
}

var Surface = donburi.NewComponentType[SurfaceData]()
