package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Wall      = donburi.NewTag().SetName("Wall")
	Ice       = donburi.NewTag().SetName("Ice")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvIce       = "ice"
	ResolvCharacter = "character"
)
