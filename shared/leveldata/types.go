// Package leveldata provides TMX level parsing for the region set and the
// host. It has no dependencies on donburi or resolv, pure data only.
package leveldata

// Layer and object group names read from TMX files.
const (
	SolidLayer      = "collision"
	RegionGroup     = "Regions"
	SpawnGroup      = "PlayerSpawn"
	SpeedMultiplier = "speedMultiplier"
	IceProperty     = "ice"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect is one solid tile or region object. SpeedMultiplier is zero for
// plain ground. Ice marks a slippery rect that left its multiplier unset.
type SolidRect struct {
	X, Y, W, H      float64
	SpeedMultiplier float64
	Ice             bool
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
