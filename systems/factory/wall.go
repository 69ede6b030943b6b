package factory

import (
	"github.com/automoto/slipstep/archetypes"
	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/shared/regions"
	"github.com/automoto/slipstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns one region of the level. Surfaces with a speed effect
// also carry the ice tags so the floor probe can tell them apart.
func CreateWall(ecs *ecs.ECS, index int, r regions.Region) *donburi.Entry {
	x, y := r.Origin.X(), r.Origin.Y()
	w, h := r.Extent.X(), r.Extent.Y()

	var wall *donburi.Entry
	var obj *resolv.Object
	if r.Surface.HasEffect() {
		wall = archetypes.Wall.Spawn(ecs, tags.Ice)
		obj = resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvIce)
	} else {
		wall = archetypes.Wall.Spawn(ecs)
		obj = resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Surface.SetValue(wall, components.SurfaceData{Index: index, Surface: r.Surface})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateWalls spawns every region in the set, in order.
func CreateWalls(ecs *ecs.ECS, set *regions.Set) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, set.Len())
	for i, r := range set.Regions() {
		walls = append(walls, CreateWall(ecs, i, r))
	}
	return walls
}
