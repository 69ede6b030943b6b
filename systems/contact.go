package systems

import (
	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundProbe is how far below its feet a character looks for a floor.
const groundProbe = 1.0

// UpdateContacts runs the floor probe for every character and records which
// surface, if any, it is standing on.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		contact := components.Contact.Get(e)
		*contact = ProbeGround(obj.Object)
	})
}

// ProbeGround reports the solid directly under object. When the feet span
// several regions the one under the object's center wins.
func ProbeGround(object *resolv.Object) components.ContactData {
	check := object.Check(0, groundProbe, tags.ResolvSolid)
	if check == nil {
		return components.ContactData{}
	}

	var floors []*resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(object, solid, 0, groundProbe) && solid.Y >= object.Y+object.H-groundProbe {
			floors = append(floors, solid)
		}
	}
	if len(floors) == 0 {
		return components.ContactData{}
	}

	ground := floors[0]
	centerX := object.X + object.W/2
	for _, f := range floors {
		if centerX >= f.X && centerX < f.X+f.W {
			ground = f
			break
		}
	}

	contact := components.ContactData{Grounded: true, Ground: ground}
	if entry, ok := ground.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Surface) {
		s := components.Surface.Get(entry).Surface
		contact.Surface = &s
	}
	return contact
}
