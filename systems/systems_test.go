package systems

import (
	"testing"

	"github.com/automoto/slipstep/components"
	"github.com/automoto/slipstep/shared/motion"
	"github.com/automoto/slipstep/shared/regions"
	"github.com/automoto/slipstep/shared/surface"
	"github.com/automoto/slipstep/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt = 1.0 / 60

// testLevel is a 320x240 room: plain floor on the left half, ice on the
// right half and a wall on the far right.
func testLevel(t *testing.T) *regions.Set {
	t.Helper()
	ground := surface.New(mgl64.Vec2{0, 200})
	ground.SetColliding(true)
	wall := surface.New(mgl64.Vec2{304, 0})
	wall.SetColliding(true)

	set, err := regions.New(
		[]surface.Surface{ground, surface.NewIce(mgl64.Vec2{160, 200}, 1.5), wall},
		[]surface.Surface{
			surface.New(mgl64.Vec2{160, 16}),
			surface.New(mgl64.Vec2{144, 16}),
			surface.New(mgl64.Vec2{16, 200}),
		},
	)
	require.NoError(t, err)
	return set
}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 320, 240, 16, 16)
	factory.CreateClock(e)
	factory.CreateWalls(e, testLevel(t))
	log, _ := test.NewNullLogger()
	Install(e, log)
	return e
}

func tick(e *ecs.ECS) {
	clockEntry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(clockEntry)
	clock.DeltaTime = dt
	clock.Tick++
	e.Update()
}

func spawnReady(e *ecs.ECS, x, y float64) *donburi.Entry {
	c := factory.CreateCharacter(e, x, y)
	obj := components.Object.Get(c)
	components.Motion.Get(c).State.Ready(ProbeGround(obj.Object).Grounded)
	return c
}

func TestCreateWallsTagsIce(t *testing.T) {
	e := newTestECS(t)

	var iceCount, wallCount int
	components.Surface.Each(e.World, func(entry *donburi.Entry) {
		wallCount++
		if components.Object.Get(entry).HasTags("ice") {
			iceCount++
		}
	})
	assert.Equal(t, 3, wallCount)
	assert.Equal(t, 1, iceCount)
}

func TestProbeGround(t *testing.T) {
	e := newTestECS(t)

	onFloor := factory.CreateCharacter(e, 40, 160)
	contact := ProbeGround(components.Object.Get(onFloor).Object)
	assert.True(t, contact.Grounded)
	require.NotNil(t, contact.Surface)
	assert.False(t, contact.Surface.HasEffect())

	onIce := factory.CreateCharacter(e, 200, 160)
	contact = ProbeGround(components.Object.Get(onIce).Object)
	assert.True(t, contact.Grounded)
	require.NotNil(t, contact.Surface)
	assert.Equal(t, 1.5, contact.Surface.SpeedMultiplier())

	inAir := factory.CreateCharacter(e, 40, 100)
	assert.False(t, ProbeGround(components.Object.Get(inAir).Object).Grounded)
}

func TestProbeGroundPrefersSurfaceUnderCenter(t *testing.T) {
	e := newTestECS(t)

	// Feet span x=150..166, center at 158 is still on plain ground.
	c := factory.CreateCharacter(e, 150, 160)
	contact := ProbeGround(components.Object.Get(c).Object)
	require.NotNil(t, contact.Surface)
	assert.False(t, contact.Surface.HasEffect())

	// Center at 162 is on ice.
	c = factory.CreateCharacter(e, 154, 160)
	contact = ProbeGround(components.Object.Get(c).Object)
	require.NotNil(t, contact.Surface)
	assert.True(t, contact.Surface.HasEffect())
}

func TestFallingCharacterLands(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 40, 100)
	m := components.Motion.Get(c)
	require.Equal(t, motion.Airborne, m.State.Phase())

	for i := 0; i < 1000 && m.State.Phase() != motion.Grounded; i++ {
		tick(e)
	}

	obj := components.Object.Get(c)
	assert.Equal(t, motion.Grounded, m.State.Phase())
	assert.True(t, m.State.CanJump())
	assert.Equal(t, 160.0, obj.Y)
	assert.True(t, m.Last.Landed)
}

func TestIntentJumpIsEdgeTriggered(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 40, 160)
	intent := components.Intent.Get(c)
	m := components.Motion.Get(c)

	intent.JumpHeld = true
	tick(e)
	assert.True(t, m.Last.Jumped)
	assert.Equal(t, -300.0, m.Last.Velocity.Y())
	assert.Less(t, components.Object.Get(c).Y, 160.0)

	tick(e)
	assert.False(t, m.Last.Jumped)
	assert.False(t, intent.Tick.JumpPressed)
}

func TestGroundedWalkSpeed(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 40, 160)
	components.Intent.Get(c).MoveAxisX = 1
	obj := components.Object.Get(c)

	tick(e)

	assert.InDelta(t, 40+100*dt, obj.X, 1e-9)
	assert.Equal(t, 160.0, obj.Y)
	assert.Equal(t, motion.Grounded, components.Motion.Get(c).State.Phase())
}

func TestIceMultipliesDisplacement(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 200, 160)
	components.Intent.Get(c).MoveAxisX = 1
	obj := components.Object.Get(c)

	tick(e)

	assert.InDelta(t, 150.0, components.Motion.Get(c).Last.Velocity.X(), 1e-9)
	assert.InDelta(t, 200+150*dt, obj.X, 1e-9)
}

func TestWallStopsCharacter(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 280, 160)
	components.Intent.Get(c).MoveAxisX = 1
	obj := components.Object.Get(c)

	for i := 0; i < 120; i++ {
		tick(e)
	}

	assert.Equal(t, 304.0-obj.W, obj.X)
	assert.Equal(t, 160.0, obj.Y)
}

func TestSafeGroundTracksLastGroundedPosition(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 40, 160)
	character := components.Character.Get(c)

	tick(e)
	assert.True(t, character.HasSafe)
	assert.Equal(t, 40.0, character.LastSafeX)

	components.Intent.Get(c).JumpHeld = true
	tick(e)
	components.Intent.Get(c).MoveAxisX = 1
	tick(e)
	assert.Equal(t, 40.0, character.LastSafeX, "airborne ticks do not move the safe point")
}

func TestRejectedStepKeepsBodyStill(t *testing.T) {
	e := newTestECS(t)
	c := spawnReady(e, 40, 100)
	obj := components.Object.Get(c)

	clockEntry, _ := components.Clock.First(e.World)
	components.Clock.Get(clockEntry).DeltaTime = 0
	e.Update()

	m := components.Motion.Get(c)
	assert.ErrorIs(t, m.Err, motion.ErrInvalidDeltaTime)
	assert.Equal(t, 100.0, obj.Y)
}

func TestRemoveCharacter(t *testing.T) {
	e := newTestECS(t)
	c := factory.CreateCharacter(e, 40, 160)
	entity := c.Entity()

	factory.RemoveCharacter(e, c)

	assert.False(t, e.World.Valid(entity))
}
