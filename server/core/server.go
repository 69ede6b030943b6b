package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/automoto/slipstep/components"
	cfg "github.com/automoto/slipstep/config"
	"github.com/automoto/slipstep/persistence"
	"github.com/automoto/slipstep/shared/motion"
	"github.com/automoto/slipstep/systems"
	"github.com/automoto/slipstep/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownCharacter = errors.New("core: unknown character")
	ErrNoSpawnPoint     = errors.New("core: no such spawn point")
)

// Activity is a coarse label for what a character is doing, derived from its
// phase and last reported velocity.
type Activity int

const (
	Idle Activity = iota
	Running
	Jumping
	Falling
)

func (a Activity) String() string {
	switch a {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	}
	return fmt.Sprintf("Activity(%d)", int(a))
}

// Snapshot is a copy of one character's state taken between ticks.
type Snapshot struct {
	ID       uuid.UUID
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	CanJump  bool
	Phase    motion.Phase
	Activity Activity
	LastSafe mgl64.Vec2
	HasSafe  bool
	State    string // motion state printer output
	Err      error
}

// Server owns the ECS world for one level and steps every character in it.
type Server struct {
	ecs     *ecs.ECS
	level   *Level
	clock   *donburi.Entry
	log     *logrus.Logger
	metrics *Metrics
	loop    *GameLoop

	characters map[uuid.UUID]donburi.Entity
	mu         sync.Mutex
	startOnce  sync.Once
}

// NewServer builds the collision space and walls for level. A nil metrics
// value disables metrics; a nil logger uses the logrus standard logger.
func NewServer(level *Level, log *logrus.Logger, metrics *Metrics) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	e := ecs.NewECS(donburi.NewWorld())
	cell := cfg.C.Level.CellSize
	factory.CreateSpace(e, level.Width+cell, level.Height+cell, cell, cell)
	clock := factory.CreateClock(e)
	factory.CreateWalls(e, level.Regions)
	systems.Install(e, log)

	s := &Server{
		ecs:        e,
		level:      level,
		clock:      clock,
		log:        log,
		metrics:    metrics,
		characters: make(map[uuid.UUID]donburi.Entity),
	}
	s.loop = NewGameLoop(s, cfg.C.Server.TickRate)

	log.WithFields(logrus.Fields{
		"level":   level.Name,
		"regions": level.Regions.Len(),
		"spawns":  len(level.SpawnPoints),
		"width":   level.Width,
		"height":  level.Height,
	}).Info("level loaded")

	return s
}

// Start runs the game loop in its own goroutine. Later calls do nothing.
func (s *Server) Start() {
	s.startOnce.Do(func() { go s.loop.Run() })
}

// Stop halts the game loop. Safe to call more than once.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) Level() *Level {
	return s.level
}

// Spawn places a character at (x, y), probes the floor under it and readies
// its motion state with the result.
func (s *Server) Spawn(x, y float64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := factory.CreateCharacter(s.ecs, x, y)
	contact := systems.ProbeGround(components.Object.Get(entry).Object)
	components.Contact.SetValue(entry, contact)
	components.Motion.Get(entry).State.Ready(contact.Grounded)

	id := components.Character.Get(entry).ID
	s.characters[id] = entry.Entity()
	s.metrics.characters.Set(float64(len(s.characters)))

	s.log.WithFields(logrus.Fields{
		"character": id,
		"x":         x,
		"y":         y,
		"grounded":  contact.Grounded,
	}).Info("character spawned")

	return id
}

// SpawnAt spawns a character at the level's spawn point with the given index.
func (s *Server) SpawnAt(index int) (uuid.UUID, error) {
	if index < 0 || index >= len(s.level.SpawnPoints) {
		return uuid.Nil, fmt.Errorf("%w: %d of %d", ErrNoSpawnPoint, index, len(s.level.SpawnPoints))
	}
	sp := s.level.SpawnPoints[index]
	return s.Spawn(sp.X, sp.Y), nil
}

func (s *Server) Despawn(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.characters[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCharacter, id)
	}
	delete(s.characters, id)
	s.metrics.characters.Set(float64(len(s.characters)))

	if s.ecs.World.Valid(entity) {
		factory.RemoveCharacter(s.ecs, s.ecs.World.Entry(entity))
	}
	s.log.WithField("character", id).Info("character removed")
	return nil
}

// SetInput records the held input for a character. It takes effect on the
// next tick; a jump fires only on the tick the button goes down.
func (s *Server) SetInput(id uuid.UUID, moveAxisX float64, jumpHeld bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	intent := components.Intent.Get(entry)
	intent.MoveAxisX = moveAxisX
	intent.JumpHeld = jumpHeld
	return nil
}

// Tick advances every character by dt seconds. A character whose step is
// rejected stays still for this tick and is counted in the metrics.
func (s *Server) Tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	clock := components.Clock.Get(s.clock)
	clock.DeltaTime = dt
	clock.Tick++

	s.ecs.Update()

	for _, entity := range s.characters {
		if !s.ecs.World.Valid(entity) {
			continue
		}
		m := components.Motion.Get(s.ecs.World.Entry(entity))
		if m.Err != nil {
			s.metrics.rejectedSteps.Inc()
			continue
		}
		if m.Last.Jumped {
			s.metrics.jumps.Inc()
		}
		if m.Last.Landed {
			s.metrics.landings.Inc()
		}
	}

	s.metrics.ticks.Inc()
	s.metrics.tickDuration.Observe(time.Since(start).Seconds())
}

// TickCount is the number of ticks processed so far.
func (s *Server) TickCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return components.Clock.Get(s.clock).Tick
}

func (s *Server) Snapshot(id uuid.UUID) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entry(id)
	if err != nil {
		return Snapshot{}, err
	}
	obj := components.Object.Get(entry)
	m := components.Motion.Get(entry)
	character := components.Character.Get(entry)

	return Snapshot{
		ID:       id,
		Position: mgl64.Vec2{obj.X, obj.Y},
		Velocity: m.Last.Velocity,
		CanJump:  m.State.CanJump(),
		Phase:    m.State.Phase(),
		Activity: deriveActivity(m.State.Phase(), m.Last.Velocity),
		LastSafe: mgl64.Vec2{character.LastSafeX, character.LastSafeY},
		HasSafe:  character.HasSafe,
		State:    m.State.String(),
		Err:      m.Err,
	}, nil
}

// SafePoint returns the character's last safe ground position tagged with
// the level name, ready to be saved. ok is false if it never stood on ground.
func (s *Server) SafePoint(id uuid.UUID) (persistence.SafePoint, bool, error) {
	snap, err := s.Snapshot(id)
	if err != nil {
		return persistence.SafePoint{}, false, err
	}
	if !snap.HasSafe {
		return persistence.SafePoint{}, false, nil
	}
	return persistence.SafePoint{
		Level: s.level.Name,
		X:     snap.LastSafe.X(),
		Y:     snap.LastSafe.Y(),
	}, true, nil
}

// CharacterCount returns the number of spawned characters.
func (s *Server) CharacterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.characters)
}

func (s *Server) entry(id uuid.UUID) (*donburi.Entry, error) {
	entity, ok := s.characters[id]
	if !ok || !s.ecs.World.Valid(entity) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharacter, id)
	}
	return s.ecs.World.Entry(entity), nil
}

// deriveActivity maps motion state to an activity label. The phase lags a
// jump by one tick, so upward velocity wins over it.
func deriveActivity(phase motion.Phase, vel mgl64.Vec2) Activity {
	if vel.Y() < 0 {
		return Jumping
	}
	if phase != motion.Grounded {
		return Falling
	}
	if math.Abs(vel.X()) >= 0.1 {
		return Running
	}
	return Idle
}
