package core

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	cfg "github.com/automoto/slipstep/config"
	"github.com/automoto/slipstep/shared/leveldata"
	"github.com/automoto/slipstep/shared/regions"
	"github.com/automoto/slipstep/shared/surface"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLevelName identifies the built-in box in logs and saved safe points.
const DefaultLevelName = "box"

// Level holds the region set and spawn data the host builds its world from.
type Level struct {
	Name        string
	Regions     *regions.Set
	SpawnPoints []leveldata.SpawnPoint
	Width       int
	Height      int
}

// NewLevel sizes the level from the region bounds.
func NewLevel(name string, set *regions.Set, spawns []leveldata.SpawnPoint) *Level {
	_, hi := set.Bounds()
	return &Level{
		Name:        name,
		Regions:     set,
		SpawnPoints: spawns,
		Width:       int(hi.X()),
		Height:      int(hi.Y()),
	}
}

// LoadLevel reads a TMX file from fsys and converts its solids to regions.
func LoadLevel(fsys fs.FS, filePath string) (*Level, error) {
	data, err := leveldata.LoadCollisionData(fsys, filePath)
	if err != nil {
		return nil, err
	}
	set, err := regions.FromLevel(data, cfg.C.Surface.IceMultiplier)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", filePath, err)
	}

	name := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	l := NewLevel(name, set, data.SpawnPoints)
	if data.MapWidth > l.Width {
		l.Width = data.MapWidth
	}
	if data.MapHeight > l.Height {
		l.Height = data.MapHeight
	}
	return l, nil
}

// DefaultLevel is a 320x240 box: a plain floor on the left, an ice floor on
// the right and a wall on each side.
func DefaultLevel() *Level {
	floor := surface.New(mgl64.Vec2{16, 200})
	floor.SetColliding(true)
	left := surface.New(mgl64.Vec2{0, 0})
	left.SetColliding(true)
	right := surface.New(mgl64.Vec2{304, 0})
	right.SetColliding(true)
	ice := surface.NewIce(mgl64.Vec2{160, 200}, cfg.C.Surface.IceMultiplier)

	set := regions.NewFixed(
		[4]surface.Surface{floor, ice, left, right},
		[4]surface.Surface{
			surface.New(mgl64.Vec2{144, 40}),
			surface.New(mgl64.Vec2{144, 40}),
			surface.New(mgl64.Vec2{16, 240}),
			surface.New(mgl64.Vec2{16, 240}),
		},
	)
	return NewLevel(DefaultLevelName, set, []leveldata.SpawnPoint{
		{X: cfg.C.Level.SpawnX, Y: cfg.C.Level.SpawnY, Index: 0},
	})
}

// LoadLevels loads every .tmx level under dir, keyed by stem name, plus the
// sorted name list.
func LoadLevels(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	collisionMap, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]*Level, len(names))
	for _, name := range names {
		set, err := regions.FromLevel(collisionMap[name], cfg.C.Surface.IceMultiplier)
		if err != nil {
			return nil, nil, fmt.Errorf("level %s: %w", name, err)
		}
		levels[name] = NewLevel(name, set, collisionMap[name].SpawnPoints)
	}
	return levels, names, nil
}
