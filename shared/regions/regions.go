// Package regions holds the static level geometry a character may touch: an
// ordered set of (coordinate, dimension) surface pairs.
package regions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/slipstep/shared/leveldata"
	"github.com/automoto/slipstep/shared/surface"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrLengthMismatch = errors.New("regions: coordinate and dimension counts differ")
	ErrEmpty          = errors.New("regions: no regions")
)

// Region is one axis-aligned rectangle joined from a coordinate/dimension
// pair. Collision and effect come from the coordinate entry.
type Region struct {
	Origin  mgl64.Vec2
	Extent  mgl64.Vec2
	Surface surface.Surface
}

// Set is immutable after construction and safe to read from many goroutines.
type Set struct {
	coordinates []surface.Surface
	dimensions  []surface.Surface
}

// New builds a set from parallel sequences. Construction is all-or-nothing.
func New(coordinates, dimensions []surface.Surface) (*Set, error) {
	if len(coordinates) != len(dimensions) {
		return nil, fmt.Errorf("%w: %d coordinates, %d dimensions", ErrLengthMismatch, len(coordinates), len(dimensions))
	}
	if len(coordinates) == 0 {
		return nil, ErrEmpty
	}
	return &Set{
		coordinates: append([]surface.Surface(nil), coordinates...),
		dimensions:  append([]surface.Surface(nil), dimensions...),
	}, nil
}

// NewFixed builds a four-region layout, the shape of a walled box.
func NewFixed(coordinates, dimensions [4]surface.Surface) *Set {
	s, _ := New(coordinates[:], dimensions[:])
	return s
}

// FromRegions builds a set from already-joined regions.
func FromRegions(rs []Region) (*Set, error) {
	coords := make([]surface.Surface, len(rs))
	dims := make([]surface.Surface, len(rs))
	for i, r := range rs {
		coords[i] = r.Surface
		coords[i].Point = r.Origin
		dims[i] = surface.New(r.Extent)
	}
	return New(coords, dims)
}

// FromLevel converts parsed TMX collision data. Every solid rect collides;
// rects with a speed multiplier become ice. Rects flagged as ice without a
// multiplier use iceMultiplier, or surface.DefaultIceMultiplier when that is
// not positive.
func FromLevel(data *leveldata.CollisionData, iceMultiplier float64) (*Set, error) {
	if data == nil {
		return nil, ErrEmpty
	}
	if iceMultiplier <= 0 {
		iceMultiplier = surface.DefaultIceMultiplier
	}
	rs := make([]Region, 0, len(data.SolidRects))
	for _, r := range data.SolidRects {
		origin := mgl64.Vec2{r.X, r.Y}
		var s surface.Surface
		switch {
		case r.SpeedMultiplier > 0:
			s = surface.NewIce(origin, r.SpeedMultiplier)
		case r.Ice:
			s = surface.NewIce(origin, iceMultiplier)
		default:
			s = surface.New(origin)
			s.SetColliding(true)
		}
		rs = append(rs, Region{Origin: origin, Extent: mgl64.Vec2{r.W, r.H}, Surface: s})
	}
	set, err := FromRegions(rs)
	if err != nil {
		return nil, fmt.Errorf("level regions: %w", err)
	}
	return set, nil
}

// Coordinates returns a copy.
func (s *Set) Coordinates() []surface.Surface {
	return append([]surface.Surface(nil), s.coordinates...)
}

// Dimensions returns a copy.
func (s *Set) Dimensions() []surface.Surface {
	return append([]surface.Surface(nil), s.dimensions...)
}

func (s *Set) Len() int { return len(s.coordinates) }

func (s *Set) Region(i int) Region {
	return Region{
		Origin:  s.coordinates[i].Point,
		Extent:  s.dimensions[i].Point,
		Surface: s.coordinates[i],
	}
}

func (s *Set) Regions() []Region {
	out := make([]Region, s.Len())
	for i := range out {
		out[i] = s.Region(i)
	}
	return out
}

// Bounds returns the smallest rectangle covering every region.
func (s *Set) Bounds() (lo, hi mgl64.Vec2) {
	for i := 0; i < s.Len(); i++ {
		r := s.Region(i)
		a, b := r.Origin, r.Origin.Add(r.Extent)
		if i == 0 {
			lo, hi = a, b
			continue
		}
		lo = mgl64.Vec2{min(lo.X(), a.X()), min(lo.Y(), a.Y())}
		hi = mgl64.Vec2{max(hi.X(), b.X()), max(hi.Y(), b.Y())}
	}
	return lo, hi
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("Walls(Coordinates: [")
	for _, c := range s.coordinates {
		b.WriteString(c.String())
		b.WriteString(", ")
	}
	b.WriteString("], Dimensions: [")
	for _, d := range s.dimensions {
		b.WriteString(d.String())
		b.WriteString(", ")
	}
	b.WriteString("])")
	return b.String()
}
