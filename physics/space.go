// Package physics moves kinematic bodies and reports overlaps between kinds
//
// Broad-phase candidate selection uses a resolv grid space, every candidate
// is confirmed against the exact boxes held in the world before a callback fires
package physics

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/tilemap"
)

// Broad-phase grid cell, one per map tile
const cellSize = int(constants.TileSize)

var kindTags = map[components.Kind]resolv.Tags{
	components.KindPlayer:     resolv.NewTag("player"),
	components.KindEnemy:      resolv.NewTag("enemy"),
	components.KindScrap:      resolv.NewTag("scrap"),
	components.KindEnergyCell: resolv.NewTag("energy_cell"),
}

// OverlapFunc receives the two overlapping entities, a is of the first registered kind
type OverlapFunc func(a, b engine.Entity)

type overlapHandler struct {
	a, b components.Kind
	fn   OverlapFunc
}

// Space owns the broad-phase shapes for tracked bodies
type Space struct {
	world  *engine.World
	level  *tilemap.Map
	width  float64
	height float64

	space    *resolv.Space
	shapes   map[engine.Entity]resolv.IShape
	owners   map[resolv.IShape]engine.Entity
	handlers []overlapHandler
}

// NewSpace creates a space sized to level, nil level uses the default world bounds without walls
func NewSpace(world *engine.World, level *tilemap.Map) *Space {
	w, h := constants.DefaultWorldWidth, constants.DefaultWorldHeight
	if level != nil && level.Width() > 0 && level.Height() > 0 {
		w, h = level.Width(), level.Height()
	}
	return &Space{
		world:  world,
		level:  level,
		width:  w,
		height: h,
		space:  resolv.NewSpace(int(math.Ceil(w)), int(math.Ceil(h)), cellSize, cellSize),
		shapes: make(map[engine.Entity]resolv.IShape),
		owners: make(map[resolv.IShape]engine.Entity),
	}
}

// Bounds returns the world size
func (s *Space) Bounds() (width, height float64) {
	return s.width, s.height
}

// Level returns the wall layout, nil when the space has none
func (s *Space) Level() *tilemap.Map {
	return s.level
}

// Track adds the body of e to the broad-phase under its kind tag
func (s *Space) Track(e engine.Entity) {
	body, ok := s.world.Bodies.GetComponent(e)
	if !ok {
		return
	}
	kind, ok := s.world.KindOf(e)
	if !ok {
		return
	}
	if _, exists := s.shapes[e]; exists {
		s.Untrack(e)
	}

	minX, minY, _, _ := body.Bounds()
	sh := resolv.NewRectangleTopLeft(minX, minY, body.W, body.H)
	sh.Tags().Set(kindTags[kind])
	s.space.Add(sh)
	s.shapes[e] = sh
	s.owners[sh] = e
	s.sync(e, body)
}

// Untrack removes e from the broad-phase
func (s *Space) Untrack(e engine.Entity) {
	sh, ok := s.shapes[e]
	if !ok {
		return
	}
	s.space.Remove(sh)
	delete(s.shapes, e)
	delete(s.owners, sh)
}

// Tracked returns the number of bodies in the broad-phase
func (s *Space) Tracked() int {
	return len(s.shapes)
}

// OnOverlap registers fn for every overlap between a body of kind a and one of kind b
// Handlers run in registration order during Overlaps
func (s *Space) OnOverlap(a, b components.Kind, fn OverlapFunc) {
	s.handlers = append(s.handlers, overlapHandler{a: a, b: b, fn: fn})
}

// Relocate teleports e to x,y and stops it
func (s *Space) Relocate(e engine.Entity, x, y float64) {
	s.world.Bodies.Update(e, func(b *components.BodyComponent) {
		b.X, b.Y = x, y
		b.VX, b.VY = 0, 0
	})
	if body, ok := s.world.Bodies.GetComponent(e); ok {
		s.sync(e, body)
	}
}

// Step integrates velocities by dt, resolving walls per axis and clamping to bounds
func (s *Space) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	for _, e := range s.world.Bodies.GetAllEntities() {
		body, ok := s.world.Bodies.GetComponent(e)
		if !ok || !body.Enabled || (body.VX == 0 && body.VY == 0) {
			continue
		}

		if body.VX != 0 {
			next := body
			next.X += body.VX * secs
			if s.blocked(body, next) {
				next.X = s.slideX(body, next)
			}
			body = next
		}
		if body.VY != 0 {
			next := body
			next.Y += body.VY * secs
			if s.blocked(body, next) {
				next.Y = s.slideY(body, next)
			}
			body = next
		}
		body = s.clamp(body)

		s.world.Bodies.SetComponent(e, body)
		s.sync(e, body)
	}
}

// Overlaps fires the registered handlers for every confirmed overlapping pair
// Each pair is re-checked just before its callback, so earlier callbacks that
// relocate a body are respected
func (s *Space) Overlaps() {
	for _, h := range s.handlers {
		tag := kindTags[h.b]
		for _, a := range s.entitiesOfKind(h.a) {
			sh, ok := s.shapes[a]
			if !ok {
				continue
			}

			var candidates []engine.Entity
			sh.IntersectionTest(resolv.IntersectionTestSettings{
				TestAgainst: sh.SelectTouchingCells(1).FilterShapes().ByTags(tag),
				OnIntersect: func(set resolv.IntersectionSet) bool {
					if other, ok := s.owners[set.OtherShape]; ok {
						candidates = append(candidates, other)
					}
					return true
				},
			})

			for _, b := range candidates {
				if s.touching(a, b) {
					h.fn(a, b)
				}
			}
		}
	}
}

// touching confirms an overlap between two enabled bodies
func (s *Space) touching(a, b engine.Entity) bool {
	if a == b {
		return false
	}
	ba, ok := s.world.Bodies.GetComponent(a)
	if !ok || !ba.Enabled {
		return false
	}
	bb, ok := s.world.Bodies.GetComponent(b)
	if !ok || !bb.Enabled {
		return false
	}
	return ba.Overlaps(bb)
}

func (s *Space) entitiesOfKind(kind components.Kind) []engine.Entity {
	var out []engine.Entity
	for _, e := range s.world.Kinds.GetAllEntities() {
		if k, ok := s.world.KindOf(e); ok && k == kind {
			if _, tracked := s.shapes[e]; tracked {
				out = append(out, e)
			}
		}
	}
	return out
}

// blocked reports whether moving from prev to next enters a wall
// A body already inside a wall may move freely until it is out
func (s *Space) blocked(prev, next components.BodyComponent) bool {
	if s.level == nil {
		return false
	}
	if s.level.OverlapsSolid(prev.Bounds()) {
		return false
	}
	return s.level.OverlapsSolid(next.Bounds())
}

// slideX returns the X that puts the box flush against the tile edge it ran into
func (s *Space) slideX(prev, next components.BodyComponent) float64 {
	ts := s.level.TileSize()
	hw := prev.W / 2
	if next.X > prev.X {
		edge := math.Floor((next.X+hw)/ts) * ts
		return math.Max(prev.X, edge-hw)
	}
	edge := math.Ceil((next.X-hw)/ts) * ts
	return math.Min(prev.X, edge+hw)
}

// slideY returns the Y that puts the box flush against the tile edge it ran into
func (s *Space) slideY(prev, next components.BodyComponent) float64 {
	ts := s.level.TileSize()
	hh := prev.H / 2
	if next.Y > prev.Y {
		edge := math.Floor((next.Y+hh)/ts) * ts
		return math.Max(prev.Y, edge-hh)
	}
	edge := math.Ceil((next.Y-hh)/ts) * ts
	return math.Min(prev.Y, edge+hh)
}

// clamp keeps the box inside the world bounds
func (s *Space) clamp(b components.BodyComponent) components.BodyComponent {
	hw, hh := b.W/2, b.H/2
	b.X = math.Max(hw, math.Min(s.width-hw, b.X))
	b.Y = math.Max(hh, math.Min(s.height-hh, b.Y))
	return b
}

// sync moves the broad-phase shape to the body's position
func (s *Space) sync(e engine.Entity, body components.BodyComponent) {
	sh, ok := s.shapes[e]
	if !ok {
		return
	}
	sh.SetPosition(body.X, body.Y)
}
