package combat

import "strings"

// Element is what occupies a point: a tile, or a sprite standing on open
// ground.
type Element struct {
	Tile    Tile
	Sprite  bool
	Species Species
}

func (e Element) IsEmpty() bool { return !e.Sprite && e.Tile == Open }

func (e Element) String() string {
	if e.Sprite {
		return e.Species.String()
	}
	return e.Tile.String()
}

type Map struct {
	Grid    *Grid
	Sprites *Sprites
}

func NewMap() *Map { return &Map{Grid: NewGrid(), Sprites: NewSprites()} }

func (m *Map) Element(p Point) Element {
	if sp := m.Sprites.Get(p); sp != nil {
		return Element{Tile: Open, Sprite: true, Species: sp.Species()}
	}
	return Element{Tile: m.Grid.Get(p)}
}

// IsOpen reports open ground with nobody standing on it.
func (m *Map) IsOpen(p Point) bool { return m.Grid.Get(p) == Open && !m.Sprites.Occupied(p) }

func (m *Map) BBox() BoundingBox { return m.Grid.BBox().Union(m.Sprites.BBox()) }

// Score is the sum of the hit points of every survivor.
func (m *Map) Score() int { return m.Sprites.HitPoints() }

func (m *Map) Victorious() (Species, bool) { return m.Sprites.Victorious() }

// Target picks the adjacent enemy to attack from p: fewest hit points
// first, then reading order.
func (m *Map) Target(p Point) (Point, bool) {
	sp := m.Sprites.Get(p)
	if sp == nil {
		return Point{}, false
	}
	var (
		best  Point
		bestS *Sprite
	)
	for _, q := range p.Adjacent() {
		e := m.Sprites.Get(q)
		if e == nil || !sp.IsEnemy(e) {
			continue
		}
		// Adjacent is already in reading order, so only strictly fewer
		// hit points displace the current pick.
		if bestS == nil || e.HitPoints() < bestS.HitPoints() {
			best, bestS = q, e
		}
	}
	return best, bestS != nil
}

// TargetPoints is the set of free squares in range of an enemy of species.
func (m *Map) TargetPoints(species Species) map[Point]bool {
	out := map[Point]bool{}
	for p, sp := range m.Sprites.byPos {
		if !species.IsEnemy(sp.Species()) {
			continue
		}
		for _, q := range p.Adjacent() {
			if m.IsOpen(q) {
				out[q] = true
			}
		}
	}
	return out
}

func (m *Map) move(p Point, d Direction) bool { return m.Sprites.Step(p, d) }

func (m *Map) strike(aggressor, target Point) Status { return m.Sprites.Attack(aggressor, target) }

func (m *Map) Clone() *Map { return &Map{Grid: m.Grid.Clone(), Sprites: m.Sprites.Clone()} }

// String renders the map over its bounding box plus a one tile border.
func (m *Map) String() string { return m.render(false) }

// Status renders the map with the hit points of each row's sprites
// appended, the format used by the reference transcripts.
func (m *Map) Status() string { return m.render(true) }

func (m *Map) render(annotate bool) string {
	var sb strings.Builder
	box := m.BBox().Margin(1)
	var infos []string
	for y := box.Top; y <= box.Bottom; y++ {
		infos = infos[:0]
		for x := box.Left; x <= box.Right; x++ {
			p := Point{x, y}
			if sp := m.Sprites.Get(p); sp != nil {
				sb.WriteRune(sp.Species().Glyph())
				infos = append(infos, sp.Info())
				continue
			}
			sb.WriteString(m.Grid.Get(p).String())
		}
		if annotate && len(infos) > 0 {
			sb.WriteString("   ")
			sb.WriteString(strings.Join(infos, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
