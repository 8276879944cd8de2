package combat

import "slices"

// Sprites holds the live sprites keyed by position. At most one sprite
// occupies a point.
type Sprites struct {
	byPos map[Point]*Sprite
}

func NewSprites() *Sprites { return &Sprites{byPos: map[Point]*Sprite{}} }

func (s *Sprites) Len() int              { return len(s.byPos) }
func (s *Sprites) Get(p Point) *Sprite   { return s.byPos[p] }
func (s *Sprites) Occupied(p Point) bool { return s.byPos[p] != nil }

// Each visits the sprites in reading order.
func (s *Sprites) Each(fn func(Point, *Sprite)) {
	for _, p := range s.Positions() {
		fn(p, s.byPos[p])
	}
}

// Place puts a sprite at p. It reports false when p is already taken.
func (s *Sprites) Place(p Point, sp *Sprite) bool {
	if s.Occupied(p) {
		return false
	}
	s.byPos[p] = sp
	return true
}

// Positions returns every occupied point in reading order.
func (s *Sprites) Positions() []Point {
	out := make([]Point, 0, len(s.byPos))
	for p := range s.byPos {
		out = append(out, p)
	}
	slices.SortFunc(out, ReadingOrder)
	return out
}

// Step moves the sprite at p one square in direction d. The destination
// must be free; the sprite is never visible at both points.
func (s *Sprites) Step(p Point, d Direction) bool {
	sp, ok := s.byPos[p]
	if !ok {
		return false
	}
	to := p.Step(d)
	if s.Occupied(to) {
		return false
	}
	delete(s.byPos, p)
	s.byPos[to] = sp
	return true
}

// Attack wounds the target with the aggressor's power. Corpses are removed
// from the battlefield immediately.
func (s *Sprites) Attack(aggressor, target Point) Status {
	a, v := s.byPos[aggressor], s.byPos[target]
	if a == nil || v == nil {
		return Dead
	}
	st := v.Wound(a.Attack())
	if !st.Alive {
		delete(s.byPos, target)
	}
	return st
}

// Victorious reports the species left standing once no enemies remain.
func (s *Sprites) Victorious() (Species, bool) {
	var first *Sprite
	for _, sp := range s.byPos {
		if first == nil {
			first = sp
			continue
		}
		if sp.IsEnemy(first) {
			return 0, false
		}
	}
	if first == nil {
		return 0, false
	}
	return first.Species(), true
}

func (s *Sprites) Alive(species Species) int {
	n := 0
	for _, sp := range s.byPos {
		if sp.Species() == species {
			n++
		}
	}
	return n
}

// HitPoints sums the hit points of every live sprite.
func (s *Sprites) HitPoints() int {
	total := 0
	for _, sp := range s.byPos {
		total += sp.HitPoints()
	}
	return total
}

func (s *Sprites) BBox() BoundingBox {
	b := EmptyBox()
	for p := range s.byPos {
		b.Include(p)
	}
	return b
}

func (s *Sprites) Clone() *Sprites {
	out := &Sprites{byPos: make(map[Point]*Sprite, len(s.byPos))}
	for p, sp := range s.byPos {
		out.byPos[p] = sp.Clone()
	}
	return out
}
