package combat

// Path is the first step of a shortest route to a square in range of an
// enemy. Distance counts steps from the origin to Destination.
type Path struct {
	Destination Point
	Direction   Direction
	Distance    int
}

type cachedPath struct {
	path Path
	ok   bool
}

// Pathfinder memoizes shortest paths per origin. The cache is only valid
// while no sprite has moved or died; callers must Invalidate after either.
type Pathfinder struct {
	cache map[Point]cachedPath
}

func NewPathfinder() *Pathfinder { return &Pathfinder{cache: map[Point]cachedPath{}} }

// Invalidate drops every cached path. Any path may route through a square
// that was just vacated or occupied, so partial eviction is not enough.
func (pf *Pathfinder) Invalidate() { clear(pf.cache) }

func (pf *Pathfinder) Cached() int { return len(pf.cache) }

// FindPath returns the move for the sprite at origin. It reports false when
// the sprite is already in range of an enemy or no target square is
// reachable.
func (pf *Pathfinder) FindPath(m *Map, origin Point) (Path, bool) {
	if c, ok := pf.cache[origin]; ok {
		return c.path, c.ok
	}
	path, ok := shortestPath(m, origin)
	pf.cache[origin] = cachedPath{path: path, ok: ok}
	return path, ok
}

type frontierNode struct {
	at    Point
	first Direction
}

// shortestPath runs a level-order BFS seeded with the origin's neighbours
// in reading order. Each square keeps the first step of the earliest path
// that reached it, which is the reading-order-first step among all
// shortest paths because every level is expanded in that order.
func shortestPath(m *Map, origin Point) (Path, bool) {
	sp := m.Sprites.Get(origin)
	if sp == nil {
		return Path{}, false
	}
	if _, ok := m.Target(origin); ok {
		return Path{}, false
	}
	targets := m.TargetPoints(sp.Species())
	if len(targets) == 0 {
		return Path{}, false
	}

	visited := map[Point]bool{origin: true}
	var level []frontierNode
	for _, d := range Directions {
		next := origin.Step(d)
		if m.IsOpen(next) {
			visited[next] = true
			level = append(level, frontierNode{at: next, first: d})
		}
	}

	for dist := 1; len(level) > 0; dist++ {
		var (
			found bool
			best  frontierNode
		)
		for _, n := range level {
			if targets[n.at] && (!found || readingLess(n.at, best.at)) {
				best, found = n, true
			}
		}
		if found {
			return Path{Destination: best.at, Direction: best.first, Distance: dist}, true
		}

		var next []frontierNode
		for _, n := range level {
			for _, d := range Directions {
				q := n.at.Step(d)
				if visited[q] || !m.IsOpen(q) {
					continue
				}
				visited[q] = true
				next = append(next, frontierNode{at: q, first: n.first})
			}
		}
		level = next
	}
	return Path{}, false
}
