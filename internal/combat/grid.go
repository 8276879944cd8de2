package combat

type Tile int

const (
	Wall Tile = iota
	Open
)

func (t Tile) String() string {
	if t == Open {
		return "."
	}
	return "#"
}

func ParseTile(r rune) (Tile, bool) {
	switch r {
	case '.':
		return Open, true
	case '#':
		return Wall, true
	}
	return Wall, false
}

// Grid records the open ground. Any point not explicitly opened is a wall,
// which keeps movement inside the parsed footprint.
type Grid struct {
	open map[Point]struct{}
}

func NewGrid() *Grid { return &Grid{open: map[Point]struct{}{}} }

func (g *Grid) Len() int { return len(g.open) }

// Insert records a tile and reports whether the grid changed.
func (g *Grid) Insert(p Point, t Tile) bool {
	_, was := g.open[p]
	if t == Open {
		g.open[p] = struct{}{}
		return !was
	}
	delete(g.open, p)
	return was
}

func (g *Grid) Get(p Point) Tile {
	if _, ok := g.open[p]; ok {
		return Open
	}
	return Wall
}

func (g *Grid) BBox() BoundingBox {
	b := EmptyBox()
	for p := range g.open {
		b.Include(p)
	}
	return b
}

func (g *Grid) Clone() *Grid {
	out := &Grid{open: make(map[Point]struct{}, len(g.open))}
	for p := range g.open {
		out.open[p] = struct{}{}
	}
	return out
}
