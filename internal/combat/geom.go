package combat

import (
	"fmt"
	"math"
)

type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) String() string    { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Distance is the manhattan distance between two points.
func (p Point) Distance(q Point) int {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y)
}

func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

// Adjacent lists the four neighbours of p in reading order.
func (p Point) Adjacent() [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = p.Step(d)
	}
	return out
}

// ReadingOrder compares points top-to-bottom, then left-to-right.
func ReadingOrder(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

func readingLess(a, b Point) bool { return ReadingOrder(a, b) < 0 }

type Direction int

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Directions enumerates the moves so that the resulting points are in
// reading order from the origin.
var Directions = [4]Direction{Up, Left, Right, Down}

func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{0, -1}
	case Left:
		return Point{-1, 0}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, 1}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

type BoundingBox struct {
	Left, Right, Top, Bottom int
}

func EmptyBox() BoundingBox {
	return BoundingBox{Left: math.MaxInt, Right: math.MinInt, Top: math.MaxInt, Bottom: math.MinInt}
}

func (b BoundingBox) IsEmpty() bool { return b.Left > b.Right || b.Top > b.Bottom }

func (b *BoundingBox) Include(p Point) {
	b.Left = min(b.Left, p.X)
	b.Right = max(b.Right, p.X)
	b.Top = min(b.Top, p.Y)
	b.Bottom = max(b.Bottom, p.Y)
}

func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
		Top:    min(b.Top, o.Top),
		Bottom: max(b.Bottom, o.Bottom),
	}
}

// Margin grows the box by n on every side. An empty box stays empty.
func (b BoundingBox) Margin(n int) BoundingBox {
	if b.IsEmpty() {
		return b
	}
	return BoundingBox{Left: b.Left - n, Right: b.Right + n, Top: b.Top - n, Bottom: b.Bottom + n}
}

func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

func (b BoundingBox) OnEdge(p Point) bool {
	return b.Contains(p) && (p.X == b.Left || p.X == b.Right || p.Y == b.Top || p.Y == b.Bottom)
}

func (b BoundingBox) Width() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Right - b.Left + 1
}

func (b BoundingBox) Height() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Bottom - b.Top + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
