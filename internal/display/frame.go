package display

import (
	"strings"

	"goblinwars/internal/combat"
)

type Cell struct {
	Glyph   rune
	Sprite  bool
	Species combat.Species
}

// Row is one line of the map plus the hit points of the sprites on it.
type Row struct {
	Cells []Cell
	Notes string
}

// Frame is a snapshot laid out for drawing. Offset is the first visible
// row.
type Frame struct {
	Round  int
	Rows   []Row
	Status string
	Done   bool
	Offset int
}

func NewFrame(u Update) Frame {
	f := Frame{Round: u.Round, Status: u.Status, Done: u.Done}
	if u.Map == nil {
		return f
	}
	m := u.Map
	box := m.BBox().Margin(1)
	for y := box.Top; y <= box.Bottom; y++ {
		var row Row
		var notes []string
		for x := box.Left; x <= box.Right; x++ {
			p := combat.Pt(x, y)
			if sp := m.Sprites.Get(p); sp != nil {
				row.Cells = append(row.Cells, Cell{Glyph: sp.Species().Glyph(), Sprite: true, Species: sp.Species()})
				notes = append(notes, sp.Info())
				continue
			}
			row.Cells = append(row.Cells, Cell{Glyph: []rune(m.Grid.Get(p).String())[0]})
		}
		row.Notes = strings.Join(notes, ", ")
		f.Rows = append(f.Rows, row)
	}
	return f
}

// Next folds an update into the frame. A status-only update keeps the last
// map; the scroll position always carries over.
func (f Frame) Next(u Update) Frame {
	n := NewFrame(u)
	if u.Map == nil {
		n.Rows = f.Rows
		n.Round = f.Round
	}
	if n.Status == "" {
		n.Status = f.Status
	}
	n.Offset = f.Offset
	n.Scroll(0)
	return n
}

func (f *Frame) Scroll(delta int) {
	f.Offset = min(max(f.Offset+delta, 0), max(len(f.Rows)-1, 0))
}

// Visible returns at most height rows starting at Offset.
func (f Frame) Visible(height int) []Row {
	if f.Offset >= len(f.Rows) || height <= 0 {
		return nil
	}
	return f.Rows[f.Offset:min(f.Offset+height, len(f.Rows))]
}

func (r Row) String() string {
	var sb strings.Builder
	for _, c := range r.Cells {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}
