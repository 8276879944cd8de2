package combat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ParseError reports a malformed map. Line and Col are 1-based.
type ParseError struct {
	Line, Col int
	Char      rune
	Reason    string
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("map line %d col %d: %s %q", e.Line, e.Col, e.Reason, e.Char)
	}
	return fmt.Sprintf("map line %d: %s", e.Line, e.Reason)
}

type MapBuilder struct {
	sprites SpriteBuilder
}

func NewMapBuilder(sprites SpriteBuilder) MapBuilder { return MapBuilder{sprites: sprites} }

func DefaultMapBuilder() MapBuilder { return NewMapBuilder(DefaultSpriteBuilder()) }

func (b MapBuilder) Sprites() SpriteBuilder { return b.sprites }

// Build parses a rectangular block of '.', '#', 'E' and 'G'. Surrounding
// whitespace on each line and blank lines are ignored.
func (b MapBuilder) Build(text string) (*Map, error) {
	m := NewMap()
	width, y := -1, 0
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row := []rune(line)
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &ParseError{Line: i + 1, Reason: fmt.Sprintf("non-rectangular row of width %d, want %d", len(row), width)}
		}
		for x, r := range row {
			p := Point{x, y}
			if t, ok := ParseTile(r); ok {
				m.Grid.Insert(p, t)
				continue
			}
			species, ok := ParseSpecies(r)
			if !ok {
				return nil, &ParseError{Line: i + 1, Col: x + 1, Char: r, Reason: "unknown tile"}
			}
			m.Grid.Insert(p, Open)
			m.Sprites.Place(p, b.sprites.Build(species))
		}
		y++
	}
	if width < 0 {
		return nil, errors.New("empty map")
	}
	return m, nil
}
