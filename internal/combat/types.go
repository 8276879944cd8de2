package combat

import (
	"strings"

	"github.com/pkg/errors"
)

// Event is one entry of the battle log. T is the round number.
type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Species int

const (
	Elf Species = iota
	Goblin
)

var AllSpecies = []Species{Elf, Goblin}

func (s Species) IsEnemy(other Species) bool { return s != other }

func (s Species) Glyph() rune {
	if s == Elf {
		return 'E'
	}
	return 'G'
}

func (s Species) String() string { return string(s.Glyph()) }

func (s Species) Name() string {
	if s == Elf {
		return "elf"
	}
	return "goblin"
}

func (s Species) Plural() string {
	if s == Elf {
		return "Elves"
	}
	return "Goblins"
}

func ParseSpecies(r rune) (Species, bool) {
	switch r {
	case 'E':
		return Elf, true
	case 'G':
		return Goblin, true
	}
	return 0, false
}

// ParseSpeciesName accepts the singular or plural name in any case.
func ParseSpeciesName(name string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "elf", "elves", "e":
		return Elf, nil
	case "goblin", "goblins", "g":
		return Goblin, nil
	}
	return 0, errors.Errorf("unknown species %q", name)
}

// Status is the result of wounding a sprite.
type Status struct {
	Alive     bool
	HitPoints int
}

var Dead = Status{}

func (s Status) String() string {
	if !s.Alive {
		return "dead"
	}
	return "alive"
}
