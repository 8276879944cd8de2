package combat

import (
	"fmt"

	"goblinwars/internal/config"
)

type Sprite struct {
	species     Species
	hitPoints   int
	attackPower int
}

func NewSprite(species Species, hitPoints, attackPower int) *Sprite {
	return &Sprite{species: species, hitPoints: hitPoints, attackPower: attackPower}
}

func (s *Sprite) Species() Species           { return s.species }
func (s *Sprite) HitPoints() int             { return s.hitPoints }
func (s *Sprite) Attack() int                { return s.attackPower }
func (s *Sprite) IsEnemy(other *Sprite) bool { return s.species.IsEnemy(other.species) }
func (s *Sprite) Info() string               { return fmt.Sprintf("%s(%d)", s.species, s.hitPoints) }

func (s *Sprite) Clone() *Sprite {
	c := *s
	return &c
}

// Wound subtracts power from the hit points, saturating at zero.
func (s *Sprite) Wound(power int) Status {
	s.hitPoints -= power
	if s.hitPoints < 0 {
		s.hitPoints = 0
	}
	return s.Status()
}

func (s *Sprite) Status() Status {
	if s.hitPoints == 0 {
		return Dead
	}
	return Status{Alive: true, HitPoints: s.hitPoints}
}

// StatTable maps a species to a stat, falling back to a default.
type StatTable struct {
	Default int
	species map[Species]int
}

func NewStatTable(def int) StatTable { return StatTable{Default: def} }

func (t StatTable) For(species Species, v int) StatTable {
	next := make(map[Species]int, len(t.species)+1)
	for k, x := range t.species {
		next[k] = x
	}
	next[species] = v
	t.species = next
	return t
}

func (t StatTable) Get(species Species) int {
	if v, ok := t.species[species]; ok {
		return v
	}
	return t.Default
}

type SpriteBuilder struct {
	health StatTable
	attack StatTable
}

func DefaultSpriteBuilder() SpriteBuilder {
	return SpriteBuilder{
		health: NewStatTable(config.DefaultHitPoints),
		attack: NewStatTable(config.DefaultAttackPower),
	}
}

// NewSpriteBuilder builds the stat tables from configuration.
func NewSpriteBuilder(cfg *config.Stats) (SpriteBuilder, error) {
	b := DefaultSpriteBuilder()
	if cfg == nil {
		return b, nil
	}
	if cfg.Defaults.HitPoints > 0 {
		b.health.Default = cfg.Defaults.HitPoints
	}
	if cfg.Defaults.AttackPower > 0 {
		b.attack.Default = cfg.Defaults.AttackPower
	}
	for name, st := range cfg.Species {
		species, err := ParseSpeciesName(name)
		if err != nil {
			return SpriteBuilder{}, err
		}
		if st.HitPoints > 0 {
			b = b.WithHitPoints(species, st.HitPoints)
		}
		if st.AttackPower > 0 {
			b = b.WithAttack(species, st.AttackPower)
		}
	}
	return b, nil
}

func (b SpriteBuilder) WithHitPoints(species Species, hp int) SpriteBuilder {
	b.health = b.health.For(species, hp)
	return b
}

func (b SpriteBuilder) WithAttack(species Species, power int) SpriteBuilder {
	b.attack = b.attack.For(species, power)
	return b
}

func (b SpriteBuilder) Build(species Species) *Sprite {
	return NewSprite(species, b.health.Get(species), b.attack.Get(species))
}
