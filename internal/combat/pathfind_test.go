package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath(t *testing.T) {
	for _, tc := range []struct {
		name   string
		origin Point
		want   Path
		ok     bool
	}{
		{"simple.txt", Pt(1, 1), Path{Destination: Pt(3, 1), Direction: Right, Distance: 2}, true},
		{"pathfinding_multi.txt", Pt(2, 1), Path{Destination: Pt(4, 2), Direction: Right, Distance: 3}, true},
		{"pathfinding_combat.txt", Pt(1, 1), Path{}, false},
		{"pathfinding_combat.txt", Pt(4, 3), Path{Destination: Pt(1, 2), Direction: Up, Distance: 4}, true},
		{"deadlock.txt", Pt(1, 1), Path{}, false},
		{"simple.txt", Pt(3, 3), Path{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := fixtureMap(t, tc.name, DefaultSpriteBuilder())
			got, ok := NewPathfinder().FindPath(m, tc.origin)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindPathIsCached(t *testing.T) {
	m := fixtureMap(t, "pathfinding_multi.txt", DefaultSpriteBuilder())
	pf := NewPathfinder()

	first, ok := pf.FindPath(m, Pt(2, 1))
	require.True(t, ok)
	assert.Equal(t, 1, pf.Cached())

	again, _ := pf.FindPath(m, Pt(2, 1))
	assert.Equal(t, first, again)

	fresh, _ := NewPathfinder().FindPath(m, Pt(2, 1))
	assert.Equal(t, first, fresh)

	// negative results are remembered too
	_, ok = pf.FindPath(m, Pt(9, 9))
	assert.False(t, ok)
	assert.Equal(t, 2, pf.Cached())

	pf.Invalidate()
	assert.Zero(t, pf.Cached())
}

func TestFindPathAfterDeath(t *testing.T) {
	m := fixtureMap(t, "invalidation.txt", DefaultSpriteBuilder().WithAttack(Goblin, 200))
	pf := NewPathfinder()
	b := Pt(1, 3)

	before, ok := pf.FindPath(m, b)
	require.True(t, ok)
	assert.Equal(t, Path{Destination: Pt(3, 1), Direction: Right, Distance: 4}, before)

	require.Equal(t, Dead, m.strike(Pt(2, 1), Pt(1, 1)))

	stale, _ := pf.FindPath(m, b)
	assert.Equal(t, before, stale, "cache holds until invalidated")

	pf.Invalidate()
	after, ok := pf.FindPath(m, b)
	require.True(t, ok)
	assert.Equal(t, Path{Destination: Pt(1, 1), Direction: Up, Distance: 2}, after)
}

func TestFindPathMovementWalkthrough(t *testing.T) {
	m := fixtureMap(t, "movement/0.txt", DefaultSpriteBuilder())
	pf := NewPathfinder()

	// the elf in the middle heads for the goblin above it
	p, ok := pf.FindPath(m, Pt(4, 4))
	require.True(t, ok)
	assert.Equal(t, Up, p.Direction)
	assert.Equal(t, Pt(4, 2), p.Destination)
	assert.Equal(t, 2, p.Distance)

	// the goblin in the top left corner steps right first
	p, ok = pf.FindPath(m, Pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, Right, p.Direction)
}
