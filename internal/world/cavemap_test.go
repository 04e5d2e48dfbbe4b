package world

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T, opts ...Option) *Map {
	t.Helper()
	m, err := NewMapWithParams(testParams(), append([]Option{WithEntropy(testEntropy(7))}, opts...)...)
	require.NoError(t, err)
	return m
}

func TestNewMapExpandsOrigin(t *testing.T) {
	m := newTestMap(t)

	assert.Equal(t, Coord{}, m.Position())
	assert.Equal(t, 5, m.Visited())
	for _, pos := range Positions {
		_, ok := m.SeedAt(Coord{}.Neighbor(pos))
		assert.True(t, ok, "origin %s not seeded", pos)
	}
	assert.NotEqual(t, [16]byte{}, [16]byte(m.SessionID()))
}

func TestNewMapWithOrigin(t *testing.T) {
	m := newTestMap(t, WithOrigin(Coord{Y: -5, X: 12}))
	assert.Equal(t, Coord{Y: -5, X: 12}, m.Position())
	_, ok := m.SeedAt(Coord{Y: -4, X: 12})
	assert.True(t, ok)
}

func TestNewMapWithParamsRejectsInvalid(t *testing.T) {
	_, err := NewMapWithParams(Params{RockRate: 2, Size: 10})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestMapGoAndBack(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	for _, dir := range Directions {
		start := m.Position()
		m.Go(ctx, dir)
		assert.Equal(t, start.Step(dir), m.Position())
		assert.Equal(t, start, m.Go(ctx, dir.Opposite()))
	}
}

func TestMapGoExpandsNeighborhood(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	origin, _ := m.SeedAt(Coord{})
	pos := m.Go(ctx, North)
	assert.Equal(t, Coord{Y: 1, X: 0}, pos)
	assert.Equal(t, 8, m.Visited())

	m.Go(ctx, East)
	m.Go(ctx, South)
	m.Go(ctx, West)
	after, _ := m.SeedAt(Coord{})
	assert.Equal(t, origin, after, "seeds must never change once assigned")
}

func TestCurrentGridRepeatable(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	first := m.CurrentGrid(ctx)
	second := m.CurrentGrid(ctx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("CurrentGrid changed between calls (-first +second):\n%s", diff)
	}

	m.Go(ctx, West)
	m.Go(ctx, East)
	third := m.CurrentGrid(ctx)
	assert.Empty(t, cmp.Diff(first, third), "returning to a grid must reproduce it")
	assert.Equal(t, testParams().Size, third.Size())
}

func TestCurrentGridMatchesSynthesisOutsideCorridors(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	seed, ok := m.SeedAt(Coord{})
	require.True(t, ok)
	raw := NewSynthesizer(m.Params()).Synthesize(ctx, seed)
	got := m.CurrentGrid(ctx)

	// Reinforcement only opens rock, so every raw floor stays floor and
	// rock count can only drop.
	for row := range raw {
		for col := range raw[row] {
			if raw[row][col] == CellFloor {
				assert.Equal(t, CellFloor, got[row][col])
			}
		}
	}
	assert.LessOrEqual(t, got.Count(CellRock), raw.Count(CellRock))
}

func TestCurrentPentagridBordersConnected(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	for _, dir := range []Direction{North, North, East, South, West, West} {
		m.Go(ctx, dir)
		p := m.CurrentPentagrid(ctx)
		for _, border := range Directions {
			open := false
			for lane := 0; lane < testParams().Size; lane++ {
				cur, nb := borderCells(&p, border, lane)
				if cur == CellFloor && nb == CellFloor {
					open = true
					break
				}
			}
			assert.True(t, open, "%s border at %s has no crossing", border, m.Position())
		}
	}
}

func TestMapConcurrentAccess(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(dir Direction) {
			defer wg.Done()
			m.Go(ctx, dir)
			m.CurrentGrid(ctx)
			m.Go(ctx, dir.Opposite())
		}(Directions[i%4])
	}
	wg.Wait()

	assert.Equal(t, Coord{}, m.Position())
}
