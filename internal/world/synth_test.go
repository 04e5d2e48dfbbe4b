package world

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDeterministic(t *testing.T) {
	synth := NewSynthesizer(DefaultParams())
	ctx := context.Background()

	for _, seed := range []Seed{{0, 42}, {1 << 63, 7}, {0xdeadbeef, 0xcafef00d}} {
		a := synth.Synthesize(ctx, seed)
		// Draw unrelated grids in between to disturb any shared state.
		synth.Synthesize(ctx, Seed{Hi: seed.Lo, Lo: seed.Hi})
		b := synth.Synthesize(ctx, seed)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Synthesize(%s) not deterministic (-first +second):\n%s", seed, diff)
		}
	}
}

func TestSynthesizeDifferentSeeds(t *testing.T) {
	synth := NewSynthesizer(DefaultParams())
	ctx := context.Background()

	a := synth.Synthesize(ctx, Seed{Lo: 1})
	b := synth.Synthesize(ctx, Seed{Lo: 2})
	assert.False(t, cmp.Equal(a, b), "grids from different seeds should differ")
}

func TestGridBounds(t *testing.T) {
	tests := []Params{
		{RockRate: 0.5, Iterations: 4, Threshold: 5, Radius: 1, Size: 50},
		{RockRate: 0.45, Iterations: 0, Threshold: 5, Radius: 1, Size: 1},
		{RockRate: 0.6, Iterations: 2, Threshold: 13, Radius: 2, Size: 7},
		{RockRate: 0.3, Iterations: 3, Threshold: 0, Radius: 0, Size: 12},
	}

	for _, p := range tests {
		g := NewSynthesizer(p).Synthesize(context.Background(), Seed{Lo: 99})
		assert.Len(t, g, p.Size)
		for row := range g {
			assert.Len(t, g[row], p.Size)
			for _, c := range g[row] {
				assert.True(t, c == CellFloor || c == CellRock, "cell %d out of range", c)
			}
		}
	}
}

func TestRandomGridExtremes(t *testing.T) {
	p := Params{RockRate: 0, Iterations: 0, Threshold: 5, Radius: 1, Size: 5}
	floor := NewSynthesizer(p).Synthesize(context.Background(), Seed{Lo: 42})
	assert.Empty(t, cmp.Diff(NewGrid(5, CellFloor), floor))

	p.RockRate = 1
	rock := NewSynthesizer(p).Synthesize(context.Background(), Seed{Lo: 42})
	assert.Empty(t, cmp.Diff(NewGrid(5, CellRock), rock))
}

func TestSmoothZeroIterationsIsIdentity(t *testing.T) {
	p := Params{RockRate: 0.5, Iterations: 0, Threshold: 5, Radius: 1, Size: 9}
	synth := NewSynthesizer(p)
	raw := synth.RandomGrid(Seed{Lo: 3})
	assert.Empty(t, cmp.Diff(raw, synth.Smooth(raw)))
}

func TestSmoothDoesNotMutateInput(t *testing.T) {
	p := Params{RockRate: 0.5, Iterations: 3, Threshold: 5, Radius: 1, Size: 9}
	synth := NewSynthesizer(p)
	raw := synth.RandomGrid(Seed{Lo: 3})
	before := raw.Clone()
	synth.Smooth(raw)
	assert.Empty(t, cmp.Diff(before, raw))
}

func TestSmoothSingleRock(t *testing.T) {
	g := NewGrid(3, CellFloor)
	g[1][1] = CellRock

	// Every cell of a 3x3 grid sees the center, so a threshold of one spreads it.
	spread := NewSynthesizer(Params{Iterations: 1, Threshold: 1, Radius: 1, Size: 3}).Smooth(g)
	assert.Equal(t, 9, spread.Count(CellRock))

	// A lone rock falls short of the default threshold and erodes.
	eroded := NewSynthesizer(Params{Iterations: 1, Threshold: 5, Radius: 1, Size: 3}).Smooth(g)
	assert.Equal(t, 9, eroded.Count(CellFloor))
}

func TestSmoothUsesPreviousPassOnly(t *testing.T) {
	// With threshold and radius one, a rock row grows by exactly one row per pass.
	g := NewGrid(5, CellFloor)
	for col := range g[0] {
		g[0][col] = CellRock
	}
	out := NewSynthesizer(Params{Iterations: 1, Threshold: 1, Radius: 1, Size: 5}).Smooth(g)

	for col := 0; col < 5; col++ {
		assert.Equal(t, CellRock, out[0][col])
		assert.Equal(t, CellRock, out[1][col])
		assert.Equal(t, CellFloor, out[2][col], "rock must not spread twice in one pass")
	}
}

func TestCountRockNeighbors(t *testing.T) {
	g := NewGrid(4, CellRock)

	tests := []struct {
		row, col, radius int
		want             int
	}{
		{0, 0, 1, 4},
		{1, 1, 1, 9},
		{0, 3, 1, 4},
		{3, 1, 1, 6},
		{1, 1, 0, 1},
		{1, 1, 5, 16},
	}

	for _, tt := range tests {
		got := CountRockNeighbors(g, tt.row, tt.col, tt.radius)
		if got != tt.want {
			t.Errorf("CountRockNeighbors(%d,%d,r=%d) = %d, want %d", tt.row, tt.col, tt.radius, got, tt.want)
		}
	}
}
