package world

import (
	"context"
	"math/rand/v2"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavewalk/internal/telemetry"
)

// Synthesizer turns a seed into a smoothed cave grid.
type Synthesizer struct {
	params Params
}

// NewSynthesizer creates a synthesizer bound to a fixed parameter set.
func NewSynthesizer(p Params) *Synthesizer {
	return &Synthesizer{params: p}
}

// Params returns the parameters the synthesizer was built with.
func (s *Synthesizer) Params() Params {
	return s.params
}

// RandomGrid fills a grid with independent rock/floor draws. The generator is
// created from the seed on every call so the result depends on nothing else.
func (s *Synthesizer) RandomGrid(seed Seed) Grid {
	rng := rand.New(rand.NewPCG(seed.Hi, seed.Lo))
	size := s.params.Size
	g := make(Grid, size)
	for row := range g {
		g[row] = make([]Cell, size)
		for col := range g[row] {
			if rng.Float64() < s.params.RockRate {
				g[row][col] = CellRock
			} else {
				g[row][col] = CellFloor
			}
		}
	}
	return g
}

// Smooth applies the configured number of cellular automaton passes.
// Each pass reads only the previous pass's grid.
func (s *Synthesizer) Smooth(g Grid) Grid {
	if s.params.Iterations == 0 {
		return g
	}
	size := len(g)
	cur := g.Clone()
	nxt := NewGrid(size, CellFloor)
	for i := 0; i < s.params.Iterations; i++ {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if CountRockNeighbors(cur, row, col, s.params.Radius) >= s.params.Threshold {
					nxt[row][col] = CellRock
				} else {
					nxt[row][col] = CellFloor
				}
			}
		}
		cur, nxt = nxt, cur
	}
	return cur
}

// Synthesize produces the final grid for a seed.
func (s *Synthesizer) Synthesize(ctx context.Context, seed Seed) Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.synthesize")
	defer span.End()

	g := s.Smooth(s.RandomGrid(seed))

	span.SetAttributes(
		attribute.String("grid.seed", seed.String()),
		attribute.Int("grid.size", s.params.Size),
		attribute.Int("grid.rock_cells", g.Count(CellRock)),
	)
	return g
}

// CountRockNeighbors counts rock cells in the square of the given radius
// around (row, col), the cell itself included. Out-of-bounds cells are skipped.
func CountRockNeighbors(g Grid, row, col, radius int) int {
	size := len(g)
	count := 0
	for r := max(row-radius, 0); r <= min(row+radius, size-1); r++ {
		for c := max(col-radius, 0); c <= min(col+radius, size-1); c++ {
			if g[r][c] == CellRock {
				count++
			}
		}
	}
	return count
}
