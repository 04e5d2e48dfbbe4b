package world

import "context"

// Pentagrid holds the current grid and its four cardinal neighbors, indexed by Position.
type Pentagrid [5]Grid

// At returns the grid in the given slot.
func (p *Pentagrid) At(pos Position) Grid {
	return p[pos]
}

// Current returns the grid at the current coordinate.
func (p *Pentagrid) Current() Grid {
	return p[PosCurrent]
}

// Assemble synthesizes the five grids around coord. Each grid depends only on
// its own seed; resolving the seeds may add entries to the table.
func Assemble(ctx context.Context, table *SeedTable, synth *Synthesizer, coord Coord) Pentagrid {
	var p Pentagrid
	for _, pos := range Positions {
		p[pos] = synth.Synthesize(ctx, table.Resolve(coord.Neighbor(pos)))
	}
	return p
}
