package world

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavewalk/internal/telemetry"
)

// Corridor records the lane carved across one border of the current grid.
type Corridor struct {
	Border Direction
	Lane   int // index along the border
	Cost   int // rock cells converted to floor
}

// borderSide addresses the cells of one grid by lane and depth from a border.
type borderSide struct {
	grid      Grid
	laneIsCol bool // lanes run along rows (lane selects a column)
	fromEnd   bool // border is the last row/column
}

// at returns the cell depth steps in from the border on the given lane.
func (s borderSide) at(lane, depth int) *Cell {
	inner := depth
	if s.fromEnd {
		inner = len(s.grid) - 1 - depth
	}
	if s.laneIsCol {
		return &s.grid[inner][lane]
	}
	return &s.grid[lane][inner]
}

// rockRun counts contiguous rock cells from the border inward.
func (s borderSide) rockRun(lane int) int {
	n := 0
	for depth := 0; depth < len(s.grid); depth++ {
		if *s.at(lane, depth) == CellFloor {
			break
		}
		n++
	}
	return n
}

// carve turns the leading rock run of a lane into floor.
func (s borderSide) carve(lane int) {
	for depth := 0; depth < len(s.grid); depth++ {
		c := s.at(lane, depth)
		if *c == CellFloor {
			return
		}
		*c = CellFloor
	}
}

// borderSides returns the current-side and neighbor-side views of a border.
// Row 0 of the current grid faces north and column 0 faces west.
func borderSides(p *Pentagrid, dir Direction) (cur, nb borderSide) {
	current, neighbor := p[PosCurrent], p[dir.Position()]
	switch dir {
	case North:
		return borderSide{current, true, false}, borderSide{neighbor, true, true}
	case South:
		return borderSide{current, true, true}, borderSide{neighbor, true, false}
	case West:
		return borderSide{current, false, false}, borderSide{neighbor, false, true}
	default:
		return borderSide{current, false, true}, borderSide{neighbor, false, false}
	}
}

// ReinforceBorder carves the cheapest lane across one border. Ties go to the
// lowest lane index.
func ReinforceBorder(p *Pentagrid, dir Direction) Corridor {
	cur, nb := borderSides(p, dir)
	size := len(p[PosCurrent])

	best := Corridor{Border: dir, Lane: -1, Cost: math.MaxInt}
	for lane := 0; lane < size; lane++ {
		cost := cur.rockRun(lane) + nb.rockRun(lane)
		if cost < best.Cost {
			best.Lane, best.Cost = lane, cost
		}
	}

	cur.carve(best.Lane)
	nb.carve(best.Lane)
	return best
}

// Reinforce guarantees a walkable crossing on every border of the current
// grid, working North, South, West, East.
func Reinforce(ctx context.Context, p *Pentagrid) [4]Corridor {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "continuity.reinforce")
	defer span.End()

	var out [4]Corridor
	for i, dir := range Directions {
		out[i] = ReinforceBorder(p, dir)
		span.SetAttributes(
			attribute.Int("continuity."+dir.String()+".lane", out[i].Lane),
			attribute.Int("continuity."+dir.String()+".cost", out[i].Cost),
		)
	}
	return out
}
