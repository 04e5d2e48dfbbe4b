package world

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Coord identifies a grid's position in the infinite lattice.
type Coord struct {
	Y, X int
}

// String returns the coordinate as "(y,x)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// Neighbor returns the coordinate of the grid in the given pentagrid slot.
func (c Coord) Neighbor(pos Position) Coord {
	dy, dx := pos.Offset()
	return Coord{Y: c.Y + dy, X: c.X + dx}
}

// Step returns the coordinate one move away in the given direction.
func (c Coord) Step(dir Direction) Coord {
	return c.Neighbor(dir.Position())
}

// Position is a slot of the pentagrid: the current grid or one of its four neighbors.
type Position int

const (
	PosCurrent Position = iota
	PosNorth
	PosSouth
	PosWest
	PosEast
)

// Positions lists every pentagrid slot in index order.
var Positions = [5]Position{PosCurrent, PosNorth, PosSouth, PosWest, PosEast}

// Offset returns the (dy, dx) step from the current coordinate to this slot.
func (p Position) Offset() (dy, dx int) {
	switch p {
	case PosNorth:
		return 1, 0
	case PosSouth:
		return -1, 0
	case PosWest:
		return 0, -1
	case PosEast:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable position name.
func (p Position) String() string {
	switch p {
	case PosCurrent:
		return "current"
	case PosNorth:
		return "north"
	case PosSouth:
		return "south"
	case PosWest:
		return "west"
	case PosEast:
		return "east"
	default:
		return "unknown"
	}
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists the cardinal directions in reinforcement order.
var Directions = [4]Direction{North, South, West, East}

// Position returns the pentagrid slot holding the neighbor in this direction.
func (d Direction) Position() Position {
	switch d {
	case North:
		return PosNorth
	case South:
		return PosSouth
	case West:
		return PosWest
	case East:
		return PosEast
	default:
		return PosCurrent
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d < North || d > East {
		return "unknown"
	}
	return d.Position().String()
}

// ParseDirection converts a name ("north", "n", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	case "east", "e":
		return East, nil
	default:
		return North, fmt.Errorf("unknown direction %q", s)
	}
}

// Seed is the 128-bit value bound to a lattice coordinate.
type Seed struct {
	Hi, Lo uint64
}

// String returns the seed as 32 hex digits.
func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s.Hi, s.Lo)
}

// SeedTable lazily assigns a random seed to every visited coordinate. Seeds are
// never changed or removed once assigned.
type SeedTable struct {
	seeds   map[Coord]Seed
	entropy io.Reader
}

// NewSeedTable creates an empty table drawing fresh seeds from entropy.
func NewSeedTable(entropy io.Reader) *SeedTable {
	return &SeedTable{
		seeds:   make(map[Coord]Seed),
		entropy: entropy,
	}
}

// Resolve returns the seed for c, assigning a new one on first visit.
func (t *SeedTable) Resolve(c Coord) Seed {
	if s, ok := t.seeds[c]; ok {
		return s
	}
	var buf [16]byte
	if _, err := io.ReadFull(t.entropy, buf[:]); err != nil {
		panic(fmt.Sprintf("world: reading seed entropy: %v", err))
	}
	s := Seed{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
	t.seeds[c] = s
	return s
}

// Expand resolves c and its four cardinal neighbors.
func (t *SeedTable) Expand(c Coord) {
	for _, pos := range Positions {
		t.Resolve(c.Neighbor(pos))
	}
}

// Lookup returns the seed for c without assigning one.
func (t *SeedTable) Lookup(c Coord) (Seed, bool) {
	s, ok := t.seeds[c]
	return s, ok
}

// Len returns the number of coordinates holding a seed.
func (t *SeedTable) Len() int {
	return len(t.seeds)
}
