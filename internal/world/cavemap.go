package world

import (
	"context"
	"crypto/rand"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavewalk/internal/telemetry"
)

// Map is one explorable lattice session. It owns the seed table and the
// current position; all methods are safe for concurrent use.
type Map struct {
	mu        sync.Mutex
	id        uuid.UUID
	params    Params
	synth     *Synthesizer
	seeds     *SeedTable
	pos       Coord
	shared    bool // built from the process-wide parameters
	generated bool
}

// Option customizes a Map at construction.
type Option func(*mapOptions)

type mapOptions struct {
	entropy io.Reader
	origin  Coord
}

// WithEntropy sets the source of per-coordinate seeds. Defaults to crypto/rand.
func WithEntropy(r io.Reader) Option {
	return func(o *mapOptions) { o.entropy = r }
}

// WithOrigin sets the starting coordinate. Defaults to (0,0).
func WithOrigin(c Coord) Option {
	return func(o *mapOptions) { o.origin = c }
}

// NewMap creates a lattice using the process-wide parameters.
func NewMap(opts ...Option) *Map {
	m := newMap(ProcessParams(), opts)
	m.shared = true
	return m
}

// NewMapWithParams creates a lattice bound to its own parameter set.
func NewMapWithParams(p Params, opts ...Option) (*Map, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return newMap(p, opts), nil
}

func newMap(p Params, opts []Option) *Map {
	o := mapOptions{entropy: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Map{
		id:     uuid.New(),
		params: p,
		synth:  NewSynthesizer(p),
		seeds:  NewSeedTable(o.entropy),
		pos:    o.origin,
	}
	m.seeds.Expand(m.pos)
	return m
}

// SessionID returns the unique identifier of this lattice.
func (m *Map) SessionID() uuid.UUID {
	return m.id
}

// Params returns the parameters captured at construction.
func (m *Map) Params() Params {
	return m.params
}

// Position returns the current coordinate.
func (m *Map) Position() Coord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// Visited returns how many coordinates have been assigned a seed.
func (m *Map) Visited() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seeds.Len()
}

// SeedAt returns the seed bound to c, if c has been reached.
func (m *Map) SeedAt(c Coord) (Seed, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seeds.Lookup(c)
}

// Go moves the current position one step and seeds the new neighborhood.
func (m *Map) Go(ctx context.Context, dir Direction) Coord {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "lattice.go")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pos = m.pos.Step(dir)
	m.seeds.Expand(m.pos)

	span.SetAttributes(
		attribute.String("lattice.session", m.id.String()),
		attribute.String("lattice.direction", dir.String()),
		attribute.Int("lattice.y", m.pos.Y),
		attribute.Int("lattice.x", m.pos.X),
		attribute.Int("lattice.visited", m.seeds.Len()),
	)
	return m.pos
}

// CurrentPentagrid synthesizes the five grids around the current position and
// reinforces the borders between them.
func (m *Map) CurrentPentagrid(ctx context.Context) Pentagrid {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "lattice.current_grid")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shared && !m.generated {
		freezeProcessParams()
	}
	m.generated = true

	p := Assemble(ctx, m.seeds, m.synth, m.pos)
	corridors := Reinforce(ctx, &p)

	carved := 0
	for _, c := range corridors {
		carved += c.Cost
	}
	span.SetAttributes(
		attribute.String("lattice.session", m.id.String()),
		attribute.Int("lattice.y", m.pos.Y),
		attribute.Int("lattice.x", m.pos.X),
		attribute.Int("grid.rock_cells", p[PosCurrent].Count(CellRock)),
		attribute.Int("continuity.carved_cells", carved),
	)
	return p
}

// CurrentGrid returns the finished grid at the current position. Every call
// regenerates it from the stored seeds; callers wanting a stable value should
// keep the result.
func (m *Map) CurrentGrid(ctx context.Context) Grid {
	p := m.CurrentPentagrid(ctx)
	return p.Current()
}
