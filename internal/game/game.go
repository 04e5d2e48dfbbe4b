package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavewalk/internal/gamedata"
	"github.com/samdwyer/cavewalk/internal/telemetry"
	"github.com/samdwyer/cavewalk/internal/ui"
	"github.com/samdwyer/cavewalk/internal/world"
)

// Game is an interactive walk through one cave lattice.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	lattice  *world.Map
	mode     ViewMode
	running  bool
	dirty    bool // current grid must be regenerated
	view     ui.View
}

// New creates an explorer on the real terminal.
func New(cfg Config, lattice *world.Map) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, lattice, screen)
}

// NewWithScreen creates an explorer drawing to the given screen.
func NewWithScreen(cfg Config, lattice *world.Map, screen *ui.Screen) (*Game, error) {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	mode := ViewPlain
	if cfg.Framed {
		mode = ViewFramed
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		lattice:  lattice,
		mode:     mode,
		running:  true,
		dirty:    true,
	}, nil
}

// Run executes the explorer loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("lattice.session", g.lattice.SessionID().String()),
		attribute.Int("grid.size", g.lattice.Params().Size),
		attribute.String("view.mode", g.mode.String()),
	)
	span.End()

	for g.running {
		g.render(ctx)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render regenerates the view if the position changed and draws it.
func (g *Game) render(ctx context.Context) {
	if g.dirty {
		g.view.Pentagrid = g.lattice.CurrentPentagrid(ctx)
		g.view.Position = g.lattice.Position()
		g.view.Session = g.lattice.SessionID()
		g.view.Visited = g.lattice.Visited()
		g.dirty = false
	}
	g.view.Framed = g.mode == ViewFramed
	g.renderer.Render(g.view)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent maps keys to lattice moves. Up is north.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.move(ctx, world.North)
	case tcell.KeyDown:
		g.move(ctx, world.South)
	case tcell.KeyLeft:
		g.move(ctx, world.West)
	case tcell.KeyRight:
		g.move(ctx, world.East)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'f', 'F':
			g.mode = g.mode.Toggle()
		}
	}
}

func (g *Game) move(ctx context.Context, dir world.Direction) {
	g.lattice.Go(ctx, dir)
	g.dirty = true
}

// Close releases the screen.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
