package ui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/cavewalk/internal/gamedata"
	"github.com/samdwyer/cavewalk/internal/world"
)

// View is everything one frame shows.
type View struct {
	Pentagrid world.Pentagrid
	Position  world.Coord
	Session   uuid.UUID
	Visited   int
	Framed    bool // draw the touching edge of each neighbor around the grid
}

// Renderer draws views onto a screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
}

// NewRenderer creates a renderer using the given theme.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the current grid, the optional neighbor frame and a status line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	current := v.Pentagrid.Current()
	size := current.Size()

	// With a frame the grid starts one cell in, leaving room for neighbor edges.
	ox, oy := 0, 0
	if v.Framed {
		ox, oy = 1, 1
		r.drawFrame(&v.Pentagrid, size)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r.drawCell(ox+col, oy+row, current[row][col], false)
		}
	}

	status := fmt.Sprintf("%s  visited %d  session %s  [arrows] move  [f] frame  [q] quit",
		v.Position, v.Visited, v.Session.String()[:8])
	r.screen.SetString(0, oy+size+ox, status, r.theme.Status.Style())

	r.screen.Show()
}

// drawFrame draws the neighbor rows and columns that touch the current grid.
// Row 0 of the current grid meets the last row of its north neighbor.
func (r *Renderer) drawFrame(p *world.Pentagrid, size int) {
	north, south := p.At(world.PosNorth), p.At(world.PosSouth)
	west, east := p.At(world.PosWest), p.At(world.PosEast)
	for i := 0; i < size; i++ {
		r.drawCell(1+i, 0, north[size-1][i], true)
		r.drawCell(1+i, size+1, south[0][i], true)
		r.drawCell(0, 1+i, west[i][size-1], true)
		r.drawCell(size+1, 1+i, east[i][0], true)
	}
}

func (r *Renderer) drawCell(x, y int, c world.Cell, edge bool) {
	glyph := r.theme.Floor
	if c == world.CellRock {
		glyph = r.theme.Rock
	}
	style := glyph.Style()
	if edge {
		style = r.theme.Edge.Style()
	}
	r.screen.SetContent(x, y, glyph.Rune(), style)
}
