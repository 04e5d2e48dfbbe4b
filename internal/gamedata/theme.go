package gamedata

import "github.com/gdamore/tcell/v2"

// GlyphDef is a display character with its color.
type GlyphDef struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// Rune returns the glyph as a rune for rendering.
func (g GlyphDef) Rune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// Style returns a tcell style with the glyph's foreground color.
func (g GlyphDef) Style() tcell.Style {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color)
}

// Theme maps cell kinds to glyphs.
type Theme struct {
	Floor  GlyphDef `json:"floor"`
	Rock   GlyphDef `json:"rock"`
	Edge   GlyphDef `json:"edge"`
	Status GlyphDef `json:"status"`
}

// LoadTheme loads the embedded theme.json.
func LoadTheme() (Theme, error) {
	return Load[Theme]("theme.json")
}
