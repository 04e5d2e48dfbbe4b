// Package ui draws cave grids to the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps a tcell.Screen with the few calls the explorer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the real terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return initScreen(s)
}

// NewSimulationScreen creates an in-memory screen of the given size.
func NewSimulationScreen(width, height int) (*Screen, error) {
	s := tcell.NewSimulationScreen("UTF-8")
	screen, err := initScreen(s)
	if err != nil {
		return nil, err
	}
	s.SetSize(width, height)
	return screen, nil
}

func initScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostEvent queues an event, e.g. a synthetic key press.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a full redraw.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// SetContent sets one cell, ignoring positions off screen.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// SetString writes text left to right starting at (x, y).
func (s *Screen) SetString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, style)
		x++
	}
}

// ContentAt returns the rune drawn at (x, y).
func (s *Screen) ContentAt(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}
