package core

import (
	"strings"
)

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer the games draw into.
// The platform turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions. Content in the overlapping area is kept.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()

	for y := 0; y < min(len(old), s.height); y++ {
		copy(s.cells[y], old[y])
	}
}

// Clear resets every cell to a blank space.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill sets every cell to r with the default colour.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a rune with the default colour. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a coloured rune. Out-of-bounds writes are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// DrawText writes text starting at (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes coloured text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text horizontally centred on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawRect fills r with the given rune and colour.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws the outline of r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		s.DrawRect(r, '▪', c)
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', c)
	s.DrawHLine(r.X+1, bottom, r.W-2, '─', c)
	s.DrawVLine(r.X, r.Y+1, r.H-2, '│', c)
	s.DrawVLine(right, r.Y+1, r.H-2, '│', c)

	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// DrawHLine draws a horizontal run of length cells starting at (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawVLine draws a vertical run of length cells starting at (x, y).
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x, y+i, r, c)
	}
}

// String returns the plain text of the buffer, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, cell := range s.cells[y] {
		runes[x] = cell.Rune
	}
	return string(runes)
}
