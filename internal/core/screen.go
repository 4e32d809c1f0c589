package core

import (
	"math"
	"strings"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune    rune
	Color   Color
	Colored bool // False means the terminal's default foreground
}

// Screen is a 2D character buffer for terminal rendering.
// It decouples game rendering from the terminal, allowing the platform to
// turn cells into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
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

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r}
}

// SetColored places a colored rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Colored: true}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Glyphs used by CellSurface.
const (
	FillGlyph   = '█'
	CircleGlyph = '●'
)

// CellSurface adapts a Screen to the Surface interface by scaling
// play-field pixels down to character cells.
type CellSurface struct {
	screen *Screen
	fieldW float64
	fieldH float64
}

// NewCellSurface maps a fieldW x fieldH pixel play field onto the whole screen.
func NewCellSurface(screen *Screen, fieldW, fieldH float64) *CellSurface {
	return &CellSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Size returns the play-field dimensions.
func (c *CellSurface) Size() (float64, float64) {
	return c.fieldW, c.fieldH
}

// Clear clears the underlying screen.
func (c *CellSurface) Clear() {
	c.screen.Clear()
}

func (c *CellSurface) cellSize() (float64, float64) {
	return c.fieldW / float64(c.screen.Width()), c.fieldH / float64(c.screen.Height())
}

// CellAt returns the cell containing the given field point.
func (c *CellSurface) CellAt(x, y float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// FieldX converts a cell column to the field x-coordinate of its center.
func (c *CellSurface) FieldX(col int) float64 {
	cw, _ := c.cellSize()
	return (float64(col) + 0.5) * cw
}

// FillRect fills every cell whose center lies inside the rectangle.
// Rectangles smaller than a cell still mark the cell holding their center.
func (c *CellSurface) FillRect(x, y, w, h float64, col Color) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	cw, ch := c.cellSize()
	drawn := false
	x0, y0 := c.CellAt(x, y)
	x1, y1 := c.CellAt(x+w, y+h)
	for cy := y0; cy <= y1; cy++ {
		centerY := (float64(cy) + 0.5) * ch
		if centerY < y || centerY >= y+h {
			continue
		}
		for cx := x0; cx <= x1; cx++ {
			centerX := (float64(cx) + 0.5) * cw
			if centerX < x || centerX >= x+w {
				continue
			}
			c.screen.SetColored(cx, cy, FillGlyph, col)
			drawn = true
		}
	}
	if !drawn {
		cx, cy := c.CellAt(x+w/2, y+h/2)
		c.screen.SetColored(cx, cy, FillGlyph, col)
	}
}

// FillCircle marks the cell holding the circle's center.
// Terminal cells are far larger than a ball, so one glyph is enough.
func (c *CellSurface) FillCircle(cx, cy, _ float64, col Color) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	x, y := c.CellAt(cx, cy)
	c.screen.SetColored(x, y, CircleGlyph, col)
}

// DrawTextCentered writes text on the row holding cy, centered on cx.
func (c *CellSurface) DrawTextCentered(cx, cy float64, text string, col Color) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	x, y := c.CellAt(cx, cy)
	runes := []rune(text)
	start := x - len(runes)/2
	for i, r := range runes {
		c.screen.SetColored(start+i, y, r, col)
	}
}
