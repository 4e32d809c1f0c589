package core

// Surface is the drawing capability the game renders into.
// Coordinates are play-field pixels; implementations scale as needed.
type Surface interface {
	// Size returns the play-field dimensions the surface maps onto.
	Size() (w, h float64)
	// Clear erases the whole surface.
	Clear()
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)
	// DrawTextCentered draws text centered on (cx, cy).
	DrawTextCentered(cx, cy float64, text string, c Color)
}
