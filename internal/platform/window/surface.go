package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// vectorSurface draws the field onto an Ebitengine image with the vector
// package. Coordinates are field pixels.
type vectorSurface struct {
	dst  *ebiten.Image
	text *ebiten.Image // Scratch image for tinted debug text
}

func newVectorSurface(w, h int) *vectorSurface {
	return &vectorSurface{
		dst:  ebiten.NewImage(w, h),
		text: ebiten.NewImage(w, glyphH),
	}
}

func (s *vectorSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *vectorSurface) Clear() {
	s.dst.Fill(core.ColorBackground)
}

func (s *vectorSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *vectorSurface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// DrawTextCentered prints with the debug font, tinted to c.
func (s *vectorSurface) DrawTextCentered(cx, cy float64, text string, c core.Color) {
	drawText(s.dst, s.text, text, cx, cy, c)
}

// drawText renders white debug text on scratch, then copies it to dst
// scaled by c so the glyphs take its color.
func drawText(dst, scratch *ebiten.Image, text string, cx, cy float64, c core.Color) {
	scratch.Clear()
	ebitenutil.DebugPrintAt(scratch, text, 0, 0)

	w := len(text) * glyphW
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(w)/2, cy-glyphH/2)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(scratch, op)
}
