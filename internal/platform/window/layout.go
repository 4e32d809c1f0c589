package window

import "github.com/vovakirdan/brickbreaker/internal/core"

const (
	panelW  = 360
	panelH  = 200
	buttonW = 140
	buttonH = 32
)

// panelRect returns the panel box, centered on the field.
func panelRect(fieldW, fieldH float64) core.Rect {
	return core.NewRect((fieldW-panelW)/2, (fieldH-panelH)/2, panelW, panelH)
}

// buttonRect returns the panel button, centered near the bottom of the panel.
func buttonRect(fieldW, fieldH float64) core.Rect {
	p := panelRect(fieldW, fieldH)
	return core.NewRect(p.X+(p.W-buttonW)/2, p.Bottom()-buttonH-20, buttonW, buttonH)
}
