// Package window runs a Breakout session in a graphical window with
// Ebitengine. The same code builds for GOOS=js GOARCH=wasm.
package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/logging"
)

const (
	hudHeight = 32 // HUD strip above the field
	title     = "Brick Breaker"
)

var (
	hudColor     = core.MustParseHex("#15151C")
	overlayColor = color.RGBA{0, 0, 0, 0xb0}
	panelColor   = core.MustParseHex("#1E1E2A")
	buttonColor  = core.ColorGreen
)

// Game adapts a breakout session to ebiten.Game.
type Game struct {
	session  *breakout.Game
	field    *vectorSurface
	scratch  *ebiten.Image
	input    core.InputFrame
	recorder *logging.Recorder
	logger   *log.Logger
	fieldW   int
	fieldH   int
	lastX    int
	lastY    int
}

// New creates the window adapter for a fresh session.
func New(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	session, err := breakout.New(cfg, rt)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	w, h := session.Field()
	g := &Game{
		session:  session,
		field:    newVectorSurface(int(w), int(h)),
		scratch:  ebiten.NewImage(int(w), glyphH),
		input:    core.NewInputFrame(),
		recorder: logging.NewRecorder(logger, session.State()),
		logger:   logger,
		fieldW:   int(w),
		fieldH:   int(h),
		lastX:    -1,
		lastY:    -1,
	}
	return g, nil
}

// Update gathers input and runs one simulation tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Info("session ended", "score", g.session.HUD().Score)
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.input.SetPointer(float64(x))
		g.lastX, g.lastY = x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(float64(x), float64(y-hudHeight))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if a := g.session.Panel().Action(); a != core.ActionNone {
			g.input.Set(a)
		} else {
			g.input.Set(core.ActionLaunch)
		}
	}

	res := g.session.Step(g.input)
	g.recorder.Record(g.session.State(), res)
	g.input.Clear()
	return nil
}

// click handles a left click at field coordinates.
// With a panel up only its button reacts; otherwise the click launches.
func (g *Game) click(x, y float64) {
	panel := g.session.Panel()
	if panel == breakout.PanelNone {
		g.input.Set(core.ActionLaunch)
		return
	}
	if buttonRect(float64(g.fieldW), float64(g.fieldH)).Contains(x, y) {
		g.input.Set(panel.Action())
	}
}

// Draw renders the HUD, the field and any panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(hudColor)
	g.drawHUD(screen)

	g.session.Render(g.field)
	if content, ok := g.session.PanelContent(); ok {
		g.drawPanel(g.field.dst, content)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.field.dst, op)
}

// Layout keeps the logical screen at field size plus the HUD strip;
// Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.fieldW, g.fieldH + hudHeight
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := g.session.HUD()
	text := fmt.Sprintf("Score: %d    Level: %d/%d    Lives: %s",
		hud.Score, hud.Level, breakout.TotalLevels, strings.Repeat("o ", max(hud.Lives, 0)))
	w := float64(len(text) * glyphW)
	drawText(screen, g.scratch, text, w/2+12, hudHeight/2, core.ColorWhite)
}

func (g *Game) drawPanel(dst *ebiten.Image, c breakout.PanelContent) {
	fw, fh := float64(g.fieldW), float64(g.fieldH)
	vector.DrawFilledRect(dst, 0, 0, float32(fw), float32(fh), overlayColor, false)

	box := panelRect(fw, fh)
	vector.DrawFilledRect(dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), panelColor, false)
	vector.StrokeRect(dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 2, core.ColorPaddle, false)

	cx := fw / 2
	drawText(dst, g.scratch, c.Title, cx, box.Y+36, core.MustParseHex("#FFFF33"))
	for i, line := range strings.Split(c.Message, "\n") {
		drawText(dst, g.scratch, line, cx, box.Y+80+float64(i*glyphH), core.ColorWhite)
	}

	btn := buttonRect(fw, fh)
	vector.DrawFilledRect(dst, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), buttonColor, false)
	bx, by := btn.Center()
	drawText(dst, g.scratch, c.Button, bx, by, core.ColorBlack)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger, scale float64) error {
	g, err := New(cfg, rt, logger)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(g.fieldW)*scale), int(float64(g.fieldH+hudHeight)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	g.logger.Info("session started", "seed", rt.Seed, "tick_rate", rt.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
