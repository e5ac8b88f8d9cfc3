package game

import (
	"image/color"

	"github.com/golangdaddy/autobahx/geom"
	"github.com/golangdaddy/autobahx/sim"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 200}
	wheelColor      = color.RGBA{30, 30, 30, 255}
	overlayShade    = color.RGBA{0, 0, 0, 160}
	bannerColor     = color.RGBA{255, 255, 100, 255}
	hintColor       = color.RGBA{200, 200, 200, 255}
)

var face = text.NewGoXFace(bitmapfont.Face)

func drawShape(screen *ebiten.Image, sh sim.Shape) {
	switch sh.Kind {
	case sim.KindBoundary:
		fillRect(screen, sh.Rect, sh.Color)
	default:
		drawCar(screen, sh.Rect, sh.Color)
	}
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(r.Pos.X), float32(r.Pos.Y), float32(r.Size.X), float32(r.Size.Y),
		clr, false)
}

// drawCar renders a top-down car that fills exactly its bounding box, bonnet
// at the top. Details are drawn inside the box so what you see is what
// collides.
func drawCar(screen *ebiten.Image, r geom.Rect, body color.Color) {
	x, y := float32(r.Pos.X), float32(r.Pos.Y)
	w, h := float32(r.Size.X), float32(r.Size.Y)

	vector.DrawFilledRect(screen, x, y, w, h, body, false)

	// Outline, kept inside the box
	const outlineWidth = 2
	vector.StrokeRect(screen, x+outlineWidth/2, y+outlineWidth/2, w-outlineWidth, h-outlineWidth, outlineWidth, outlineColor, false)

	// Windshield at the front
	windshieldWidth := w * 0.6
	windshieldHeight := h * 0.2
	vector.DrawFilledRect(screen, x+(w-windshieldWidth)/2, y+outlineWidth, windshieldWidth, windshieldHeight, windshieldColor, false)

	// Wheels
	const wheelWidth, wheelHeight, wheelInset = 6, 8, 2
	for _, wy := range []float32{y + 5, y + h - wheelHeight - 5} {
		vector.DrawFilledRect(screen, x+wheelInset, wy, wheelWidth, wheelHeight, wheelColor, false)
		vector.DrawFilledRect(screen, x+w-wheelWidth-wheelInset, wy, wheelWidth, wheelHeight, wheelColor, false)
	}
}

// drawOverlay dims the stage and prints a banner while the session is not
// running.
func drawOverlay(screen *ebiten.Image, state sim.State, width, height int) {
	var banner, hint string
	switch state {
	case sim.Paused:
		banner, hint = "PAUSED", "press P to resume"
	case sim.GameOver:
		banner, hint = "GAME OVER", "press Esc to quit"
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlayShade, false)
	drawCentered(screen, banner, 3.0, float64(height)/2-40, bannerColor, width)
	drawCentered(screen, hint, 1.5, float64(height)/2+10, hintColor, width)
}

func drawCentered(screen *ebiten.Image, s string, scale, y float64, clr color.Color, width int) {
	textWidth := text.Advance(s, face) * scale
	textX := float64(width)/2 - textWidth/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
