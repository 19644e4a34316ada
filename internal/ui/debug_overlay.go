package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugSource is a screen that can describe its internal state.
type DebugSource interface {
	DebugLines() []string
}

// DrawDebugOverlay draws the debug overlay if visible. src may be nil.
func DrawDebugOverlay(screen *ebiten.Image, src DebugSource) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 360.0
	)

	var state []string
	if src != nil {
		state = src.DebugLines()
	}
	var pressedKeys []string
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k.String())
		}
	}

	lines := 3 // header + tps + separator
	lines += max(len(state), 1)
	lines += 2 // blank + keys header
	lines += max(len(pressedKeys), 1)
	panelH := float64(lines)*lineH + padY*2
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), panelW, float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: Carousel (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	DrawText(screen, fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), x, y, FontSizeSmall, ColorWhite)
	y += lineH

	DrawText(screen, "--- state ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH
	if len(state) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextCaption)
		y += lineH
	}
	for _, line := range state {
		DrawText(screen, line, x, y, FontSizeSmall, ColorWhite)
		y += lineH
	}

	y += lineH * 0.5
	DrawText(screen, "--- keys pressed ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(pressedKeys) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextCaption)
		return
	}
	for _, k := range pressedKeys {
		DrawText(screen, "  "+k, x, y, FontSizeSmall, ColorWhite)
		y += lineH
	}
}
