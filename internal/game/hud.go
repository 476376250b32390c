package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelX = 12
	panelY = 12
	panelW = 620
	panelH = 96

	meterWidth  = 200
	meterHeight = 8
)

var (
	panelFill   = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	panelBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	meterFill   = color.RGBA{R: 120, G: 220, B: 140, A: 255}
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, panelX, panelY, panelW, panelH, panelFill, false)
	vector.StrokeRect(screen, panelX, panelY, panelW, panelH, 2, panelBorder, false)

	ebitenutil.DebugPrintAt(screen, "Message: "+g.message+"_", panelX+8, panelY+6)
	ebitenutil.DebugPrintAt(screen, g.paramLine(), panelX+8, panelY+22)
	ebitenutil.DebugPrintAt(screen, g.statusLine(), panelX+8, panelY+38)
	ebitenutil.DebugPrintAt(screen, "Tab: param | Up/Down: adjust | F1/F2: surfaces | F4: sonify | F5: export | F6: open | Esc: quit", panelX+8, panelY+54)

	if g.player.Playing() {
		level := clamp01(g.player.Level())
		vector.DrawFilledRect(screen, panelX+8, panelY+76, float32(meterWidth*level), meterHeight, meterFill, false)
		vector.StrokeRect(screen, panelX+8, panelY+76, meterWidth, meterHeight, 1, panelBorder, false)
	}
}

// paramLine renders every transform parameter, bracketing the selected one.
func (g *Game) paramLine() string {
	var b strings.Builder
	for i, p := range g.params {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == g.selected {
			fmt.Fprintf(&b, "[%s=%d]", p.name, *p.value)
		} else {
			fmt.Fprintf(&b, "%s=%d", p.name, *p.value)
		}
	}
	return b.String()
}

func (g *Game) statusLine() string {
	surfaces := "none"
	if len(g.status.ActiveSurfaces) > 0 {
		surfaces = strings.Join(g.status.ActiveSurfaces, ", ")
	}
	s := fmt.Sprintf("%d chars | surfaces: %s", g.status.CharacterCount, surfaces)
	if g.sonify {
		s += " | sonify on"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}
