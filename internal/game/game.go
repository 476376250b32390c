// Package game is the ebiten front end: it owns the message and transform
// parameters, feeds keyboard and mouse input to the core packages, and draws
// the scene plus a HUD every frame.
package game

import (
	"log/slog"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/cipher-visualization/internal/audio"
	"github.com/iburimskiy/cipher-visualization/internal/cipher"
	"github.com/iburimskiy/cipher-visualization/internal/config"
	"github.com/iburimskiy/cipher-visualization/internal/geom"
	"github.com/iburimskiy/cipher-visualization/internal/render"
	"github.com/iburimskiy/cipher-visualization/internal/view"
)

// param is one adjustable transform parameter. Moduli floor at 1: the
// transforms treat smaller values as precondition violations, so the guard
// lives here on the input side.
type param struct {
	name  string
	value *int
	mod   bool
}

// Status summarizes the current scene for the HUD.
type Status struct {
	CharacterCount int
	ActiveSurfaces []string
}

// Game implements ebiten.Game. All state is mutated on the game goroutine;
// the only other goroutine in the process is the speaker's, behind Player.
type Game struct {
	renderer *render.SceneRenderer
	cam      *view.Camera
	orbit    view.Orbit
	player   *audio.Player

	message                            string
	key1, mod1, key2, mod2, key3, mod3 int
	params                             []param
	selected                           int

	showTorus bool
	showPoly  bool
	sonify    bool

	torusPoints []geom.Point3
	polyPoints  []geom.Point3
	status      Status

	width, height int
	typed         []rune
	lastErr       error
}

func New(cfg *config.Config) *Game {
	g := &Game{
		renderer:  render.NewSceneRenderer(),
		cam:       view.NewCamera(),
		player:    audio.NewPlayer(cfg.SampleRate),
		message:   cfg.Message,
		key1:      cfg.Key1,
		mod1:      cfg.Mod1,
		key2:      cfg.Key2,
		mod2:      cfg.Mod2,
		key3:      cfg.Key3,
		mod3:      cfg.Mod3,
		showTorus: cfg.ShowTorus,
		showPoly:  cfg.ShowPolynomial,
		sonify:    cfg.Sonify,
		width:     cfg.WindowWidth,
		height:    cfg.WindowHeight,
	}
	g.params = []param{
		{"key1", &g.key1, false},
		{"mod1", &g.mod1, true},
		{"key2", &g.key2, false},
		{"mod2", &g.mod2, true},
		{"key3", &g.key3, false},
		{"mod3", &g.mod3, true},
	}
	g.recompute()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.typed = ebiten.AppendInputChars(g.typed[:0])
	if len(g.typed) > 0 {
		g.appendRunes(g.typed)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.backspace()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleParam()
	}
	if repeatingKeyPressed(ebiten.KeyUp) {
		g.adjustParam(1)
	}
	if repeatingKeyPressed(ebiten.KeyDown) {
		g.adjustParam(-1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleTorus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.togglePolynomial()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		g.toggleSonify()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.exportPNG(); err != nil {
			g.lastErr = err
			slog.Error("scene export failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		if err := g.openMessageFile(); err != nil {
			g.lastErr = err
			slog.Error("message load failed", "err", err)
		}
	}

	g.handleMouse()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Frame(&screenSurface{img: screen}, g.cam, g.torusPoints, g.polyPoints, g.showTorus, g.showPoly)
	g.drawHUD(screen)
}

// Layout passes the outside size through unchanged; the projection re-reads
// the surface size every frame, so resizing needs no other handling.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Status reports the current scene summary.
func (g *Game) Status() Status {
	return g.status
}

func (g *Game) appendRunes(rs []rune) {
	changed := false
	for _, r := range rs {
		if r < ' ' {
			continue
		}
		g.message += string(r)
		changed = true
	}
	if changed {
		g.recompute()
	}
}

func (g *Game) backspace() {
	if g.message == "" {
		return
	}
	g.message = trimLastRune(g.message)
	g.recompute()
}

func (g *Game) cycleParam() {
	g.selected = (g.selected + 1) % len(g.params)
}

func (g *Game) adjustParam(delta int) {
	p := g.params[g.selected]
	*p.value += delta
	if p.mod && *p.value < 1 {
		*p.value = 1
	}
	g.recompute()
}

func (g *Game) toggleTorus() {
	g.showTorus = !g.showTorus
	g.recompute()
}

func (g *Game) togglePolynomial() {
	g.showPoly = !g.showPoly
	g.recompute()
}

func (g *Game) toggleSonify() {
	g.sonify = !g.sonify
	if g.sonify {
		g.playTones()
	}
}

// recompute regenerates both point sequences and the status summary. It runs
// on every message, parameter, or visibility change; sequences are replaced
// wholesale, never patched in place.
func (g *Game) recompute() {
	if g.showTorus {
		g.torusPoints = cipher.EncryptToTorus(g.message, g.key1, g.mod1, g.key2, g.mod2)
	} else {
		g.torusPoints = nil
	}
	if g.showPoly {
		g.polyPoints = cipher.EncryptToPolynomial(g.message, g.key3, g.mod3)
	} else {
		g.polyPoints = nil
	}

	names := make([]string, 0, 2)
	if g.showTorus {
		names = append(names, "torus")
	}
	if g.showPoly {
		names = append(names, "polynomial")
	}
	g.status = Status{
		CharacterCount: utf8.RuneCountInString(g.message),
		ActiveSurfaces: names,
	}

	if g.sonify {
		g.playTones()
	}
}

// playTones sonifies the torus sequence, falling back to the polynomial one
// when the torus is hidden. A missing audio device downgrades sonification
// to a logged warning.
func (g *Game) playTones() {
	points := g.torusPoints
	if len(points) == 0 {
		points = g.polyPoints
	}
	if err := g.player.Play(points); err != nil {
		g.sonify = false
		g.lastErr = err
		slog.Warn("sonification unavailable", "err", err)
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.orbit.Handle(view.PointerEvent{Kind: view.PointerPress, X: fx, Y: fy}, g.cam)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.orbit.Handle(view.PointerEvent{Kind: view.PointerRelease, X: fx, Y: fy}, g.cam)
	case g.orbit.Dragging():
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			g.orbit.Handle(view.PointerEvent{Kind: view.PointerLeave}, g.cam)
		} else {
			g.orbit.Handle(view.PointerEvent{Kind: view.PointerMove, X: fx, Y: fy}, g.cam)
		}
	}
}

// repeatingKeyPressed fires on the initial press and then again at a fixed
// interval while the key stays held, like OS key repeat.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
