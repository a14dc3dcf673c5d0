//go:build ebiten

package app

import (
	"log"
	"time"

	"cave-golf/internal/level"
	"cave-golf/internal/render"
	"cave-golf/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	meshes  *render.MeshPainter
	grid    *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	showGrid bool
}

// New constructs a Game showing the levels of s.
func New(s *Session, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		session: s,
		meshes:  render.NewMeshPainter(),
		hud:     ui.NewHUD(s, cfg.HUDWidth),
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
}

func (g *Game) view() render.View {
	return render.View{Frame: g.session.Level().Geometry.Frame, Scale: float64(g.scale)}
}

// Update handles key presses and swaps in pregenerated levels.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if _, err := g.session.Advance(); err != nil {
			log.Printf("advance: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(g.session.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}

	g.overlay.Update()
	w, _ := g.view().Size()
	g.hud.Update(w)
	return nil
}

func (g *Game) regenerate(seed int64) {
	if err := g.session.Regenerate(seed); err != nil {
		log.Printf("regenerate seed %d: %v", seed, err)
	}
}

// Draw renders the current level.
func (g *Game) Draw(screen *ebiten.Image) {
	l := g.session.Level()
	v := g.view()
	screen.Fill(level.Background)
	if g.showGrid {
		if g.grid == nil || g.grid.Size() != l.Grid.Size() {
			g.grid = render.NewGridPainter(l.Grid.Size())
		}
		g.grid.Blit(screen, l.Grid, v, level.Dirt, level.Background)
	} else {
		g.meshes.Draw(screen, level.Layers(l.Geometry), v)
	}
	g.overlay.Draw(screen, l, v)
	w, h := v.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.view().Size()
	return w + g.hud.Width(), h
}
