package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/plexus/internal/config"
	"github.com/iburimskiy/plexus/internal/render"
	"github.com/iburimskiy/plexus/internal/reveal"
	"github.com/iburimskiy/plexus/internal/scene"
	"github.com/iburimskiy/plexus/internal/snapshot"
)

// Demo page layout: a hero section one viewport tall, then the skill bars.
const (
	skillsTop   = 120.0
	barRowH     = 18.0
	barRowGap   = 64.0
	barMarginX  = 60.0
	scrollSpeed = 40.0
)

type game struct {
	// mesh background
	ctrl *scene.Controller
	mesh *render.Mesh

	// demo page
	anim    *reveal.Animator
	bars    []*reveal.Target
	scrollY float64

	// viewport, in layout px, refreshed by Layout every frame
	viewW, viewH float64
	scale        float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// ambient drone
	drone     *beep.Ctrl
	audioInit bool
	audioOn   bool

	lastErr error
}

func NewGame() *game {
	g := &game{
		mesh:    render.NewMesh(),
		anim:    reveal.NewAnimator(),
		prevKey: map[ebiten.Key]bool{},
	}
	for _, s := range []struct {
		name string
		goal float64
	}{
		{"Go", 90},
		{"TypeScript", 80},
		{"PostgreSQL", 75},
		{"Docker", 70},
		{"Kubernetes", 60},
	} {
		g.bars = append(g.bars, g.anim.Add(s.name, s.goal))
	}
	return g
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		if err := g.toggleDrone(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.lastErr = err
		}
	}

	// A resize or monitor change replaces the whole mesh; the old controller
	// is stopped so a stale frame cannot advance it.
	if g.ctrl == nil || g.ctrl.Scene.W != g.viewW || g.ctrl.Scene.H != g.viewH || g.ctrl.Scene.Scale != g.scale {
		g.ctrl = scene.Mount(g.ctrl, g.viewW, g.viewH, g.scale)
	}

	// Wheel scrolling over the demo page
	_, wy := ebiten.Wheel()
	g.scrollY -= wy * scrollSpeed
	maxScroll := g.pageHeight() - g.viewH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.scrollY < 0 {
		g.scrollY = 0
	}
	if g.scrollY > maxScroll {
		g.scrollY = maxScroll
	}

	// Feed per-bar visibility to the reveal animator and advance the tweens.
	for i, t := range g.bars {
		top := g.barY(i) - g.scrollY
		g.anim.Observe(t, visibleFraction(top, barRowH, g.viewH))
	}
	g.anim.Tick()

	g.ctrl.Advance(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 13, G: 17, B: 26, A: 255})

	if g.ctrl != nil {
		g.mesh.Draw(screen, g.ctrl.Scene)
	}

	g.drawPage(screen)

	status := "Wheel: scroll | M: ambient on/off | S: save PNG | Esc/Q: quit"
	if g.audioOn {
		status = "[ambient] " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) drawPage(screen *ebiten.Image) {
	sc := float32(g.scale)

	heroY := g.viewH/2 - g.scrollY
	if heroY > -40 && heroY < g.viewH {
		ebitenutil.DebugPrintAt(screen, "plexus / portfolio demo", int(barMarginX*g.scale), int(heroY*g.scale))
		ebitenutil.DebugPrintAt(screen, "scroll down", int(barMarginX*g.scale), int((heroY+20)*g.scale))
	}

	headY := g.viewH + skillsTop - 48 - g.scrollY
	if headY > -40 && headY < g.viewH {
		ebitenutil.DebugPrintAt(screen, "Skills", int(barMarginX*g.scale), int(headY*g.scale))
	}

	trackW := g.viewW - 2*barMarginX
	for i, t := range g.bars {
		y := g.barY(i) - g.scrollY
		if y+barRowH < 0 || y > g.viewH {
			continue
		}

		vector.DrawFilledRect(screen, float32(barMarginX)*sc, float32(y)*sc,
			float32(trackW)*sc, barRowH*sc, color.RGBA{R: 24, G: 32, B: 48, A: 255}, false)

		fillW := t.Value / 100 * trackW
		if fillW > 0 {
			vector.DrawFilledRect(screen, float32(barMarginX)*sc, float32(y)*sc,
				float32(fillW)*sc, barRowH*sc, color.RGBA{R: 96, G: 132, B: 200, A: 255}, false)
		}
		vector.StrokeRect(screen, float32(barMarginX)*sc, float32(y)*sc,
			float32(trackW)*sc, barRowH*sc, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

		label := fmt.Sprintf("%s  %.0f%%", t.Name, t.Value)
		ebitenutil.DebugPrintAt(screen, label, int(barMarginX*g.scale), int((y-18)*g.scale))
	}
}

func (g *game) barY(i int) float64 {
	return g.viewH + skillsTop + float64(i)*barRowGap
}

func (g *game) pageHeight() float64 {
	return g.viewH + skillsTop + float64(len(g.bars))*barRowGap + 160
}

// visibleFraction returns how much of the span [top, top+h] lies inside the
// viewport [0, viewH], as a fraction of h.
func visibleFraction(top, h, viewH float64) float64 {
	lo := top
	if lo < 0 {
		lo = 0
	}
	hi := top + h
	if hi > viewH {
		hi = viewH
	}
	if hi <= lo {
		return 0
	}
	return (hi - lo) / h
}

func (g *game) toggleDrone() error {
	if !g.audioInit {
		sr := beep.SampleRate(44100)
		if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
			return err
		}
		tone, err := generators.SinTone(sr, config.AmbientFreq)
		if err != nil {
			return err
		}
		quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -5}
		g.drone = &beep.Ctrl{Streamer: quiet}
		speaker.Play(g.drone)
		g.audioInit = true
		g.audioOn = true
		return nil
	}

	speaker.Lock()
	g.audioOn = !g.audioOn
	g.drone.Paused = !g.audioOn
	speaker.Unlock()
	return nil
}

func (g *game) saveSnapshot() error {
	if g.ctrl == nil {
		return nil
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Save mesh snapshot"),
		zenity.Filename("plexus.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return snapshot.Save(path, g.ctrl.Scene)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale > config.MaxDeviceScale {
		scale = config.MaxDeviceScale
	}
	g.viewW = float64(outsideWidth)
	g.viewH = float64(outsideHeight)
	g.scale = scale
	return int(g.viewW * scale), int(g.viewH * scale)
}

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Plexus - animated mesh background demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		// The background is decorative; a missing display must not take the
		// process down.
		log.Printf("plexus: background disabled: %v", err)
	}
}
