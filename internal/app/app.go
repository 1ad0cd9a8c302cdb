//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"trigrid/internal/board"
	"trigrid/internal/geom"
	"trigrid/internal/palette"
	"trigrid/internal/render"
	"trigrid/internal/source"
	"trigrid/internal/ui"
)

const (
	panelWidth   = 180
	panelPadding = 12
	stripHeight  = 22
	buttonHeight = 26
	buttonGap    = 10

	feedWidth  = 160
	feedHeight = 120
)

// Game wires the grid, renderer, side panel and frame sampler into an
// ebiten.Game. All mutation happens on the update loop; there is no
// concurrent access to tile state.
type Game struct {
	cfg     *Config
	grid    *board.Grid
	painter *render.Renderer
	strip   *ui.HueStrip
	buttons []*ui.Button
	feed    *source.DemoFeed
	sampler *source.Sampler
	seeds   *seedSequence
	panel   *ebiten.Image
	gridW   int
	gridH   int
}

// New constructs the Game from a parsed configuration.
func New(cfg *Config) *Game {
	pal := palette.New(cfg.States, cfg.Hue)
	layout := geom.NewLayout(cfg.Side)
	cols := int(float64(cfg.Width) / layout.Width)
	rows := int(float64(cfg.Height) / layout.Half)
	grid := board.NewGrid(layout, cols, rows, pal)

	pw, ph := grid.PixelSize()
	g := &Game{
		cfg:     cfg,
		grid:    grid,
		painter: render.New(grid),
		seeds:   newSeedSequence(cfg.Seed),
		gridW:   int(pw),
		gridH:   int(ph),
	}

	g.feed = source.NewDemoFeed(feedWidth, feedHeight)
	g.sampler = source.NewSampler(g.feed, cols, rows, cfg.FPS)

	stripRect := image.Rect(panelPadding, panelPadding+4, panelWidth-panelPadding, panelPadding+4+stripHeight)
	g.strip = ui.NewHueStrip(stripRect, cfg.Hue, pal.SetBaseHue)

	top := stripRect.Max.Y + 2*buttonGap
	for _, b := range []struct {
		label string
		onTap func()
	}{
		{"Clear", g.grid.Clear},
		{"Scatter", func() { g.grid.Randomize(g.seeds.Next()) }},
		{"Feed", func() { g.sampler.Toggle() }},
		{"Snapshot", g.snapshot},
	} {
		rect := image.Rect(panelPadding, top, panelWidth-panelPadding, top+buttonHeight)
		g.buttons = append(g.buttons, ui.NewButton(rect, b.label, b.onTap))
		top += buttonHeight + buttonGap
	}
	return g
}

// Update routes input and pumps the frame sampler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Randomize(g.seeds.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.sampler.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.snapshot()
	}

	g.routePointer()

	if g.sampler.Running() {
		g.feed.Step()
		if samples, ok := g.sampler.Poll(); ok {
			g.grid.LoadBrightness(samples, g.cfg.Mirror, g.cfg.Invert)
		}
	}
	return nil
}

// routePointer sends pointer events to at most one interested party:
// panel widgets claim presses first, then the grid. While a gesture is
// active, motion goes only to its owner, and a release anywhere ends
// every gesture so nothing locks up.
func (g *Game) routePointer() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := mx-g.gridW, my
		if g.strip.Press(px, py) {
			return
		}
		for _, b := range g.buttons {
			if b.Press(px, py) {
				return
			}
		}
		g.grid.Press(float64(mx), float64(my))
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.strip.Interacting() {
			g.strip.Drag(mx-g.gridW, my)
		} else if g.grid.Interacting() {
			g.grid.Drag(float64(mx), float64(my))
		}
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.strip.Release()
		g.grid.Release()
	}
}

// Draw repaints the grid and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Redraw(&render.Screen{Dst: screen})

	if g.panel == nil {
		g.panel = ebiten.NewImage(panelWidth, g.gridH)
	}
	g.panel.Fill(color.RGBA{R: 24, G: 24, B: 30, A: 255})
	g.strip.Draw(g.panel)
	for _, b := range g.buttons {
		b.Draw(g.panel)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.gridW), 0)
	screen.DrawImage(g.panel, op)
}

// Layout returns the logical screen size: grid area plus panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + panelWidth, g.gridH
}

// snapshot renders the current grid through the software backend and
// writes a timestamped PNG next to the binary.
func (g *Game) snapshot() {
	canvas := render.NewImage(g.gridW, g.gridH)
	g.painter.Redraw(canvas)
	name := fmt.Sprintf("trigrid-%s.png", time.Now().Format("20060102-150405"))
	if err := canvas.SavePNG(name); err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("saved %s", name)
}
