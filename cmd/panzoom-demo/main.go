// Command panzoom-demo shows a checkerboard world driven by a panzoom
// controller: wheel to zoom at the cursor, drag to pan (flick for momentum),
// pinch on touch screens, arrows/+/-/0 on the keyboard.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/panzoom"
)

const (
	windowTitle = "panzoom demo"
	tileSize    = 100
	worldTiles  = 40
)

var snapLevels = []float64{0.25, 0.5, 1, 2, 4, 8}

type game struct {
	ticker *panzoom.Ticker
	ctrl   *panzoom.Controller
	view   *panzoom.View
	binder *panzoom.InputBinder
	runner *panzoom.GestureRunner

	tiles [2]*ebiten.Image
	w, h  int
}

func newGame(width, height int, snap, debug bool) *game {
	bounds := panzoom.Rect{Width: tileSize * worldTiles, Height: tileSize * worldTiles}
	cfg := panzoom.DefaultConfig()
	cfg.MinZoom = 0.2
	cfg.MaxZoom = 8
	cfg.Bounds = &bounds
	if snap {
		cfg.SnapLevels = snapLevels
	}

	g := &game{ticker: panzoom.NewTicker(), w: width, h: height}
	g.ctrl = panzoom.New(panzoom.Options{
		Zoom:      1,
		Config:    &cfg,
		Scheduler: g.ticker,
		Viewport:  panzoom.Size{Width: float64(width), Height: float64(height)},
	})
	g.ctrl.SetDebugMode(debug)
	g.view = panzoom.NewView(g.ctrl, panzoom.Rect{Width: float64(width), Height: float64(height)})
	g.binder = panzoom.NewInputBinder(g.view, nil, panzoom.BinderConfig{})

	for i, c := range []color.RGBA{{0x2a, 0x2f, 0x3a, 0xff}, {0x3b, 0x42, 0x52, 0xff}} {
		img := ebiten.NewImage(tileSize, tileSize)
		img.Fill(c)
		g.tiles[i] = img
	}
	return g
}

func (g *game) Update() error {
	g.binder.Update()
	g.ticker.Update()
	if g.runner != nil && g.runner.Done() && !g.ctrl.IsAnimating() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x12, 0x16, 0xff})

	vis := g.view.VisibleBounds()
	x0 := max(0, int(math.Floor(vis.X/tileSize)))
	y0 := max(0, int(math.Floor(vis.Y/tileSize)))
	x1 := min(worldTiles-1, int(math.Floor((vis.X+vis.Width)/tileSize)))
	y1 := min(worldTiles-1, int(math.Floor((vis.Y+vis.Height)/tileSize)))

	view := g.view.GeoM()
	var op ebiten.DrawImageOptions
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			op.GeoM.Reset()
			op.GeoM.Translate(float64(tx*tileSize), float64(ty*tileSize))
			op.GeoM.Concat(view)
			screen.DrawImage(g.tiles[(tx+ty)%2], &op)
		}
	}

	p := g.ctrl.Pan()
	msg := fmt.Sprintf("FPS %.1f  TPS %.1f\nzoom %.3f  pan %.1f, %.1f  animating %v\nwheel: zoom  drag: pan  +/-: step  0: reset",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.ctrl.Zoom(), p.X, p.Y, g.ctrl.IsAnimating())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.view.SetViewport(panzoom.Rect{Width: float64(g.w), Height: float64(g.h)})
	}
	return g.w, g.h
}

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	snap := flag.Bool("snap", false, "settle zoom on fixed levels")
	debug := flag.Bool("debug", false, "log animation loop transitions to stderr")
	script := flag.String("script", "", "JSON gesture script to replay, exits when done")
	flag.Parse()

	g := newGame(*width, *height, *snap, *debug)

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("failed to read gesture script: %v", err)
		}
		g.runner, err = panzoom.LoadGestureScript(data)
		if err != nil {
			log.Fatal(err)
		}
		g.binder.SetGestureRunner(g.runner)
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
