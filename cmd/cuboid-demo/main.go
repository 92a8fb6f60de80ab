// Command cuboid-demo renders a colored cuboid over a checkered floor
// with an orbiting camera, hosted in an ebiten window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/kodo-pp/cuboid"
	"github.com/kodo-pp/cuboid/internal/clock"
)

const (
	orbitRadius = 6.0
	orbitSpeed  = 0.6 // radians per second
)

type game struct {
	width  int
	height int
	hfov   cuboid.Angle
	vfov   cuboid.Angle

	bgrx []byte
	rgba []byte

	angle    cuboid.Angle
	lastTick time.Time

	fps      *clock.RateTracker
	fpsTimer *clock.ApproximateTimer
	fpsText  string
}

func newGame(width, height int, hfov, vfov cuboid.Angle) *game {
	return &game{
		width:    width,
		height:   height,
		hfov:     hfov,
		vfov:     vfov,
		bgrx:     make([]byte, width*height*4),
		rgba:     make([]byte, width*height*4),
		fps:      clock.NewRateTracker(),
		fpsTimer: clock.NewApproximateTimer(time.Second),
	}
}

func (g *game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.angle = (g.angle + cuboid.Radians(orbitSpeed*dt.Seconds())).Positive()

	g.fps.Event()
	if g.fpsTimer.Update(dt) > 0 {
		mean := g.fps.Mean()
		g.fps.Reset()
		g.fpsText = fmt.Sprintf("FPS: %.1f", mean)
		slog.Debug("frame rate", "fps", mean)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for i := range g.bgrx {
		g.bgrx[i] = 0
	}
	r := cuboid.NewRenderer(g.bgrx, g.width, g.height, g.camera())
	drawScene(r)

	cuboid.BGRXToRGBA(g.rgba, g.bgrx)
	screen.WritePixels(g.rgba)
	ebitenutil.DebugPrint(screen, g.fpsText)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// camera orbits the scene center at a fixed radius, always facing it.
func (g *game) camera() cuboid.Camera {
	sin, cos := math.Sincos(g.angle.Rad())
	position := cuboid.Point3{X: -orbitRadius * cos, Y: 0, Z: -orbitRadius * sin}
	return cuboid.NewCamera(position, g.angle, 0, g.hfov, g.vfov)
}

func drawScene(r *cuboid.Renderer) {
	// Checkered floor below the cuboid.
	r.FillParallelogram(
		cuboid.Point3{X: -8, Y: -1.5, Z: -8},
		cuboid.Vec3{X: 16},
		cuboid.Vec3{Z: 16},
		checker(16, cuboid.FromColor(colornames.Darkslategray), cuboid.FromColor(colornames.Lightslategray)),
	)
	drawCuboid(r, cuboid.Point3{X: -1, Y: -1, Z: -1}, cuboid.Vec3{X: 2}, cuboid.Vec3{Y: 2}, cuboid.Vec3{Z: 2})
}

// drawCuboid draws the six faces of the box at origin spanned by the
// three edge vectors. Hidden faces are drawn too; the depth buffer sorts
// them out.
func drawCuboid(r *cuboid.Renderer, origin cuboid.Point3, ex, ey, ez cuboid.Vec3) {
	solid := func(c cuboid.RGB) cuboid.ObjectFiller { return cuboid.SolidFill(c) }

	r.FillParallelogram(origin, ey, ez, solid(cuboid.FromColor(colornames.Crimson)))
	r.FillParallelogram(origin.Add(ex), ey, ez, solid(cuboid.FromColor(colornames.Royalblue)))
	r.FillParallelogram(origin, ex, ez, solid(cuboid.FromColor(colornames.Goldenrod)))
	r.FillParallelogram(origin.Add(ey), ex, ez, checker(4,
		cuboid.FromColor(colornames.Seagreen),
		cuboid.FromColor(colornames.Honeydew)))
	r.FillParallelogram(origin, ex, ey, solid(cuboid.FromColor(colornames.Darkorchid)))
	r.FillParallelogram(origin.Add(ez), ex, ey, solid(cuboid.FromColor(colornames.Coral)))
}

// checker colors the unit coordinate square as an n-by-n checkerboard.
func checker(n int, a, b cuboid.RGB) cuboid.ObjectFiller {
	return cuboid.ObjectFillerFunc(func(uv cuboid.PointF) (cuboid.RGB, bool) {
		i := int(math.Floor(uv.X*float64(n))) + int(math.Floor(uv.Y*float64(n)))
		if ((i%2)+2)%2 == 0 {
			return a, true
		}
		return b, true
	})
}

func main() {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	hfov := flag.Float64("hfov", 100, "horizontal field of view in degrees")
	vfov := flag.Float64("vfov", 70, "vertical field of view in degrees")
	verbose := flag.Bool("verbose", false, "enable renderer debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if *verbose {
		cuboid.SetLogger(logger)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("cuboid")
	g := newGame(*width, *height, cuboid.Degrees(*hfov), cuboid.Degrees(*vfov))
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("demo exited", "error", err)
		os.Exit(1)
	}
}
