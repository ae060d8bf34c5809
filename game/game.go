package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"starfield/starfield"
)

var (
	colorBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorHUD        = color.NRGBA{R: 120, G: 210, B: 255, A: 255}
)

// Game hosts a starfield in an ebiten window. It is the field's sizing
// container: the window size arrives through Layout and the pixel density
// comes from the monitor's device scale factor.
type Game struct {
	config Config
	canvas *Canvas
	frames *starfield.FrameQueue
	field  *starfield.Field

	// Logical window size and the density it was last laid out at
	width, height int
	scale         float64
	resized       bool
	observers     []func()
	scaleFactor   func() float64

	debug    *DebugState
	profiler *Profiler

	// Tick rate drop detection
	tpsCheckTimer  float64
	lastUpdateTime time.Time
	gameStartTime  time.Time
}

// NewGame creates the game and its starfield
func NewGame(config Config) (*Game, error) {
	g := &Game{
		config:         config,
		canvas:         NewCanvas(),
		frames:         starfield.NewFrameQueue(),
		width:          config.ScreenWidth,
		height:         config.ScreenHeight,
		scaleFactor:    monitorScaleFactor,
		debug:          GetDebugState(),
		profiler:       NewProfiler(config.ProfilesDir),
		lastUpdateTime: time.Now(),
		gameStartTime:  time.Now(),
	}
	g.scale = g.PixelRatio()

	field, err := starfield.New(config.Field, g.canvas, g, g.frames)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	g.field = field

	return g, nil
}

func monitorScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Size returns the logical window size
func (g *Game) Size() (float64, float64) {
	return float64(g.width), float64(g.height)
}

// Observe registers fn to run when the window size or density changes
func (g *Game) Observe(fn func()) {
	g.observers = append(g.observers, fn)
}

// PixelRatio returns the device scale factor, or 1 when unknown
func (g *Game) PixelRatio() float64 {
	s := g.scaleFactor()
	if math.IsNaN(s) || s <= 0 {
		return 1
	}
	return s
}

// Update notifies observers of pending size changes, then runs the frames
// requested since the previous tick
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if g.resized {
		g.resized = false
		for _, fn := range g.observers {
			fn()
		}
	}

	g.frames.RunFrame()

	if g.debug.Profile {
		g.checkTickRate(deltaTime)
	}
	return nil
}

// checkTickRate captures a profile when ticks fall below the threshold
func (g *Game) checkTickRate(deltaTime float64) {
	g.tpsCheckTimer += deltaTime
	if g.tpsCheckTimer < 0.5 {
		return
	}
	g.tpsCheckTimer = 0

	tps := ebiten.ActualTPS()
	if tps >= g.config.ProfileTPSThreshold || time.Since(g.gameStartTime) < g.config.ProfileGracePeriod {
		return
	}

	reason := fmt.Sprintf("tps%.0f-stars%d", tps, len(g.field.Stars()))
	if err := g.profiler.CaptureProfile(reason); err == nil {
		log.Printf("Tick rate drop detected (%.0f TPS). Capturing profile...", tps)
	}
}

// Draw presents the canvas
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	img := g.canvas.Image()
	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	cw, ch := img.Bounds().Dx(), img.Bounds().Dy()
	if sw != cw || sh != ch {
		op.GeoM.Scale(float64(sw)/float64(cw), float64(sh)/float64(ch))
	}
	screen.DrawImage(img, op)

	if g.debug.ShowHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w, h := g.field.Size()
	msg := fmt.Sprintf("TPS %.1f  FPS %.1f  stars %d  %vx%v @%.2fx",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(g.field.Stars()), w, h, g.scale)
	text.Draw(screen, msg, basicfont.Face7x13, 8, 16, colorHUD)
}

// Layout records the window size and returns the backing resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := g.PixelRatio()
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width = outsideWidth
		g.height = outsideHeight
		g.scale = scale
		g.resized = true
	}
	return max(int(math.Floor(float64(outsideWidth)*scale)), 1),
		max(int(math.Floor(float64(outsideHeight)*scale)), 1)
}
