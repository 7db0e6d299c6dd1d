package main

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/avdva/burstfx/internal/audio"
	"github.com/avdva/burstfx/internal/config"
	"github.com/avdva/burstfx/internal/effect"
	"github.com/avdva/burstfx/internal/particle"
)

const defaultConfigPath = "config/burstfx.yaml"

const (
	// Like button dimensions
	likeButtonWidth  = 140
	likeButtonHeight = 48

	// Symbol button dimensions
	symbolButtonWidth  = 120
	symbolButtonHeight = 32
	symbolButtonX      = 20
	symbolButtonY      = 20

	// Count slider
	sliderHeight = 24
	sliderMinCount = 1
	sliderMaxCount = 100
)

type game struct {
	cfg config.Config
	rng *rand.Rand

	// effects
	likes   int
	watcher effect.Watcher[int]
	hearts  *effect.View
	spray   *effect.View
	player  *audio.Player
	count   int

	// viz
	time float64

	// like button state
	likeHovered bool
	likePressed bool

	// symbol button state
	symbolHovered bool
	symbolPressed bool

	// slider state
	sliderHovered  bool
	sliderDragging bool

	lastErr error
}

func newGame(cfg config.Config) *game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	opts := effect.Options{
		Count:        cfg.Effect.ParticleCount,
		CanvasWidth:  cfg.Effect.CanvasWidth,
		CanvasHeight: cfg.Effect.CanvasHeight,
		MaxJitter:    time.Duration(cfg.Effect.MaxJitterMS) * time.Millisecond,
	}

	heartSymbol := makeHeartSymbol(18, color.RGBA{R: 235, G: 70, B: 100, A: 255})
	sparkSymbol := makeSparkSymbol(10)

	return &game{
		cfg:    cfg,
		rng:    rng,
		count:  cfg.Effect.ParticleCount,
		hearts: effect.NewView(opts, func() particle.Spec { return particle.NewHeart(rng) }, heartSymbol, rng),
		spray:  effect.NewView(opts, func() particle.Spec { return particle.NewSpray(rng) }, sparkSymbol, rng),
		player: audio.NewPlayer(cfg.Sound.Enabled),
	}
}

func (g *game) likeButtonRect() (x, y, w, h int) {
	x = (g.cfg.Window.Width - likeButtonWidth) / 2
	y = g.cfg.Window.Height - 180
	return x, y, likeButtonWidth, likeButtonHeight
}

func (g *game) sliderRect() (x, y, w, h int) {
	x = 40
	y = g.cfg.Window.Height - 90
	return x, y, g.cfg.Window.Width - 80, sliderHeight
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()

	// Like button interactions
	bx, by, bw, bh := g.likeButtonRect()
	g.likeHovered = mouseX >= bx && mouseX <= bx+bw && mouseY >= by && mouseY <= by+bh
	if g.likeHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.likePressed = true
	}

	// Symbol button interactions
	g.symbolHovered = mouseX >= symbolButtonX && mouseX <= symbolButtonX+symbolButtonWidth &&
		mouseY >= symbolButtonY && mouseY <= symbolButtonY+symbolButtonHeight
	if g.symbolHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.symbolPressed = true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.likePressed && g.likeHovered {
			g.likes++
		}
		if g.symbolPressed && g.symbolHovered {
			if err := g.openSymbolDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.likePressed = false
		g.symbolPressed = false
		g.sliderDragging = false
	}

	// Slider interactions
	sx, sy, sw, sh := g.sliderRect()
	g.sliderHovered = mouseX >= sx && mouseX <= sx+sw && mouseY >= sy && mouseY <= sy+sh
	if g.sliderHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sliderDragging = true
	}
	if g.sliderDragging {
		ratio := float64(mouseX-sx) / float64(sw)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		g.count = sliderMinCount + int(ratio*float64(sliderMaxCount-sliderMinCount)+0.5)
		g.hearts.SetCount(g.count)
		g.spray.SetCount(g.count)
	}

	now := time.Now()

	// The like counter is the trigger value: each change produces one burst.
	if g.watcher.Changed(g.likes) {
		g.hearts.Burst(now)
		g.spray.Burst(now)
		if err := g.player.Play(); err != nil {
			g.lastErr = err
		}
	}

	g.time += 1.0 / 60.0
	g.hearts.Update(now)
	g.spray.Update(now)

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	// Effects are anchored to the top-center of the like button.
	bx, by, bw, _ := g.likeButtonRect()
	anchorX := float64(bx + bw/2)
	anchorY := float64(by)
	g.spray.Draw(screen, anchorX, anchorY)
	g.hearts.Draw(screen, anchorX, anchorY)

	g.drawLikeButton(screen)
	g.drawSymbolButton(screen)
	g.drawSlider(screen)

	status := fmt.Sprintf("Likes: %d | Particles: %d", g.likes, g.hearts.Len()+g.spray.Len())
	if g.hearts.Paused() && g.spray.Paused() {
		status += " | idle"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.cfg.Window.Height-30)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	// Dynamic gradient background
	w := g.cfg.Window.Width
	h := g.cfg.Window.Height
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		r := uint8(14 + 12*math.Sin(g.time*0.3+ratio*math.Pi))
		gVal := uint8(12 + 10*math.Cos(g.time*0.2+ratio*math.Pi))
		b := uint8(26 + 16*math.Sin(g.time*0.4+ratio*math.Pi))
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, color.RGBA{R: r, G: gVal, B: b, A: 255}, false)
	}
}

func (g *game) drawLikeButton(screen *ebiten.Image) {
	bx, by, bw, bh := g.likeButtonRect()

	var bgColor color.Color
	if g.likePressed {
		bgColor = color.RGBA{R: 120, G: 40, B: 60, A: 255}
	} else if g.likeHovered {
		bgColor = color.RGBA{R: 160, G: 55, B: 80, A: 255}
	} else {
		bgColor = color.RGBA{R: 140, G: 45, B: 70, A: 255}
	}

	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), bgColor, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 2, color.RGBA{R: 220, G: 130, B: 150, A: 255}, false)

	text := fmt.Sprintf("Like (%d)", g.likes)
	textWidth := len(text) * 8
	ebitenutil.DebugPrintAt(screen, text, bx+(bw-textWidth)/2, by+(bh-8)/2)
}

func (g *game) drawSymbolButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.symbolPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.symbolHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, symbolButtonX, symbolButtonY, symbolButtonWidth, symbolButtonHeight, bgColor, false)
	vector.StrokeRect(screen, symbolButtonX, symbolButtonY, symbolButtonWidth, symbolButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open Symbol"
	textWidth := len(text) * 8
	ebitenutil.DebugPrintAt(screen, text, symbolButtonX+(symbolButtonWidth-textWidth)/2, symbolButtonY+(symbolButtonHeight-8)/2)
}

func (g *game) drawSlider(screen *ebiten.Image) {
	sx, sy, sw, sh := g.sliderRect()

	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	ratio := float64(g.count-sliderMinCount) / float64(sliderMaxCount-sliderMinCount)
	fillWidth := ratio * float64(sw)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(fillWidth), float32(sh), color.RGBA{R: 140, G: 45, B: 70, A: 180}, false)
	}

	knobX := float64(sx) + fillWidth
	vector.DrawFilledCircle(screen, float32(knobX), float32(sy+sh/2), 8, color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	vector.StrokeCircle(screen, float32(knobX), float32(sy+sh/2), 8, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)

	label := fmt.Sprintf("Particles per burst: %d", g.count)
	ebitenutil.DebugPrintAt(screen, label, sx, sy-18)
}

func (g *game) openSymbolDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Symbol Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	img, _, err := ebitenutil.NewImageFromFile(filename)
	if err != nil {
		return fmt.Errorf("loading symbol %s: %w", filename, err)
	}
	g.hearts.SetSymbol(img)
	slog.Info("symbol loaded", "path", filename)
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// makeHeartSymbol rasterizes a filled heart using the implicit curve
// (x²+y²-1)³ - x²y³ ≤ 0.
func makeHeartSymbol(size int, col color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x := (float64(px)/float64(size-1))*2.6 - 1.3
			y := 1.4 - (float64(py)/float64(size-1))*2.6
			v := math.Pow(x*x+y*y-1, 3) - x*x*y*y*y
			if v <= 0 {
				img.Set(px, py, col)
			}
		}
	}
	return img
}

// makeSparkSymbol rasterizes a white diamond; rotation is visible on it,
// and the spray tint multiplies the white base.
func makeSparkSymbol(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	half := float64(size-1) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			if math.Abs(float64(px)-half)+math.Abs(float64(py)-half) <= half {
				img.Set(px, py, color.White)
			}
		}
	}
	return img
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfgPath := defaultConfigPath
	if p := os.Getenv("BURSTFX_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	slog.Info("config loaded",
		"particle_count", cfg.Effect.ParticleCount,
		"canvas", fmt.Sprintf("%dx%d", cfg.Effect.CanvasWidth, cfg.Effect.CanvasHeight),
		"sound", cfg.Sound.Enabled)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("burstfx - click Like, Esc/Q: quit")

	if err := ebiten.RunGame(newGame(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
