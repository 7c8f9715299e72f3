package systems

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	// MessageFrames is how long a notification stays on screen
	MessageFrames = 180
	// MaxMessages bounds the notification log
	MaxMessages = 8
	// visibleMessages is how many live notifications are drawn at once
	visibleMessages = 3
)

// ScreenshotDir is where TakeScreenshot writes its PNG files.
var ScreenshotDir = "screenshots"

// Notify shows a message at the bottom of the screen and keeps it in the log.
func Notify(e *ecs.ECS, msg string) {
	hud := GetOrCreateHUD(e)
	hud.Messages = append(hud.Messages, components.HUDMessage{Text: msg, Timer: MessageFrames})
	if n := len(hud.Messages); n > MaxMessages {
		hud.Messages = append(hud.Messages[:0], hud.Messages[n-MaxMessages:]...)
	}
	log.Debug("notify", "message", msg)
}

// AgeMessages counts down the notification timers. Runs every physical frame.
func AgeMessages(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	for i := range hud.Messages {
		if hud.Messages[i].Timer > 0 {
			hud.Messages[i].Timer--
		}
	}
}

// UpdateHUD ages notifications and keeps the FPS counter in the window
// title when it isn't drawn on screen.
func UpdateHUD(e *ecs.ECS) {
	AgeMessages(e)

	hud := GetOrCreateHUD(e)
	rt := getRuntime(e)
	title := rt.Title
	if showFpsInTitle(e) {
		title = fmt.Sprintf("%s - FPS: %.0f", rt.Title, ebiten.ActualFPS())
	}
	if title != hud.Title {
		ebiten.SetWindowTitle(title)
		hud.Title = title
	}
}

func showFpsInTitle(e *ecs.ECS) bool {
	v := getEngine(e).Config().Video
	return v.ShowFps.Get() && !v.Fullscreen.Get() && !v.Fullscreen.IsHidden() && !v.FpsRenderWindow.Get()
}

// DrawHUD renders the FPS counter and the notifications.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	v := getEngine(e).Config().Video
	if v.ShowFps.Get() && !showFpsInTitle(e) {
		drawFps(screen, ebiten.ActualFPS())
	}

	hud := GetOrCreateHUD(e)
	lines := liveMessages(hud)
	if len(lines) == 0 {
		return
	}

	face := fonts.Small.Get()
	width := float32(screen.Bounds().Dx())
	height := screen.Bounds().Dy()
	boxH := float32(len(lines)*10 + 4)
	vector.DrawFilledRect(screen, 0, float32(height)-boxH, width, boxH, ColorPanel, false)
	for i, line := range lines {
		y := height - (len(lines)-i-1)*10 - 4
		text.Draw(screen, line, face, marginX, y, ColorText)
	}
}

// liveMessages returns the texts to draw, oldest first
func liveMessages(hud *components.HUDData) []string {
	var out []string
	for _, m := range hud.Messages {
		if hud.ShowLog || m.Timer > 0 {
			out = append(out, m.Text)
		}
	}
	if !hud.ShowLog && len(out) > visibleMessages {
		out = out[len(out)-visibleMessages:]
	}
	return out
}

func drawFps(screen *ebiten.Image, fps float64) {
	face := fonts.Mono.Get()
	s := fmt.Sprintf("FPS %.1f", fps)
	w := text.BoundString(face, s).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	x := screen.Bounds().Dx() - w - 4
	vector.DrawFilledRect(screen, float32(x-2), 0, float32(w+6), 12, ColorPanel, false)
	text.Draw(screen, s, face, x, 9, ColorSelected)
}

// CaptureScreenshot writes canvas to ScreenshotDir when a screenshot was
// requested. The pixels are copied here, encoding happens off the frame.
func CaptureScreenshot(e *ecs.ECS, canvas *ebiten.Image) {
	hud := GetOrCreateHUD(e)
	if !hud.ScreenshotRequested {
		return
	}
	hud.ScreenshotRequested = false

	b := canvas.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	canvas.ReadPixels(img.Pix)

	path := filepath.Join(ScreenshotDir, fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405.000")))
	Notify(e, getRuntime(e).Catalog.Textf("screenshot", path))
	go func() {
		if err := writePNG(path, img); err != nil {
			log.Warn("could not save screenshot", "path", path, "err", err)
			return
		}
		log.Info("screenshot saved", "path", path)
	}()
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.HUD))
	}

	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}
