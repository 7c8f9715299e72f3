package systems

import (
	"math"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// MaxWindowZoom is the largest window zoom ToggleZoom cycles through
const MaxWindowZoom = 4

// wantedVideo reads the options UpdateVideo pushes to the window
func wantedVideo(v *config.Video) components.VideoState {
	w, h := v.GameResolution.Get().Size()
	return components.VideoState{
		Vsync:      v.Vsync.Get(),
		Fullscreen: v.Fullscreen.Get() && !v.Fullscreen.IsHidden(),
		FpsLimit:   v.FpsLimit.Get(),
		Zoom:       clampInt(v.WindowZoom.Get(), 1, MaxWindowZoom),
		Width:      w,
		Height:     h,
	}
}

// UpdateVideo applies video options that changed since the last frame, so
// edits from the settings overlay, hotkeys or a config reload all land the
// same way. Runs every physical frame.
func UpdateVideo(e *ecs.ECS) {
	eng := getEngine(e)
	v := eng.Config().Video
	video := getOrCreateVideo(e)
	want := wantedVideo(v)
	have := video.Applied

	first := !video.Initialized
	if first || want.Vsync != have.Vsync {
		ebiten.SetVsyncEnabled(want.Vsync)
	}
	if first || want.FpsLimit != have.FpsLimit {
		if want.FpsLimit > 0 {
			ebiten.SetTPS(want.FpsLimit)
			eng.SetFrameRate(float64(want.FpsLimit))
		} else {
			ebiten.SetTPS(ebiten.SyncWithFPS)
		}
	}
	if want.FpsLimit == 0 {
		// Follows the display, keep the logic rate steady
		eng.SetFrameRate(ebiten.ActualTPS())
	}

	windowed := !v.Fullscreen.IsHidden()
	if windowed && (first || want.Fullscreen != have.Fullscreen) {
		ebiten.SetFullscreen(want.Fullscreen)
	}
	if windowed && !want.Fullscreen {
		switch {
		case first && v.HasWindowGeometry():
			ebiten.SetWindowPosition(v.WindowX.Get(), v.WindowY.Get())
			ebiten.SetWindowSize(v.WindowWidth.Get(), v.WindowHeight.Get())
		case first || want.Zoom != have.Zoom || want.Width != have.Width || want.Height != have.Height ||
			want.Fullscreen != have.Fullscreen:
			ebiten.SetWindowSize(want.Width*want.Zoom, want.Height*want.Zoom)
		}
	}

	if !first && want != have {
		log.Debug("video options applied", "vsync", want.Vsync, "fullscreen", want.Fullscreen,
			"fps_limit", want.FpsLimit, "zoom", want.Zoom)
	}
	video.Applied = want
	video.Initialized = true
}

// CaptureWindowGeometry stores the window position and size so the next
// start restores them. Fullscreen keeps the last windowed geometry.
func CaptureWindowGeometry(v *config.Video) {
	if v.WindowX.IsHidden() || v.Fullscreen.Get() {
		return
	}
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	v.WindowX.Set(x)
	v.WindowY.Set(y)
	v.WindowWidth.Set(w)
	v.WindowHeight.Set(h)
}

// CycleZoom steps the window zoom, wrapping back to 1.
func CycleZoom(v *config.Video) int {
	next := v.WindowZoom.Get()%MaxWindowZoom + 1
	v.WindowZoom.Set(clampInt(next, 1, MaxWindowZoom))
	return v.WindowZoom.Get()
}

// PresentRect places a game image of gw x gh on a screen of sw x sh. It
// returns the scale on each axis and the top left corner.
func PresentRect(sw, sh, gw, gh int, mode config.ScalingMode, stretch bool) (sx, sy, x, y float64) {
	if gw <= 0 || gh <= 0 || sw <= 0 || sh <= 0 {
		return 1, 1, 0, 0
	}
	sx = float64(sw) / float64(gw)
	sy = float64(sh) / float64(gh)
	if !stretch {
		s := math.Min(sx, sy)
		if mode == config.ScalingInteger && s >= 1 {
			s = math.Floor(s)
		}
		sx, sy = s, s
	}
	x = (float64(sw) - float64(gw)*sx) / 2
	y = (float64(sh) - float64(gh)*sy) / 2
	return sx, sy, x, y
}

var presentOp = &ebiten.DrawImageOptions{}

// Present draws the game canvas onto the window according to the scaling
// options.
func Present(screen, canvas *ebiten.Image, v *config.Video) {
	sb, cb := screen.Bounds(), canvas.Bounds()
	mode := v.ScalingMode.Get()
	sx, sy, x, y := PresentRect(sb.Dx(), sb.Dy(), cb.Dx(), cb.Dy(), mode, v.Stretch.Get())

	presentOp.GeoM.Reset()
	presentOp.GeoM.Scale(sx, sy)
	presentOp.GeoM.Translate(x, y)
	presentOp.Filter = ebiten.FilterNearest
	if mode == config.ScalingBilinear {
		presentOp.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(canvas, presentOp)
}

// getOrCreateVideo returns the singleton Video component, creating if needed
func getOrCreateVideo(ecs *ecs.ECS) *components.VideoData {
	entry, ok := components.Video.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Video))
	}
	return components.Video.Get(entry)
}
