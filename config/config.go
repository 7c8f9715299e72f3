// Package config holds the typed, serializable engine settings: the player,
// video, audio and input groups, their file format and command line overlay.
package config

import (
	"strings"

	"github.com/automoto/rpgplayer/input"
)

// Section names double as the file's [Section] headers
const (
	SectionPlayer       = "Player"
	SectionVideo        = "Video"
	SectionAudio        = "Audio"
	SectionInput        = "Input"
	SectionInputMapping = "InputMapping"
)

// DefaultFPS is the logic rate the engine targets when no limit is configured.
const DefaultFPS = 60

// ScalingMode selects how the game image is scaled to the window.
type ScalingMode int

const (
	ScalingNearest ScalingMode = iota
	ScalingInteger
	ScalingBilinear
)

var ScalingModes = MustEnumTable(
	EnumEntry[ScalingMode]{ScalingNearest, "nearest", "Nearest", "Scale to screen size (can cause scaling artifacts)"},
	EnumEntry[ScalingMode]{ScalingInteger, "integer", "Integer", "Scale to multiple of the game resolution"},
	EnumEntry[ScalingMode]{ScalingBilinear, "bilinear", "Bilinear", "Like Nearest, but output is blurred to avoid artifacts"},
)

// GameResolution selects the logical screen size.
type GameResolution int

const (
	ResolutionOriginal GameResolution = iota
	ResolutionWidescreen
	ResolutionUltrawide
)

var GameResolutions = MustEnumTable(
	EnumEntry[GameResolution]{ResolutionOriginal, "original", "Original (Recommended)", "The default resolution (320x240, 4:3)"},
	EnumEntry[GameResolution]{ResolutionWidescreen, "widescreen", "Widescreen (Experimental)", "Can cause glitches (416x240, 16:9)"},
	EnumEntry[GameResolution]{ResolutionUltrawide, "ultrawide", "Ultrawide (Experimental)", "Can cause glitches (560x240, 21:9)"},
)

// Size returns the logical screen size in pixels.
func (r GameResolution) Size() (w, h int) {
	switch r {
	case ResolutionWidescreen:
		return 416, 240
	case ResolutionUltrawide:
		return 560, 240
	}
	return 320, 240
}

// StartupLogos selects which logos play before the title screen.
type StartupLogos int

const (
	LogosNone StartupLogos = iota
	LogosCustom
	LogosAll
)

var StartupLogosModes = MustEnumTable(
	EnumEntry[StartupLogos]{LogosNone, "none", "None", "Do not show any additional logos"},
	EnumEntry[StartupLogos]{LogosCustom, "custom", "Custom", "Show custom logos bundled with the game"},
	EnumEntry[StartupLogos]{LogosAll, "all", "All", "Show all logos, including the original from RPG Maker"},
)

// Group is one subsystem's set of parameters.
type Group interface {
	Section() string
	Params() []Param
	// Hide marks every parameter as neither shown nor persisted.
	Hide()
	IsHidden() bool
}

type group struct {
	section string
	params  []Param
	hidden  bool
}

func (g *group) Section() string { return g.section }
func (g *group) IsHidden() bool { return g.hidden }

func (g *group) Params() []Param {
	out := make([]Param, len(g.params))
	copy(out, g.params)
	return out
}

func (g *group) Hide() {
	g.hidden = true
	for _, p := range g.params {
		p.Hide()
	}
}

// Player holds gameplay options.
type Player struct {
	group
	AutobattleAlgo   *String
	EnemyAiAlgo      *String
	SettingsAutosave *Bool
	SettingsInTitle  *Bool
	SettingsInMenu   *Bool
	StartupLogos     *Enum[StartupLogos]
}

func newPlayer() *Player {
	p := &Player{
		AutobattleAlgo:   NewString(SectionPlayer, "AutobattleAlgo", "", "", ""),
		EnemyAiAlgo:      NewString(SectionPlayer, "EnemyAiAlgo", "", "", ""),
		SettingsAutosave: NewBool(SectionPlayer, "SettingsAutosave", "Save settings on exit", "Automatically save the settings on exit", false),
		SettingsInTitle:  NewBool(SectionPlayer, "SettingsInTitle", "Show settings on title screen", "Display settings menu item on the title screen", false),
		SettingsInMenu:   NewBool(SectionPlayer, "SettingsInMenu", "Show settings in menu", "Display settings menu item on the menu screen", false),
		StartupLogos:     NewEnum(SectionPlayer, "StartupLogos", "Startup Logos", "Logos that are displayed on startup", StartupLogosModes, LogosCustom),
	}
	p.group = group{section: SectionPlayer, params: []Param{
		p.AutobattleAlgo, p.EnemyAiAlgo, p.SettingsAutosave, p.SettingsInTitle, p.SettingsInMenu, p.StartupLogos,
	}}
	return p
}

// Video holds display options.
type Video struct {
	group
	Renderer        *Locked
	Vsync           *Bool
	Fullscreen      *Bool
	ShowFps         *Bool
	FpsRenderWindow *Bool
	FpsLimit        *Range
	WindowZoom      *Int
	ScalingMode     *Enum[ScalingMode]
	Stretch         *Bool
	TouchUi         *Bool
	GameResolution  *Enum[GameResolution]

	// Never shown, used to restore the window to its previous position
	WindowX      *Int
	WindowY      *Int
	WindowWidth  *Int
	WindowHeight *Int
}

func newVideo(renderer string) *Video {
	v := &Video{
		Renderer:        NewLocked(SectionVideo, "Renderer", "Renderer", "The rendering engine", renderer),
		Vsync:           NewBool(SectionVideo, "Vsync", "V-Sync", "Toggle V-Sync mode (Recommended: ON)", true),
		Fullscreen:      NewBool(SectionVideo, "Fullscreen", "Fullscreen", "Toggle between fullscreen and window mode", true),
		ShowFps:         NewBool(SectionVideo, "ShowFps", "Show FPS", "Toggle display of the FPS counter", false),
		FpsRenderWindow: NewBool(SectionVideo, "FpsRenderWindow", "Show FPS in Window", "Show FPS inside the window when in window mode", false),
		FpsLimit:        NewRange(SectionVideo, "FpsLimit", "Frame Limiter", "Toggle the frames per second limit (Recommended: 60)", 0, 99999, DefaultFPS),
		WindowZoom:      NewInt(SectionVideo, "WindowZoom", "Window Zoom", "Toggle the window zoom level", 2),
		ScalingMode:     NewEnum(SectionVideo, "ScalingMode", "Scaling method", "How the output is scaled", ScalingModes, ScalingNearest),
		Stretch:         NewBool(SectionVideo, "Stretch", "Stretch", "Stretch to the width of the window/screen", false),
		TouchUi:         NewBool(SectionVideo, "TouchUi", "Touch Ui", "Display the touch ui", true),
		GameResolution:  NewEnum(SectionVideo, "GameResolution", "Resolution", "Game resolution. Changes require a restart.", GameResolutions, ResolutionOriginal),
		WindowX:         NewInt(SectionVideo, "WindowX", "", "", -1),
		WindowY:         NewInt(SectionVideo, "WindowY", "", "", -1),
		WindowWidth:     NewInt(SectionVideo, "WindowWidth", "", "", -1),
		WindowHeight:    NewInt(SectionVideo, "WindowHeight", "", "", -1),
	}
	v.group = group{section: SectionVideo, params: []Param{
		v.Renderer, v.Vsync, v.Fullscreen, v.ShowFps, v.FpsRenderWindow, v.FpsLimit, v.WindowZoom,
		v.ScalingMode, v.Stretch, v.TouchUi, v.GameResolution,
		v.WindowX, v.WindowY, v.WindowWidth, v.WindowHeight,
	}}
	return v
}

// HasWindowGeometry reports whether a previous window position and size were stored.
func (v *Video) HasWindowGeometry() bool {
	return v.WindowX.Get() >= 0 && v.WindowY.Get() >= 0 &&
		v.WindowWidth.Get() > 0 && v.WindowHeight.Get() > 0
}

// Audio holds volume options.
type Audio struct {
	group
	MusicVolume *Range
	SoundVolume *Range
}

func newAudio() *Audio {
	a := &Audio{
		MusicVolume: NewRange(SectionAudio, "MusicVolume", "BGM Volume", "Volume of the background music", 0, 100, 100),
		SoundVolume: NewRange(SectionAudio, "SoundVolume", "SFX Volume", "Volume of the sound effects", 0, 100, 100),
	}
	a.group = group{section: SectionAudio, params: []Param{a.MusicVolume, a.SoundVolume}}
	return a
}

// Input holds input options and the button bindings.
type Input struct {
	group
	SpeedModifierA    *Range
	SpeedModifierB    *Range
	GamepadSwapAnalog *Bool
	GamepadSwapDpad   *Bool
	GamepadSwapAbxy   *Bool

	Buttons *input.ButtonMapping
}

func newInput() *Input {
	in := &Input{
		SpeedModifierA:    NewRange(SectionInput, "SpeedModifierA", "Fast Forward A: Speed", "Set fast forward A speed", 2, 100, 3),
		SpeedModifierB:    NewRange(SectionInput, "SpeedModifierB", "Fast Forward B: Speed", "Set fast forward B speed", 2, 100, 10),
		GamepadSwapAnalog: NewBool(SectionInput, "GamepadSwapAnalog", "Gamepad: Swap Analog Sticks", "Swap left and right stick", false),
		GamepadSwapDpad:   NewBool(SectionInput, "GamepadSwapDpad", "Gamepad: Swap D-Pad with buttons", "Swap D-Pad with ABXY-Buttons", false),
		GamepadSwapAbxy:   NewBool(SectionInput, "GamepadSwapAbxy", "Gamepad: Swap AB and XY", "Swap A and B with X and Y", false),
		Buttons:           input.DefaultButtonMappings(),
	}
	in.group = group{section: SectionInput, params: []Param{
		in.SpeedModifierA, in.SpeedModifierB, in.GamepadSwapAnalog, in.GamepadSwapDpad, in.GamepadSwapAbxy,
	}}
	return in
}

// ResetButtons restores the default button bindings.
func (in *Input) ResetButtons() {
	in.Buttons.Reset(input.DefaultButtonMappings().Pairs())
}

// Config is the full settings tree. It is owned by the logic goroutine.
type Config struct {
	Player *Player
	Video  *Video
	Audio  *Audio
	Input  *Input
}

// Option customizes a Config at construction.
type Option func(*options)

type options struct {
	renderer string
	setup    []func(*Config)
}

// WithRenderer sets the locked renderer name reported by the platform.
func WithRenderer(name string) Option {
	return func(o *options) { o.renderer = name }
}

// WithSetup runs fn on the defaults before anything is loaded, so params
// it hides are never read from the file.
func WithSetup(fn func(*Config)) Option {
	return func(o *options) { o.setup = append(o.setup, fn) }
}

// Default builds a tree holding the compiled-in defaults.
func Default(opts ...Option) *Config {
	o := options{renderer: "auto"}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Config{
		Player: newPlayer(),
		Video:  newVideo(o.renderer),
		Audio:  newAudio(),
		Input:  newInput(),
	}
	for _, fn := range o.setup {
		fn(c)
	}
	return c
}

// Groups returns the groups in declaration order, which is also the write order.
func (c *Config) Groups() []Group {
	return []Group{c.Player, c.Video, c.Audio, c.Input}
}

// Params flattens every group.
func (c *Config) Params() []Param {
	var out []Param
	for _, g := range c.Groups() {
		out = append(out, g.Params()...)
	}
	return out
}

// Group finds a group by section name, ignoring case.
func (c *Config) Group(section string) (Group, bool) {
	for _, g := range c.Groups() {
		if strings.EqualFold(g.Section(), section) {
			return g, true
		}
	}
	return nil, false
}

// Lookup finds a parameter by section and key, ignoring case.
func (c *Config) Lookup(section, key string) (Param, bool) {
	g, ok := c.Group(section)
	if !ok {
		return nil, false
	}
	for _, p := range g.Params() {
		if p.Key() != "" && strings.EqualFold(p.Key(), key) {
			return p, true
		}
	}
	return nil, false
}

// Reset restores every default, including bindings. Hidden state is kept.
func (c *Config) Reset() {
	for _, p := range c.Params() {
		p.Reset()
	}
	c.Input.ResetButtons()
}
