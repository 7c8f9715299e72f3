package config

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// FlagConfigPath names the flag selecting an explicit config file.
const FlagConfigPath = "config"

type flagKind int

const (
	flagInt flagKind = iota
	flagString
	// flagSwitch sets its parameter to a fixed token when present
	flagSwitch
)

type flagBinding struct {
	name  string
	kind  flagKind
	set   string // token applied by a switch
	usage string
	param func(*Config) Param
}

// Negative switches come after their positive form so they win when both are given.
var flagBindings = []flagBinding{
	{"fps-limit", flagInt, "", "frames per second limit, 0 to sync with the display", func(c *Config) Param { return c.Video.FpsLimit }},
	{"vsync", flagSwitch, "true", "enable vertical sync", func(c *Config) Param { return c.Video.Vsync }},
	{"no-vsync", flagSwitch, "false", "disable vertical sync", func(c *Config) Param { return c.Video.Vsync }},
	{"fullscreen", flagSwitch, "true", "start in fullscreen mode", func(c *Config) Param { return c.Video.Fullscreen }},
	{"window", flagSwitch, "false", "start in window mode", func(c *Config) Param { return c.Video.Fullscreen }},
	{"show-fps", flagSwitch, "true", "show the FPS counter", func(c *Config) Param { return c.Video.ShowFps }},
	{"no-show-fps", flagSwitch, "false", "hide the FPS counter", func(c *Config) Param { return c.Video.ShowFps }},
	{"fps-render-window", flagSwitch, "true", "render the FPS counter inside the window", func(c *Config) Param { return c.Video.FpsRenderWindow }},
	{"window-zoom", flagInt, "", "window zoom level", func(c *Config) Param { return c.Video.WindowZoom }},
	{"scaling", flagString, "", "scaling method: nearest, integer or bilinear", func(c *Config) Param { return c.Video.ScalingMode }},
	{"stretch", flagSwitch, "true", "stretch to the width of the window", func(c *Config) Param { return c.Video.Stretch }},
	{"no-stretch", flagSwitch, "false", "keep the aspect ratio", func(c *Config) Param { return c.Video.Stretch }},
	{"game-resolution", flagString, "", "game resolution: original, widescreen or ultrawide", func(c *Config) Param { return c.Video.GameResolution }},
	{"touch-ui", flagSwitch, "true", "display the touch ui", func(c *Config) Param { return c.Video.TouchUi }},
	{"no-touch-ui", flagSwitch, "false", "hide the touch ui", func(c *Config) Param { return c.Video.TouchUi }},
	{"music-volume", flagInt, "", "music volume, 0 to 100", func(c *Config) Param { return c.Audio.MusicVolume }},
	{"sound-volume", flagInt, "", "sound effect volume, 0 to 100", func(c *Config) Param { return c.Audio.SoundVolume }},
	{"speed-modifier-a", flagInt, "", "fast forward A multiplier", func(c *Config) Param { return c.Input.SpeedModifierA }},
	{"speed-modifier-b", flagInt, "", "fast forward B multiplier", func(c *Config) Param { return c.Input.SpeedModifierB }},
	{"startup-logos", flagString, "", "startup logos: none, custom or all", func(c *Config) Param { return c.Player.StartupLogos }},
	{"autobattle-algo", flagString, "", "autobattle algorithm", func(c *Config) Param { return c.Player.AutobattleAlgo }},
	{"enemyai-algo", flagString, "", "enemy AI algorithm", func(c *Config) Param { return c.Player.EnemyAiAlgo }},
	{"settings-autosave", flagSwitch, "true", "save settings on exit", func(c *Config) Param { return c.Player.SettingsAutosave }},
	{"settings-in-title", flagSwitch, "true", "show the settings entry on the title screen", func(c *Config) Param { return c.Player.SettingsInTitle }},
	{"settings-in-menu", flagSwitch, "true", "show the settings entry in the menu", func(c *Config) Param { return c.Player.SettingsInMenu }},
}

// RegisterFlags declares the config overlay flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfigPath, "", "path to a config file, overrides the global config")
	for _, b := range flagBindings {
		switch b.kind {
		case flagInt:
			fs.Int(b.name, 0, b.usage)
		case flagString:
			fs.String(b.name, "", b.usage)
		case flagSwitch:
			fs.Bool(b.name, false, b.usage)
		}
	}
}

// LoadFromArgs applies every flag that was given on the command line. Flags
// left unset keep the file or default value. Returns how many were applied.
func (c *Config) LoadFromArgs(fs *pflag.FlagSet) int {
	if fs == nil {
		return 0
	}
	applied := 0
	for _, b := range flagBindings {
		f := fs.Lookup(b.name)
		if f == nil || !f.Changed {
			continue
		}
		text := f.Value.String()
		if b.kind == flagSwitch {
			if !strings.EqualFold(text, "true") {
				continue
			}
			text = b.set
		}
		if !b.param(c).SetText(text) {
			log.Warn("ignoring command line value", "flag", "--"+b.name, "value", text)
			continue
		}
		applied++
	}
	return applied
}

// ConfigPath returns the --config value, or "" when absent.
func ConfigPath(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	path, err := fs.GetString(FlagConfigPath)
	if err != nil {
		return ""
	}
	return path
}
