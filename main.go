// rpgplayer runs the input and settings engine of the game player: it
// resolves keyboard, gamepad and virtual keys into logical buttons, keeps
// the player's settings in an INI file and shows them in an overlay.
//
// Usage:
//
//	rpgplayer [flags]
//
// Every setting has a command line flag that overrides the saved value for
// this run, see --help. With --platform headless no window opens and the
// game is driven through commands read from standard input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/rpgplayer/bridge"
	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/fonts"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/locale"
	"github.com/automoto/rpgplayer/platform"
	"github.com/automoto/rpgplayer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const (
	appName  = "rpgplayer"
	appTitle = "RPG Player"
)

var (
	flagLogLevel string
	flagPlatform string
	flagLang     string
	flagWatch    bool
	flagCancel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Run the game player",
	Long: `Run the game player with the saved settings.

Settings are read from the per-user config.ini, or from the file given
with --config, then overridden by the flags below. Changes made in the
settings overlay (F1) are saved on request, or on exit when
Player.SettingsAutosave is on.

Examples:
  rpgplayer
  rpgplayer --window --window-zoom 3
  rpgplayer --config ./config.ini --watch
  rpgplayer --platform headless --log-level debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	config.RegisterFlags(f)
	f.StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&flagPlatform, "platform", platform.Desktop.String(), "input platform: desktop, mobile or headless")
	f.StringVar(&flagLang, "lang", "", "display language, defaults to the system locale")
	f.BoolVar(&flagWatch, "watch", false, "reload the --config file when it changes")
	f.StringVar(&flagCancel, "direction-cancel", "all", "opposite directions cancel: all or axis")
}

func run(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	kind, err := platform.ParseKind(flagPlatform)
	if err != nil {
		return err
	}
	policy, err := parseCancelPolicy(flagCancel)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(flagLang)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	sel := platform.Select(kind, nil)
	store, err := config.OpenStore(flags, appName)
	if err != nil {
		log.Warn("no config store, settings will not persist", "err", err)
		store = config.NewMemoryStore()
	}
	cfg, err := config.Create(flags, store,
		config.WithRenderer(sel.Renderer()),
		config.WithSetup(sel.Setup),
	)
	if err != nil {
		log.Warn("continuing with default settings", "err", err)
	}
	cfg.Localize(cat)

	eng := engine.New(cfg,
		engine.WithSources(sel.EngineSources()...),
		engine.WithStore(store, flags),
		engine.WithResolverOptions(input.WithCancelPolicy(policy)),
	)
	defer eng.Close()

	var keysIn bridge.KeyPresser
	if sel.Virtual != nil {
		keysIn = sel.Virtual
	}
	b := bridge.New(eng, keysIn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		for sig := range sigs {
			log.Info("signal received, exiting", "signal", sig)
			_ = b.EndGame()
		}
	}()

	if flagWatch {
		watchConfig(ctx, eng, config.ConfigPath(flags))
	}

	log.Info("starting", "platform", kind, "lang", cat.Lang, "config", storeLocation(store),
		"direction-cancel", eng.Resolver().Policy())
	scene := scenes.NewGameScene(eng, cat, scenes.Options{
		Title:    appTitle,
		Headless: kind == platform.Headless,
	})
	if kind == platform.Headless {
		return runHeadless(ctx, scene, eng, b)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	w, h := cfg.Video.GameResolution.Get().Size()
	zoom := max(1, cfg.Video.WindowZoom.Get())
	ebiten.SetWindowTitle(appTitle)
	ebiten.SetWindowSize(w*zoom, h*zoom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(NewGame(scene, eng))
}

func watchConfig(ctx context.Context, eng *engine.Engine, path string) {
	if path == "" {
		log.Warn("--watch needs --config, not watching")
		return
	}
	w, err := config.Watch(path)
	if err != nil {
		log.Warn("could not watch config", "path", path, "err", err)
		return
	}
	go func() {
		<-ctx.Done()
		_ = w.Close()
	}()
	go eng.WatchConfig(ctx, w)
}

// runHeadless drives the scene at the logic rate without a window until
// an exit is requested.
func runHeadless(ctx context.Context, scene *scenes.GameScene, eng *engine.Engine, b *bridge.Bridge) error {
	c := newConsole(b, os.Stdout)
	go func() {
		if err := c.run(os.Stdin); err != nil {
			log.Warn("console stopped", "err", err)
		}
	}()

	ticker := time.NewTicker(time.Second / config.DefaultFPS)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			scene.Update()
			if eng.State().ExitRequested {
				log.Info("exiting")
				return nil
			}
		}
	}
}

func parseCancelPolicy(s string) (input.CancelPolicy, error) {
	switch s {
	case "all":
		return input.CancelAll, nil
	case "axis":
		return input.CancelAxis, nil
	}
	return input.CancelAll, fmt.Errorf("invalid --direction-cancel %q, want all or axis", s)
}

func loadCatalog(lang string) (*locale.Catalog, error) {
	if lang == "" {
		return locale.FromEnv()
	}
	return locale.Match(lang)
}

func storeLocation(s config.Store) string {
	if s == nil {
		return "none"
	}
	return s.Location()
}
