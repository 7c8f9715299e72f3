package systems

import (
	"testing"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/locale"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// heldKeys is an engine source whose keys stay down until released
type heldKeys struct {
	down map[keys.Key]bool
}

func (h *heldKeys) Name() string { return "test" }

func (h *heldKeys) Poll(st *keys.State) {
	for k, on := range h.down {
		if on {
			st.Set(k, true)
		}
	}
}

// harness wires the logic and system runners over one world the way the
// game scene does, minus everything that needs a window.
type harness struct {
	eng    *engine.Engine
	keys   *heldKeys
	system *ecs.ECS
	logic  *ecs.ECS
}

func newHarness(t *testing.T, cfg *config.Config, opts ...engine.Option) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cat, err := locale.Load("en")
	require.NoError(t, err)

	src := &heldKeys{down: map[keys.Key]bool{}}
	eng := engine.New(cfg, append([]engine.Option{engine.WithSources(src)}, opts...)...)
	t.Cleanup(eng.Close)

	world := donburi.NewWorld()
	h := &harness{
		eng:    eng,
		keys:   src,
		system: ecs.NewECS(world),
		logic:  ecs.NewECS(world),
	}
	SpawnRuntime(h.system, eng, cat, "test")
	SpawnOverlay(h.system)
	GetOrCreateCursor(h.system)

	h.system.AddSystem(UpdateInput)
	h.system.AddSystem(UpdatePause)
	h.system.AddSystem(UpdateSystemHotkeys)
	h.system.AddSystem(UpdateLifecycle)
	h.system.AddSystem(HandleExit)

	h.logic.AddSystem(UpdateSettingsMenu)
	h.logic.AddSystem(UpdateHotkeys)
	h.logic.AddSystem(WithPauseCheck(UpdateCursor))
	return h
}

func (h *harness) frame() {
	h.eng.Frame(engine.Hooks{System: h.system.Update, Logic: h.logic.Update})
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.frame()
	}
}

func (h *harness) press(k keys.Key) {
	h.keys.down[k] = true
	h.frame()
}

func (h *harness) release(k keys.Key) {
	h.keys.down[k] = false
	h.frame()
}

// tap holds k for one frame and lets go on the next
func (h *harness) tap(k keys.Key) {
	h.press(k)
	h.release(k)
}
