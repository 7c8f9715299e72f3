package engine

// Speed factor bounds applied by SetSpeedFactor
const (
	MinSpeedFactor = 0.1
	MaxSpeedFactor = 10.0
)

// State is the engine's run state. It replaces process wide flags and is
// only touched on the logic goroutine.
type State struct {
	Paused            bool
	ExitRequested     bool
	ResetRequested    bool
	SettingsRequested bool
	SpeedFactor       float64
	ThroughWalls      bool
}

func newState() State {
	return State{SpeedFactor: 1}
}

func clampSpeed(f float64) float64 {
	switch {
	case f != f: // NaN
		return 1
	case f < MinSpeedFactor:
		return MinSpeedFactor
	case f > MaxSpeedFactor:
		return MaxSpeedFactor
	}
	return f
}

// Snapshot is the read-only copy of State published after every frame for
// other goroutines.
type Snapshot struct {
	Paused       bool
	Exiting      bool
	SpeedFactor  float64
	ThroughWalls bool
	Frame        uint64
}
