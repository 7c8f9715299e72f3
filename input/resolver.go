package input

import (
	"github.com/automoto/rpgplayer/shared/keys"
)

// CancelPolicy decides what opposite directional presses resolve to.
type CancelPolicy int

const (
	// CancelAll resolves to NONE whenever UP+DOWN or LEFT+RIGHT are held.
	CancelAll CancelPolicy = iota
	// CancelAxis drops only the contradictory axis, so UP+LEFT+RIGHT resolves to UP.
	CancelAxis
)

func (p CancelPolicy) String() string {
	if p == CancelAxis {
		return "axis"
	}
	return "all"
}

// Key repeat timing in logic frames
const (
	DefaultRepeatStart    = 23
	DefaultRepeatInterval = 4
)

// Option configures a Resolver.
type Option func(*Resolver)

func WithCancelPolicy(p CancelPolicy) Option {
	return func(r *Resolver) { r.policy = p }
}

// WithRepeat sets the frames before repeating starts and between repeats.
func WithRepeat(start, interval int) Option {
	return func(r *Resolver) {
		if start > 0 {
			r.repeatStart = start
		}
		if interval > 0 {
			r.repeatInterval = interval
		}
	}
}

// Resolver derives logical button and direction state from raw key state.
// It is owned by the logic goroutine and does no locking.
type Resolver struct {
	buttons *ButtonMapping
	dirs    *DirectionMapping

	policy         CancelPolicy
	repeatStart    int
	repeatInterval int

	pressTime [ButtonCount]int
	triggered [ButtonCount]bool
	repeated  [ButtonCount]bool
	released  [ButtonCount]bool

	dirPress [DirCount]int
	dir4     Direction
	dir8     Direction
}

// NewResolver builds a resolver over the given tables. A nil direction table
// uses DefaultDirectionMappings.
func NewResolver(buttons *ButtonMapping, dirs *DirectionMapping, opts ...Option) *Resolver {
	if dirs == nil {
		dirs = DefaultDirectionMappings()
	}
	r := &Resolver{
		buttons:        buttons,
		dirs:           dirs,
		repeatStart:    DefaultRepeatStart,
		repeatInterval: DefaultRepeatInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Buttons returns the live button table. Edits take effect on the next update.
func (r *Resolver) Buttons() *ButtonMapping {
	return r.buttons
}

// SetButtons swaps the button table and clears all state.
func (r *Resolver) SetButtons(m *ButtonMapping) {
	r.buttons = m
	r.Reset()
}

func (r *Resolver) Policy() CancelPolicy {
	return r.policy
}

// UpdateSystem refreshes system buttons. Call once per physical frame,
// even when game logic is paused.
func (r *Resolver) UpdateSystem(raw *keys.State) {
	for b := Button(0); b < ButtonCount; b++ {
		if IsSystemButton(b) {
			r.updateButton(b, r.boundPressed(raw, b))
		}
	}
}

// Update refreshes every non-system button and the derived directions.
// Call once per logic frame.
func (r *Resolver) Update(raw *keys.State) {
	for b := Button(0); b < ButtonCount; b++ {
		if !IsSystemButton(b) {
			r.updateButton(b, r.boundPressed(raw, b))
		}
	}
	r.updateDirections()
}

// boundPressed ORs the raw state of every key bound to b
func (r *Resolver) boundPressed(raw *keys.State, b Button) bool {
	for _, k := range r.buttons.Right(b) {
		if raw.Pressed(k) {
			return true
		}
	}
	return false
}

func (r *Resolver) updateButton(b Button, pressed bool) {
	if pressed {
		r.released[b] = false
		r.pressTime[b]++
	} else {
		r.released[b] = r.pressTime[b] > 0
		r.pressTime[b] = 0
	}

	t := r.pressTime[b]
	r.triggered[b] = t == 1
	r.repeated[b] = t == 1 || (t >= r.repeatStart && (t-r.repeatStart)%r.repeatInterval == 0)
}

func (r *Resolver) updateDirections() {
	r.dirPress = [DirCount]int{}
	for d := DirNone; d < DirCount; d++ {
		r.dirPress[d] = r.directionPressTime(d)
	}

	r.dir4 = DirNone
	r.dir8 = DirNone

	vertical := r.dirPress[DirUp] > 0 && r.dirPress[DirDown] > 0
	horizontal := r.dirPress[DirLeft] > 0 && r.dirPress[DirRight] > 0
	if vertical || horizontal {
		if r.policy == CancelAll {
			return
		}
		if vertical {
			r.dropAxis(DirUp, DirDown)
		}
		if horizontal {
			r.dropAxis(DirLeft, DirRight)
		}
	}

	// Most recently pressed cardinal wins
	best := 0
	for _, d := range [...]Direction{DirDown, DirLeft, DirRight, DirUp} {
		t := r.dirPress[d]
		if t > 0 && (best == 0 || t < best) {
			best = t
			r.dir4 = d
		}
	}

	r.dir8 = r.dir4
	for _, d := range [...]Direction{DirUpRight, DirUpLeft, DirDownRight, DirDownLeft} {
		if r.dirPress[d] > 0 {
			r.dir8 = d
			break
		}
	}
}

// directionPressTime is the max press time over the bound buttons of a
// cardinal, or the summed time of a diagonal when all its buttons are held.
func (r *Resolver) directionPressTime(d Direction) int {
	bound := r.dirs.Right(d)
	if len(bound) == 0 {
		return 0
	}
	if d.IsDiagonal() {
		sum := 0
		for _, b := range bound {
			if r.pressTime[b] == 0 {
				return 0
			}
			sum += r.pressTime[b]
		}
		return sum
	}
	longest := 0
	for _, b := range bound {
		longest = max(longest, r.pressTime[b])
	}
	return longest
}

// dropAxis zeroes both cardinals of an axis and every diagonal touching them
func (r *Resolver) dropAxis(a, b Direction) {
	r.dirPress[a] = 0
	r.dirPress[b] = 0
	for _, d := range [...]Direction{DirUpLeft, DirUpRight, DirDownLeft, DirDownRight} {
		for _, part := range r.dirs.Right(d) {
			for _, axis := range r.dirs.Right(a) {
				if part == axis {
					r.dirPress[d] = 0
				}
			}
			for _, axis := range r.dirs.Right(b) {
				if part == axis {
					r.dirPress[d] = 0
				}
			}
		}
	}
}

// Reset releases every button without reporting releases.
func (r *Resolver) Reset() {
	r.pressTime = [ButtonCount]int{}
	r.triggered = [ButtonCount]bool{}
	r.repeated = [ButtonCount]bool{}
	r.released = [ButtonCount]bool{}
	r.dirPress = [DirCount]int{}
	r.dir4 = DirNone
	r.dir8 = DirNone
}

func (r *Resolver) IsPressed(b Button) bool {
	return b.Valid() && r.pressTime[b] > 0
}

// IsTriggered reports the first frame of a press.
func (r *Resolver) IsTriggered(b Button) bool {
	return b.Valid() && r.triggered[b]
}

// IsRepeated reports the first frame of a press and then periodic repeats while held.
func (r *Resolver) IsRepeated(b Button) bool {
	return b.Valid() && r.repeated[b]
}

// IsReleased reports the frame a held button was let go.
func (r *Resolver) IsReleased(b Button) bool {
	return b.Valid() && r.released[b]
}

// PressTime returns how many frames b has been held.
func (r *Resolver) PressTime(b Button) int {
	if !b.Valid() {
		return 0
	}
	return r.pressTime[b]
}

// IsAnyPressed ignores system buttons.
func (r *Resolver) IsAnyPressed() bool {
	for b := Button(0); b < ButtonCount; b++ {
		if !IsSystemButton(b) && r.pressTime[b] > 0 {
			return true
		}
	}
	return false
}

// IsAnyTriggered ignores system buttons.
func (r *Resolver) IsAnyTriggered() bool {
	for b := Button(0); b < ButtonCount; b++ {
		if !IsSystemButton(b) && r.triggered[b] {
			return true
		}
	}
	return false
}

// Dir4 returns the resolved four-way direction.
func (r *Resolver) Dir4() Direction {
	return r.dir4
}

// Dir8 returns the resolved eight-way direction.
func (r *Resolver) Dir8() Direction {
	return r.dir8
}

// DirPress returns the press time backing direction d after cancellation.
func (r *Resolver) DirPress(d Direction) int {
	if d < 0 || d >= DirCount {
		return 0
	}
	return r.dirPress[d]
}
