package keys

// State is the raw pressed state of every physical key for one physical frame.
// The zero value has nothing pressed.
type State struct {
	pressed [Count]bool
}

func (s *State) Set(k Key, down bool) {
	if !k.Valid() {
		return
	}
	s.pressed[k] = down
}

// Press is shorthand for Set(k, true) over several keys.
func (s *State) Press(ks ...Key) {
	for _, k := range ks {
		s.Set(k, true)
	}
}

func (s *State) Pressed(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.pressed[k]
}

// Clear releases every key.
func (s *State) Clear() {
	s.pressed = [Count]bool{}
}

// Merge ORs other into s.
func (s *State) Merge(other *State) {
	for i, down := range other.pressed {
		if down {
			s.pressed[i] = true
		}
	}
}

// Any returns the first pressed key, scanning in code order.
func (s *State) Any() (Key, bool) {
	for i, down := range s.pressed {
		if down {
			return Key(i), true
		}
	}
	return None, false
}
