package config

import (
	"strconv"
	"strings"
)

// Kind tags the closed set of parameter variants.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindRange
	KindEnum
	KindString
	KindLocked
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindRange:
		return "range"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	case KindLocked:
		return "locked"
	}
	return "unknown"
}

// SetResult reports what a typed Set did with its candidate.
type SetResult int

const (
	Accepted SetResult = iota
	Clamped
	Rejected
)

// Param is the capability shared by every config parameter.
type Param interface {
	Name() string
	Description() string
	Section() string
	Key() string
	Kind() Kind

	// Text serializes the current value.
	Text() string
	// SetText parses and applies a serialized value. Returns false when the
	// token was ignored; the current value is left unchanged.
	SetText(s string) bool
	Reset()

	IsLocked() bool
	IsHidden() bool
	Hide()
	Show()
	// IsVisible reports whether the settings UI should list the parameter.
	IsVisible() bool
	// IsPersisted reports whether the writer emits the parameter.
	IsPersisted() bool

	SetLabels(name, description string)
}

// meta holds the attributes every kind shares
type meta struct {
	name    string
	desc    string
	section string
	key     string
	hidden  bool
}

func (m *meta) Name() string { return m.name }
func (m *meta) Description() string { return m.desc }
func (m *meta) Section() string { return m.section }
func (m *meta) Key() string { return m.key }
func (m *meta) IsLocked() bool { return false }
func (m *meta) IsHidden() bool { return m.hidden }
func (m *meta) Hide() { m.hidden = true }
func (m *meta) Show() { m.hidden = false }
func (m *meta) IsVisible() bool { return m.name != "" && !m.hidden }
func (m *meta) IsPersisted() bool { return m.key != "" && !m.hidden }

func (m *meta) SetLabels(name, description string) {
	// Parameters without a display name stay out of the UI
	if m.name == "" {
		return
	}
	m.name = name
	m.desc = description
}

// Bool is an on/off parameter.
type Bool struct {
	meta
	value bool
	def   bool
}

func NewBool(section, key, name, desc string, def bool) *Bool {
	return &Bool{meta: meta{name: name, desc: desc, section: section, key: key}, value: def, def: def}
}

func (p *Bool) Kind() Kind { return KindBool }
func (p *Bool) Get() bool { return p.value }
func (p *Bool) Default() bool { return p.def }
func (p *Bool) Reset() { p.value = p.def }
func (p *Bool) Toggle() { p.value = !p.value }

func (p *Bool) Set(v bool) SetResult {
	p.value = v
	return Accepted
}

func (p *Bool) Text() string {
	return strconv.FormatBool(p.value)
}

func (p *Bool) SetText(s string) bool {
	v, ok := parseBool(s)
	if !ok {
		return false
	}
	p.value = v
	return true
}

// parseBool accepts true/false plus the spellings hand-edited files tend to use
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true, true
	case "false", "0", "off", "no":
		return false, true
	}
	return false, false
}

// Int is an unbounded integer parameter.
type Int struct {
	meta
	value int
	def   int
}

func NewInt(section, key, name, desc string, def int) *Int {
	return &Int{meta: meta{name: name, desc: desc, section: section, key: key}, value: def, def: def}
}

func (p *Int) Kind() Kind { return KindInt }
func (p *Int) Get() int { return p.value }
func (p *Int) Default() int { return p.def }
func (p *Int) Reset() { p.value = p.def }

func (p *Int) Set(v int) SetResult {
	p.value = v
	return Accepted
}

func (p *Int) Text() string {
	return strconv.Itoa(p.value)
}

func (p *Int) SetText(s string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	p.value = v
	return true
}

// Range is an integer parameter clamped to [min, max].
type Range struct {
	meta
	value    int
	def      int
	min, max int
}

func NewRange(section, key, name, desc string, lo, hi, def int) *Range {
	p := &Range{meta: meta{name: name, desc: desc, section: section, key: key}, min: lo, max: hi}
	p.Set(def)
	p.def = p.value
	return p
}

func (p *Range) Kind() Kind { return KindRange }
func (p *Range) Get() int { return p.value }
func (p *Range) Default() int { return p.def }
func (p *Range) Min() int { return p.min }
func (p *Range) Max() int { return p.max }
func (p *Range) Reset() { p.value = p.def }

// Set clamps out of range candidates to the nearest bound.
func (p *Range) Set(v int) SetResult {
	switch {
	case v < p.min:
		p.value = p.min
		return Clamped
	case v > p.max:
		p.value = p.max
		return Clamped
	}
	p.value = v
	return Accepted
}

// Step moves the value by delta, clamped.
func (p *Range) Step(delta int) SetResult {
	return p.Set(p.value + delta)
}

func (p *Range) Text() string {
	return strconv.Itoa(p.value)
}

func (p *Range) SetText(s string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	p.Set(v)
	return true
}

// String is a free text parameter.
type String struct {
	meta
	value string
	def   string
}

func NewString(section, key, name, desc, def string) *String {
	return &String{meta: meta{name: name, desc: desc, section: section, key: key}, value: def, def: def}
}

func (p *String) Kind() Kind { return KindString }
func (p *String) Get() string { return p.value }
func (p *String) Default() string { return p.def }
func (p *String) Reset() { p.value = p.def }
func (p *String) Text() string { return p.value }

func (p *String) Set(v string) SetResult {
	p.value = v
	return Accepted
}

func (p *String) SetText(s string) bool {
	p.value = strings.TrimSpace(s)
	return true
}

// IsPersisted skips empty strings so unset algorithms don't clutter the file.
func (p *String) IsPersisted() bool {
	return p.meta.IsPersisted() && p.value != ""
}

// Locked holds a value chosen by the environment. Every write is ignored.
type Locked struct {
	meta
	value string
}

func NewLocked(section, key, name, desc, value string) *Locked {
	return &Locked{meta: meta{name: name, desc: desc, section: section, key: key}, value: value}
}

func (p *Locked) Kind() Kind { return KindLocked }
func (p *Locked) Get() string { return p.value }
func (p *Locked) Text() string { return p.value }
func (p *Locked) Set(string) SetResult { return Rejected }
func (p *Locked) SetText(string) bool { return false }
func (p *Locked) Reset() {}
func (p *Locked) IsLocked() bool { return true }
func (p *Locked) IsPersisted() bool { return false }
