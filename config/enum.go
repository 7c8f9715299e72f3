package config

import (
	"errors"
	"fmt"
)

// EnumEntry describes one valid value of an enumerated parameter.
type EnumEntry[T ~int] struct {
	Value T
	Token string // serialization token, never localized
	Label string
	Help  string
}

// EnumTable is the bidirectional value <-> token lookup behind an Enum.
// Built once; never mutated afterwards.
type EnumTable[T ~int] struct {
	entries []EnumEntry[T]
	byToken map[string]int
	byValue map[T]int
}

// NewEnumTable validates that values and tokens are both unique.
func NewEnumTable[T ~int](entries ...EnumEntry[T]) (*EnumTable[T], error) {
	if len(entries) == 0 {
		return nil, errors.New("config: enum table needs at least one entry")
	}
	t := &EnumTable[T]{
		entries: append([]EnumEntry[T](nil), entries...),
		byToken: make(map[string]int, len(entries)),
		byValue: make(map[T]int, len(entries)),
	}
	for i, e := range entries {
		if e.Token == "" {
			return nil, fmt.Errorf("config: enum value %d has an empty token", e.Value)
		}
		if _, dup := t.byToken[e.Token]; dup {
			return nil, fmt.Errorf("config: duplicate enum token %q", e.Token)
		}
		if _, dup := t.byValue[e.Value]; dup {
			return nil, fmt.Errorf("config: duplicate enum value %d", e.Value)
		}
		t.byToken[e.Token] = i
		t.byValue[e.Value] = i
	}
	return t, nil
}

// MustEnumTable is NewEnumTable for package level tables.
func MustEnumTable[T ~int](entries ...EnumEntry[T]) *EnumTable[T] {
	t, err := NewEnumTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup finds the value for a token. Case-sensitive.
func (t *EnumTable[T]) Lookup(token string) (T, bool) {
	i, ok := t.byToken[token]
	if !ok {
		var zero T
		return zero, false
	}
	return t.entries[i].Value, true
}

func (t *EnumTable[T]) Entry(v T) (EnumEntry[T], bool) {
	i, ok := t.byValue[v]
	if !ok {
		return EnumEntry[T]{}, false
	}
	return t.entries[i], true
}

func (t *EnumTable[T]) Contains(v T) bool {
	_, ok := t.byValue[v]
	return ok
}

// Entries returns the entries in declaration order.
func (t *EnumTable[T]) Entries() []EnumEntry[T] {
	out := make([]EnumEntry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *EnumTable[T]) Len() int {
	return len(t.entries)
}

// Cycler is implemented by parameters the settings UI can step through.
type Cycler interface {
	Next()
	Prev()
	Label() string
}

// Enum is a parameter whose value is always one entry of its table.
type Enum[T ~int] struct {
	meta
	table  *EnumTable[T]
	value  T
	def    T
	labels map[T][2]string // localized label and help per value
}

// NewEnum panics if def isn't in table, since that is a programming error.
func NewEnum[T ~int](section, key, name, desc string, table *EnumTable[T], def T) *Enum[T] {
	if !table.Contains(def) {
		panic(fmt.Sprintf("config: default %d of %s.%s is not in its enum table", def, section, key))
	}
	return &Enum[T]{
		meta:  meta{name: name, desc: desc, section: section, key: key},
		table: table,
		value: def,
		def:   def,
	}
}

func (p *Enum[T]) Kind() Kind { return KindEnum }
func (p *Enum[T]) Get() T { return p.value }
func (p *Enum[T]) Default() T { return p.def }
func (p *Enum[T]) Reset() { p.value = p.def }
func (p *Enum[T]) Table() *EnumTable[T] { return p.table }

// Set rejects values outside the table.
func (p *Enum[T]) Set(v T) SetResult {
	if !p.table.Contains(v) {
		return Rejected
	}
	p.value = v
	return Accepted
}

func (p *Enum[T]) Text() string {
	e, _ := p.table.Entry(p.value)
	return e.Token
}

// SetText leaves the value unchanged for unknown tokens.
func (p *Enum[T]) SetText(s string) bool {
	v, ok := p.table.Lookup(s)
	if !ok {
		return false
	}
	p.value = v
	return true
}

// Next moves to the following entry, wrapping around.
func (p *Enum[T]) Next() {
	p.step(1)
}

// Prev moves to the preceding entry, wrapping around.
func (p *Enum[T]) Prev() {
	p.step(-1)
}

func (p *Enum[T]) step(dir int) {
	n := p.table.Len()
	i := p.table.byValue[p.value]
	p.value = p.table.entries[(i+dir+n)%n].Value
}

// Label returns the display label of the current value.
func (p *Enum[T]) Label() string {
	return p.LabelOf(p.value)
}

// LabelOf returns the display label of v, preferring localized text.
func (p *Enum[T]) LabelOf(v T) string {
	if l, ok := p.labels[v]; ok && l[0] != "" {
		return l[0]
	}
	e, _ := p.table.Entry(v)
	return e.Label
}

// Help returns the help text of the current value.
func (p *Enum[T]) Help() string {
	if l, ok := p.labels[p.value]; ok && l[1] != "" {
		return l[1]
	}
	e, _ := p.table.Entry(p.value)
	return e.Help
}

// SetOptionText overrides the label and help of the entry with the given token.
func (p *Enum[T]) SetOptionText(token, label, help string) bool {
	v, ok := p.table.Lookup(token)
	if !ok {
		return false
	}
	if p.labels == nil {
		p.labels = make(map[T][2]string)
	}
	p.labels[v] = [2]string{label, help}
	return true
}

// Tokens lists the valid serialization tokens in order.
func (p *Enum[T]) Tokens() []string {
	out := make([]string, 0, p.table.Len())
	for _, e := range p.table.entries {
		out = append(out, e.Token)
	}
	return out
}
