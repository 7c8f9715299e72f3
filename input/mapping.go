package input

import (
	"errors"
	"strings"

	"github.com/automoto/rpgplayer/shared/keys"
)

var (
	// ErrLastBinding is returned when a change would leave a protected button unbound.
	ErrLastBinding = errors.New("input: protected button needs at least one binding")
	ErrInvalidKey  = errors.New("input: invalid key")
)

// Bind adds k to b without touching other buttons that share k.
func Bind(m *ButtonMapping, b Button, k keys.Key) error {
	if !k.Valid() {
		return ErrInvalidKey
	}
	m.Add(b, k)
	return nil
}

// Rebind moves k to b exclusively: every other button bound to k loses it
// first. Fails without changes when that would strip a protected button.
func Rebind(m *ButtonMapping, b Button, k keys.Key) error {
	if !k.Valid() {
		return ErrInvalidKey
	}
	for _, owner := range m.Left(k) {
		if owner != b && IsProtectedButton(owner) && m.CountLeft(owner) == 1 {
			return ErrLastBinding
		}
	}
	m.RemoveRight(k)
	m.Add(b, k)
	return nil
}

// Unbind removes the pair (b, k) unless it is the last key of a protected button.
func Unbind(m *ButtonMapping, b Button, k keys.Key) error {
	if !m.Contains(b, k) {
		return nil
	}
	if IsProtectedButton(b) && m.CountLeft(b) == 1 {
		return ErrLastBinding
	}
	m.Remove(b, k)
	return nil
}

// ResetButton restores the default keys of b.
func ResetButton(m *ButtonMapping, b Button) {
	m.RemoveLeft(b)
	for _, k := range defaultBindings[b] {
		m.Add(b, k)
	}
}

// EncodeKeys renders the keys bound to b as a comma separated list.
func EncodeKeys(m *ButtonMapping, b Button) string {
	bound := m.Right(b)
	names := make([]string, len(bound))
	for i, k := range bound {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// DecodeKeys replaces the bindings of b with the keys listed in value.
// Unknown tokens are skipped and returned so callers can report them.
// A protected button that ends up empty gets its defaults back.
func DecodeKeys(m *ButtonMapping, b Button, value string) (skipped []string) {
	m.RemoveLeft(b)
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		k, ok := keys.FromName(tok)
		if !ok {
			skipped = append(skipped, tok)
			continue
		}
		m.Add(b, k)
	}
	if IsProtectedButton(b) && !m.HasLeft(b) {
		ResetButton(m, b)
	}
	return skipped
}
