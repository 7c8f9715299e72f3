package config

import (
	"fmt"
	"io"

	"github.com/automoto/rpgplayer/input"
	"gopkg.in/ini.v1"
)

func init() {
	// Plain Key=Value lines without aligned padding
	ini.PrettyFormat = false
}

// WriteToStream emits one [Section] block per group in declaration order.
// Hidden, locked and keyless parameters are never written. Button bindings
// follow in [InputMapping] unless the input group is hidden.
func (c *Config) WriteToStream(w io.Writer) error {
	f := ini.Empty()

	for _, g := range c.Groups() {
		var sec *ini.Section
		for _, p := range g.Params() {
			if !p.IsPersisted() {
				continue
			}
			if sec == nil {
				var err error
				if sec, err = f.NewSection(g.Section()); err != nil {
					return fmt.Errorf("config: write section %s: %w", g.Section(), err)
				}
			}
			if _, err := sec.NewKey(p.Key(), p.Text()); err != nil {
				return fmt.Errorf("config: write %s.%s: %w", g.Section(), p.Key(), err)
			}
		}
	}

	if !c.Input.IsHidden() {
		sec, err := f.NewSection(SectionInputMapping)
		if err != nil {
			return fmt.Errorf("config: write section %s: %w", SectionInputMapping, err)
		}
		for _, b := range input.Buttons() {
			if _, err := sec.NewKey(b.String(), input.EncodeKeys(c.Input.Buttons, b)); err != nil {
				return fmt.Errorf("config: write binding %s: %w", b, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
