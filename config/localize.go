package config

// Translator supplies localized display text. Serialization tokens are never translated.
type Translator interface {
	Param(section, key string) (name, desc string, ok bool)
	Option(section, key, token string) (label, help string, ok bool)
}

type optionLabeler interface {
	Tokens() []string
	SetOptionText(token, label, help string) bool
}

// Localize rewrites parameter names, descriptions and enum labels. Entries
// the translator lacks keep their current text.
func (c *Config) Localize(tr Translator) {
	for _, p := range c.Params() {
		if name, desc, ok := tr.Param(p.Section(), p.Key()); ok {
			p.SetLabels(name, desc)
		}
		opts, ok := p.(optionLabeler)
		if !ok {
			continue
		}
		for _, tok := range opts.Tokens() {
			if label, help, ok := tr.Option(p.Section(), p.Key(), tok); ok {
				opts.SetOptionText(tok, label, help)
			}
		}
	}
}
