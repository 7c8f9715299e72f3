// Package locale holds the translated display text of settings, buttons
// and the settings overlay. Serialization tokens are never translated.
package locale

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/automoto/rpgplayer/input"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var catalogFS embed.FS

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = "en"

// OptionText is the localized label and help of one enum entry.
type OptionText struct {
	Label string `yaml:"label"`
	Help  string `yaml:"help"`
}

// ParamText is the localized text of one parameter.
type ParamText struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Options     map[string]OptionText `yaml:"options"`
}

// Catalog is one language's text. Lookups that miss fall through to the
// fallback catalog when one is set.
type Catalog struct {
	Lang    string                          `yaml:"lang"`
	Name    string                          `yaml:"name"`
	Params  map[string]map[string]ParamText `yaml:"params"`
	Buttons map[string]string               `yaml:"buttons"`
	UI      map[string]string               `yaml:"ui"`

	tag      language.Tag
	fallback *Catalog
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("locale: parse: %w", err)
	}
	if c.Lang == "" {
		return nil, fmt.Errorf("locale: parse: missing lang")
	}
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return nil, fmt.Errorf("locale: parse lang %q: %w", c.Lang, err)
	}
	c.tag = tag
	return &c, nil
}

// Load reads an embedded catalog by file name without extension, like "zh".
func Load(name string) (*Catalog, error) {
	data, err := catalogFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("locale: load %s: %w", name, err)
	}
	return Parse(data)
}

// Available lists the embedded catalog names, default first.
func Available() []string {
	entries, err := catalogFS.ReadDir(".")
	if err != nil {
		return []string{DefaultLanguage}
	}
	out := []string{DefaultLanguage}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name != DefaultLanguage {
			out = append(out, name)
		}
	}
	return out
}

// Match picks the embedded catalog closest to the preferred languages,
// given as BCP 47 tags or POSIX locales like "zh_CN.UTF-8". The result
// falls back to the default catalog for missing entries.
func Match(prefs ...string) (*Catalog, error) {
	def, err := Load(DefaultLanguage)
	if err != nil {
		return nil, err
	}
	names := Available()
	catalogs := make([]*Catalog, 0, len(names))
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		c := def
		if name != DefaultLanguage {
			if c, err = Load(name); err != nil {
				return nil, err
			}
		}
		catalogs = append(catalogs, c)
		tags = append(tags, c.tag)
	}

	wanted := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = normalize(p); p != "" {
			wanted = append(wanted, p)
		}
	}
	_, idx := language.MatchStrings(language.NewMatcher(tags), wanted...)
	c := catalogs[idx]
	if c != def {
		c.fallback = def
	}
	return c, nil
}

// FromEnv matches the catalog for the process locale.
func FromEnv() (*Catalog, error) {
	return Match(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// normalize turns "zh_CN.UTF-8" into "zh-CN"; "C" and "POSIX" mean nothing.
func normalize(s string) string {
	s, _, _ = strings.Cut(s, ".")
	s, _, _ = strings.Cut(s, "@")
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Param implements config.Translator.
func (c *Catalog) Param(section, key string) (name, desc string, ok bool) {
	if p, found := c.Params[section][key]; found && p.Name != "" {
		return p.Name, p.Description, true
	}
	if c.fallback != nil {
		return c.fallback.Param(section, key)
	}
	return "", "", false
}

// Option implements config.Translator.
func (c *Catalog) Option(section, key, token string) (label, help string, ok bool) {
	if o, found := c.Params[section][key].Options[token]; found && o.Label != "" {
		return o.Label, o.Help, true
	}
	if c.fallback != nil {
		return c.fallback.Option(section, key, token)
	}
	return "", "", false
}

// ButtonHelp returns the help text of b. speed fills in the fast forward
// multiplier.
func (c *Catalog) ButtonHelp(b input.Button, speed int) string {
	text, ok := c.Buttons[b.String()]
	if !ok {
		if c.fallback != nil {
			return c.fallback.ButtonHelp(b, speed)
		}
		return b.HelpFor(speed)
	}
	if b == input.FastForwardA || b == input.FastForwardB {
		return fmt.Sprintf(text, speed)
	}
	return text
}

// Text returns a UI string, or key itself when no catalog has it.
func (c *Catalog) Text(key string) string {
	if s, ok := c.UI[key]; ok {
		return s
	}
	if c.fallback != nil {
		return c.fallback.Text(key)
	}
	return key
}

// Textf formats a UI string.
func (c *Catalog) Textf(key string, args ...any) string {
	return fmt.Sprintf(c.Text(key), args...)
}
