package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/automoto/rpgplayer/input"
	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"
)

// LoadReport summarizes what a load skipped. Nothing in it is fatal.
type LoadReport struct {
	Applied         int
	MalformedLines  []string
	UnknownSections []string
	UnknownKeys     []string // "Section.Key"
	IgnoredValues   []string // "Section.Key=Value"
	HiddenKeys      []string // "Section.Key"
	UnknownBindings []string // "BUTTON=TOKEN"
}

// Skipped counts every entry that was not applied.
func (r LoadReport) Skipped() int {
	return len(r.MalformedLines) + len(r.UnknownSections) + len(r.UnknownKeys) +
		len(r.IgnoredValues) + len(r.HiddenKeys) + len(r.UnknownBindings)
}

// LoadFromStream applies "[Section]" / "Key=Value" text on top of the current
// values. Unknown sections, keys and values are skipped, as are hidden
// parameters. Names match without regard to case and later entries for the
// same key win. The only error is a failure reading r.
func (c *Config) LoadFromStream(r io.Reader) (LoadReport, error) {
	var report LoadReport

	data, err := sanitize(r, &report)
	if err != nil {
		return report, fmt.Errorf("config: read: %w", err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreContinuation:      true,
		KeyValueDelimiters:      "=",
		InsensitiveSections:     true,
		InsensitiveKeys:         true,
	}, data)
	if err != nil {
		// sanitize removes every line the parser rejects, so this is unexpected
		return report, fmt.Errorf("config: parse: %w", err)
	}

	for _, sec := range f.Sections() {
		name := sec.Name()
		if strings.EqualFold(name, ini.DefaultSection) {
			continue
		}
		if strings.EqualFold(name, SectionInputMapping) {
			c.loadMappings(sec, &report)
			continue
		}
		g, ok := c.Group(name)
		if !ok {
			report.UnknownSections = append(report.UnknownSections, name)
			continue
		}
		for _, key := range sec.Keys() {
			p, ok := c.Lookup(g.Section(), key.Name())
			if !ok {
				report.UnknownKeys = append(report.UnknownKeys, g.Section()+"."+key.Name())
				continue
			}
			id := g.Section() + "." + p.Key()
			if p.IsHidden() {
				report.HiddenKeys = append(report.HiddenKeys, id)
				continue
			}
			if !p.SetText(key.String()) {
				report.IgnoredValues = append(report.IgnoredValues, id+"="+key.String())
				continue
			}
			report.Applied++
		}
	}

	if n := report.Skipped(); n > 0 {
		log.Debug("config entries skipped", "count", n, "sections", report.UnknownSections, "keys", report.UnknownKeys)
	}
	return report, nil
}

// loadMappings replaces the bindings of every listed button
func (c *Config) loadMappings(sec *ini.Section, report *LoadReport) {
	if c.Input.IsHidden() {
		return
	}
	for _, key := range sec.Keys() {
		b, ok := input.ButtonFromName(strings.ToUpper(key.Name()))
		if !ok {
			report.UnknownKeys = append(report.UnknownKeys, SectionInputMapping+"."+key.Name())
			continue
		}
		for _, tok := range input.DecodeKeys(c.Input.Buttons, b, key.String()) {
			report.UnknownBindings = append(report.UnknownBindings, b.String()+"="+tok)
		}
		report.Applied++
	}
}

// maxLineLen bounds a single line. Longer lines are reported as malformed.
const maxLineLen = 64 * 1024

// sanitize drops lines the ini parser would abort on: section headers that
// are unclosed or empty, over-long lines, and lines that are neither
// headers, comments nor key/value pairs.
func sanitize(r io.Reader, report *LoadReport) ([]byte, error) {
	var out bytes.Buffer
	br := bufio.NewReader(r)
	for done := false; !done; {
		line, err := br.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF):
			done = true
		case err != nil:
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", trimmed[0] == ';', trimmed[0] == '#':
		case len(trimmed) > maxLineLen:
			report.MalformedLines = append(report.MalformedLines, trimmed[:32]+"...")
			continue
		case trimmed[0] == '[':
			end := strings.LastIndexByte(trimmed, ']')
			if end < 0 || strings.TrimSpace(trimmed[1:end]) == "" {
				report.MalformedLines = append(report.MalformedLines, trimmed)
				continue
			}
			// Strip padding inside the brackets so "[ Video ]" matches
			line = "[" + strings.TrimSpace(trimmed[1:end]) + "]"
		default:
			key, value, found := strings.Cut(trimmed, "=")
			key = strings.TrimSpace(key)
			if !found || key == "" || strings.ContainsAny(key[:1], "\"`") ||
				strings.HasPrefix(strings.TrimSpace(value), `"""`) {
				report.MalformedLines = append(report.MalformedLines, trimmed)
				continue
			}
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}
