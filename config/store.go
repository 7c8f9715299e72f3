package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/spf13/pflag"
)

// ConfigItem is the gdata item key of the global config file.
const ConfigItem = "config.ini"

// Store loads and saves the serialized config.
type Store interface {
	// Load returns nil data and no error when nothing was saved yet.
	Load() ([]byte, error)
	Save(data []byte) error
	// Location describes where the data lives, for logs.
	Location() string
}

// GDataStore keeps the config in the per-user application data directory.
type GDataStore struct {
	appName string
	manager *gdata.Manager
}

// OpenGDataStore opens the application data directory for appName.
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("config: open app data for %s: %w", appName, err)
	}
	return &GDataStore{appName: appName, manager: m}, nil
}

func (s *GDataStore) Load() ([]byte, error) {
	data, err := s.manager.LoadItem(ConfigItem)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", ConfigItem, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

func (s *GDataStore) Save(data []byte) error {
	if err := s.manager.SaveItem(ConfigItem, data); err != nil {
		return fmt.Errorf("config: save %s: %w", ConfigItem, err)
	}
	return nil
}

func (s *GDataStore) Location() string {
	return "gdata:" + s.appName + "/" + ConfigItem
}

// FileStore keeps the config in an explicit file, as chosen with --config.
type FileStore struct {
	Path string
}

func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", s.Path, err)
	}
	return data, nil
}

// Save writes through a temporary file so a crash never leaves half a config.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.ini")
	if err != nil {
		return fmt.Errorf("config: save %s: %w", s.Path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("config: save %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: save %s: %w", s.Path, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("config: save %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileStore) Location() string {
	return s.Path
}

// MemoryStore keeps the config in memory, for runs where no persistent
// store could be opened.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]byte, error) {
	if len(s.data) == 0 {
		return nil, nil
	}
	return bytes.Clone(s.data), nil
}

func (s *MemoryStore) Save(data []byte) error {
	s.data = bytes.Clone(data)
	return nil
}

func (s *MemoryStore) Location() string {
	return "memory"
}

// OpenStore picks the store: the --config file when given, else the global gdata store.
func OpenStore(flags *pflag.FlagSet, appName string) (Store, error) {
	if path := ConfigPath(flags); path != "" {
		return &FileStore{Path: path}, nil
	}
	s, err := OpenGDataStore(appName)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create builds a config from defaults, then the stored file, then the
// command line. A store failure is logged and returned, but the config is
// always usable.
func Create(flags *pflag.FlagSet, store Store, opts ...Option) (*Config, error) {
	c := Default(opts...)
	err := c.Load(store)
	c.LoadFromArgs(flags)
	return c, err
}

// Load applies the stored file on top of the current values.
func (c *Config) Load(store Store) error {
	data, err := readStore(store)
	if err != nil || data == nil {
		return err
	}
	return c.apply(store, data)
}

// Reload rebuilds the config from the defaults, the store and the command
// line, so keys removed from the file fall back to their defaults. When the
// store can't be read the current values are kept.
func (c *Config) Reload(store Store, flags *pflag.FlagSet) error {
	data, err := readStore(store)
	if err == nil {
		c.Reset()
		if data != nil {
			err = c.apply(store, data)
		}
	}
	c.LoadFromArgs(flags)
	return err
}

func readStore(store Store) ([]byte, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.Load()
	if err != nil {
		log.Warn("could not load config", "location", store.Location(), "err", err)
		return nil, err
	}
	if data == nil {
		log.Info("no saved config, using defaults", "location", store.Location())
	}
	return data, nil
}

func (c *Config) apply(store Store, data []byte) error {
	report, err := c.LoadFromStream(bytes.NewReader(data))
	if err != nil {
		log.Warn("could not parse config", "location", store.Location(), "err", err)
		return err
	}
	log.Debug("config loaded", "location", store.Location(), "applied", report.Applied, "skipped", report.Skipped())
	return nil
}

// Save serializes the config into store.
func (c *Config) Save(store Store) error {
	if store == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := c.WriteToStream(&buf); err != nil {
		return err
	}
	if err := store.Save(buf.Bytes()); err != nil {
		log.Warn("could not save config", "location", store.Location(), "err", err)
		return err
	}
	log.Debug("config saved", "location", store.Location())
	return nil
}
