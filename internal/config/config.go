package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/ascii-wars/internal/armoury"
)

// Config is the on-disk settings file. Keys left out of the file keep their
// default values.
type Config struct {
	MaxDecks      int      `yaml:"max_decks"`
	DeckSizeLimit int      `yaml:"deck_size_limit"`
	NameLength    int      `yaml:"name_length"`
	DeckRows      int      `yaml:"deck_rows"`
	UnitRows      int      `yaml:"unit_rows"`
	Nations       []string `yaml:"nations"`
	Categories    []string `yaml:"categories"`
}

func Default() Config {
	opts := armoury.DefaultOptions()
	return Config{
		MaxDecks:      opts.MaxDecks,
		DeckSizeLimit: opts.DeckSizeLimit,
		NameLength:    opts.NameLength,
		DeckRows:      opts.DeckRows,
		UnitRows:      opts.UnitRows,
		Nations:       opts.Nations,
		Categories:    opts.Categories,
	}
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "ascii-wars", "config.yaml"), nil
}

// Load reads path. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Nations = normalizeList(cfg.Nations)
	cfg.Categories = normalizeList(cfg.Categories)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

func (c Config) Validate() error {
	return c.ArmouryOptions().Validate()
}

func (c Config) ArmouryOptions() armoury.Options {
	return armoury.Options{
		MaxDecks:      c.MaxDecks,
		DeckSizeLimit: c.DeckSizeLimit,
		NameLength:    c.NameLength,
		DeckRows:      c.DeckRows,
		UnitRows:      c.UnitRows,
		Nations:       append([]string(nil), c.Nations...),
		Categories:    append([]string(nil), c.Categories...),
	}
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
