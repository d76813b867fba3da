// Package config loads exporter settings from a YAML file overlaid by
// PARKSAVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"parksave.dev/internal/persistence/sv6"
)

type Config struct {
	RemoveTracklessRides bool   `yaml:"remove_trackless_rides" env:"PARKSAVE_REMOVE_TRACKLESS_RIDES"`
	PackObjects          bool   `yaml:"pack_objects" env:"PARKSAVE_PACK_OBJECTS"`
	ObjectDir            string `yaml:"object_dir" env:"PARKSAVE_OBJECT_DIR"`
	GameVersion          uint32 `yaml:"game_version" env:"PARKSAVE_GAME_VERSION"`

	// ArchiveDir enables the compressed save archive when set.
	ArchiveDir string `yaml:"archive_dir" env:"PARKSAVE_ARCHIVE_DIR"`
	// IndexDB enables the SQLite save index when set.
	IndexDB string `yaml:"index_db" env:"PARKSAVE_INDEX_DB"`
	// JournalDir enables the compressed export journal when set.
	JournalDir string `yaml:"journal_dir" env:"PARKSAVE_JOURNAL_DIR"`
}

var ErrPackWithoutObjects = errors.New("pack_objects needs object_dir")

func Default() Config {
	return Config{
		RemoveTracklessRides: true,
		GameVersion:          sv6.GameVersion,
	}
}

// Load reads path over the defaults, then applies environment overrides. An
// empty path skips the file.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, err
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.PackObjects && c.ObjectDir == "" {
		return ErrPackWithoutObjects
	}
	return nil
}
