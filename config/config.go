// Package config loads chronos CLI defaults from a YAML file.
//
// Example:
//
//	cfg, err := config.Load("./chronos.yaml")
//	if err != nil {
//	        cfg = config.Default()
//	}
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/pachecot/chronos"
)

var log = logrus.NewEntry(logrus.StandardLogger())

// Config controls the defaults the chronos CLI falls back to when a flag is
// not given explicitly.
type Config struct {
	// DefaultZone is the IANA zone id (or "UTC") used when a command needs
	// a zone and none was passed with --zone.
	DefaultZone string `yaml:"default_zone"`

	// DefaultResolver names the ZoneLocalMappingResolver used to resolve
	// ambiguous or skipped local times: "strict" or "lenient".
	DefaultResolver string `yaml:"default_resolver"`

	// Layout is the Go reference-time-style layout the CLI formats
	// ZonedDateTime output with.
	Layout string `yaml:"layout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DefaultZone:     "UTC",
		DefaultResolver: "strict",
		Layout:          "2006-01-02T15:04:05Z07:00",
	}
}

// Load reads a YAML configuration document from path. Fields absent from
// the document keep their Default() value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	log.WithField("path", path).Debug("config: loaded")
	return cfg, nil
}

// LoadOrDefault loads path if it exists and is readable, falling back to
// Default() otherwise. It is the form the CLI uses, since a missing config
// file is not an error for a tool this small.
func LoadOrDefault(path string) *Config {
	if path == "" {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		log.WithField("path", path).WithError(err).Warn("config: falling back to defaults")
		return Default()
	}
	return cfg
}

// Resolver looks up the ZoneLocalMappingResolver named by DefaultResolver.
func (c *Config) Resolver() (chronos.ZoneLocalMappingResolver, error) {
	return ResolverByName(c.DefaultResolver)
}

// ResolverByName maps a config/flag resolver name to its resolver. Known
// names are "strict" and "lenient".
func ResolverByName(name string) (chronos.ZoneLocalMappingResolver, error) {
	switch name {
	case "", "strict":
		return chronos.StrictResolver, nil
	case "lenient":
		return chronos.LenientResolver, nil
	default:
		return nil, fmt.Errorf("config: unknown resolver %q (want \"strict\" or \"lenient\")", name)
	}
}
