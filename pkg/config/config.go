// Package config loads obo2owl settings from TOML or YAML files.
//
// The format is picked by file extension: .toml for TOML, .yaml or .yml
// for YAML. Fields left empty take the defaults from SetDefaults.
//
//	format = "ofn"
//	force_import = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[idspaces]
//	EX = "http://example.org/ex#"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Defaults.
const (
	DefaultCacheTTL   = 7 * 24 * time.Hour
	DefaultServerAddr = ":8080"
	DefaultRedisAddr  = "localhost:6379"
)

// Config holds user settings. CLI flags override them.
type Config struct {
	Format string `toml:"format" yaml:"format"`
	// ForceImport is a pointer so an explicit false survives SetDefaults.
	ForceImport *bool             `toml:"force_import" yaml:"force_import"`
	Idspaces    map[string]string `toml:"idspaces" yaml:"idspaces"`
	// Prefixes are extra CURIE prefixes for output abbreviation only.
	Prefixes map[string]string `toml:"prefixes" yaml:"prefixes"`
	Cache    CacheConfig       `toml:"cache" yaml:"cache"`
	Server   ServerConfig      `toml:"server" yaml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"`
	Dir       string   `toml:"dir" yaml:"dir"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

// ServerConfig configures `obo2owl serve`.
type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Duration is a time.Duration written as "24h" in config files.
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler, used by toml.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}

// Default returns a config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills empty fields.
func (c *Config) SetDefaults() {
	if c.Format == "" {
		c.Format = pipeline.DefaultFormat
	}
	if c.ForceImport == nil {
		t := true
		c.ForceImport = &t
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheFile
	}
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = DefaultRedisAddr
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = DefaultCacheTTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// Validate checks enumerated fields and idspace prefixes.
func (c *Config) Validate() error {
	if err := pipeline.ValidateFormat(c.Format); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	for prefix, base := range c.Idspaces {
		if err := errors.ValidateIdspacePrefix(prefix); err != nil {
			return err
		}
		if err := errors.ValidateIRI(base); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	c := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse config %s", path)
	}

	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault loads path, or returns defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
