package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MASTERCLASS_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MASTERCLASS_*). A double underscore
// separates nested keys: MASTERCLASS_RUNNER__URL -> runner.url.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. Slices are filled after unmarshalling so a
	// configured list replaces the default instead of merging into it.
	cfg := DefaultConfig()
	cfg.Practice.Programs = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.Practice.Programs) == 0 {
		cfg.Practice.Programs = append([]string(nil), DefaultProgramPatterns...)
	}

	return cfg, nil
}

// envKey maps MASTERCLASS_CONTENT__SANITIZE_HTML to content.sanitize_html.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogModes = map[LogMode]bool{
	LogDev:  true,
	LogProd: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Content.Source == "" {
		return fmt.Errorf("content.source is required")
	}

	if c.Runner.URL == "" {
		return fmt.Errorf("runner.url is required")
	}
	u, err := url.Parse(c.Runner.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid runner.url %q: must be an http(s) URL", c.Runner.URL)
	}
	if c.Runner.Timeout < 0 {
		return fmt.Errorf("runner.timeout must be non-negative")
	}

	for _, p := range c.Practice.Programs {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid practice.programs pattern %q", p)
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be 1-65535", c.Server.Port)
	}

	if c.Log.Mode != "" && !validLogModes[c.Log.Mode] {
		return fmt.Errorf("invalid log.mode %q: must be one of dev, prod", c.Log.Mode)
	}

	return nil
}
