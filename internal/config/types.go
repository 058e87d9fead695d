package config

import "time"

// LogMode selects the log encoder.
type LogMode string

const (
	LogDev  LogMode = "dev"
	LogProd LogMode = "prod"
)

// Config is the top-level masterclass configuration, corresponding to .masterclass.yml.
type Config struct {
	Content   ContentConfig   `yaml:"content" koanf:"content"`
	Runner    RunnerConfig    `yaml:"runner" koanf:"runner"`
	Practice  PracticeConfig  `yaml:"practice" koanf:"practice"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Highlight HighlightConfig `yaml:"highlight" koanf:"highlight"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
}

// ContentConfig locates the content document.
type ContentConfig struct {
	// Source is a file path or an http(s) URL.
	Source       string `yaml:"source" koanf:"source"`
	SchemaCheck  bool   `yaml:"schema_check" koanf:"schema_check"`
	SanitizeHTML bool   `yaml:"sanitize_html" koanf:"sanitize_html"`
}

// RunnerConfig points at the external code execution service.
type RunnerConfig struct {
	URL     string        `yaml:"url" koanf:"url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// PracticeConfig lists the practice program files.
type PracticeConfig struct {
	Programs []string `yaml:"programs" koanf:"programs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// HighlightConfig controls code block highlighting on topic pages.
type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled" koanf:"enabled"`
	Style    string `yaml:"style" koanf:"style"`
	Language string `yaml:"language" koanf:"language"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Mode LogMode `yaml:"mode" koanf:"mode"`
}
