package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Content.Source != "static/data.json" {
		t.Errorf("expected default content source %q, got %q", "static/data.json", cfg.Content.Source)
	}
	if !cfg.Content.SchemaCheck {
		t.Error("schema check should default to on")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Mode != LogDev {
		t.Errorf("expected default log mode %q, got %q", LogDev, cfg.Log.Mode)
	}
	if len(cfg.Practice.Programs) != len(DefaultProgramPatterns) {
		t.Errorf("expected default program patterns, got %v", cfg.Practice.Programs)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.masterclass.yml")

	original := DefaultConfig()
	original.Content.Source = "https://cdn.example.com/data.json"
	original.Content.SanitizeHTML = true
	original.Runner.URL = "http://runner:9000/run"
	original.Runner.Timeout = 30 * time.Second
	original.Practice.Programs = []string{"exercises/*.yaml"}
	original.Server.Port = 9090
	original.Highlight.Language = "python"
	original.Log.Mode = LogProd

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Content.Source != original.Content.Source {
		t.Errorf("content.source: got %q, want %q", loaded.Content.Source, original.Content.Source)
	}
	if !loaded.Content.SanitizeHTML {
		t.Error("content.sanitize_html: got false, want true")
	}
	if loaded.Runner.URL != original.Runner.URL {
		t.Errorf("runner.url: got %q, want %q", loaded.Runner.URL, original.Runner.URL)
	}
	if loaded.Runner.Timeout != original.Runner.Timeout {
		t.Errorf("runner.timeout: got %v, want %v", loaded.Runner.Timeout, original.Runner.Timeout)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Highlight.Language != "python" {
		t.Errorf("highlight.language: got %q, want python", loaded.Highlight.Language)
	}
	if loaded.Log.Mode != LogProd {
		t.Errorf("log.mode: got %q, want %q", loaded.Log.Mode, LogProd)
	}
	if len(loaded.Practice.Programs) != 1 || loaded.Practice.Programs[0] != "exercises/*.yaml" {
		t.Errorf("practice.programs: got %v", loaded.Practice.Programs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("runner:\n  url: http://exec:1234/run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Runner.URL != "http://exec:1234/run" {
		t.Errorf("runner.url: got %q", cfg.Runner.URL)
	}
	if cfg.Content.Source != "static/data.json" || cfg.Server.Port != 8080 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("MASTERCLASS_RUNNER__URL", "http://override:7000/run")
	t.Setenv("MASTERCLASS_SERVER__PORT", "9999")
	t.Setenv("MASTERCLASS_CONTENT__SANITIZE_HTML", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Runner.URL != "http://override:7000/run" {
		t.Errorf("env override failed: got %q", loaded.Runner.URL)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("env port override failed: got %d", loaded.Server.Port)
	}
	if !loaded.Content.SanitizeHTML {
		t.Error("env bool override failed")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"MASTERCLASS_RUNNER__URL":            "runner.url",
		"MASTERCLASS_CONTENT__SANITIZE_HTML": "content.sanitize_html",
		"MASTERCLASS_LOG__MODE":              "log.mode",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty source", func(c *Config) { c.Content.Source = "" }, true},
		{"empty runner", func(c *Config) { c.Runner.URL = "" }, true},
		{"runner without scheme", func(c *Config) { c.Runner.URL = "runner:9000" }, true},
		{"negative timeout", func(c *Config) { c.Runner.Timeout = -time.Second }, true},
		{"bad pattern", func(c *Config) { c.Practice.Programs = []string{"programs/[.yaml"} }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"bad log mode", func(c *Config) { c.Log.Mode = "loud" }, true},
		{"empty log mode", func(c *Config) { c.Log.Mode = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validateHTTPURL("https://runner.example.com/run"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	if err := validateHTTPURL("ftp://x"); err == nil {
		t.Error("ftp URL should be rejected")
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("valid port rejected: %v", err)
	}
	for _, bad := range []string{"0", "abc", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("port %q should be rejected", bad)
		}
	}
}
