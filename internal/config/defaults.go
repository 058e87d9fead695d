package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".masterclass.yml"

// DefaultProgramPatterns is where practice program files are looked up.
var DefaultProgramPatterns = []string{"programs/**/*.yaml", "programs/**/*.yml"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Source:      "static/data.json",
			SchemaCheck: true,
		},
		Runner: RunnerConfig{
			URL: "http://localhost:8081/run",
		},
		Practice: PracticeConfig{
			Programs: append([]string(nil), DefaultProgramPatterns...),
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Highlight: HighlightConfig{
			Enabled:  true,
			Style:    "github",
			Language: "java",
		},
		Log: LogConfig{
			Mode: LogDev,
		},
	}
}
