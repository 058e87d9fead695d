package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// contentCandidates are checked in order to suggest a content source.
var contentCandidates = []string{
	"static/data.json",
	"data.json",
	"content/data.json",
}

// detectContentSource returns the first existing candidate document.
func detectContentSource() string {
	for _, c := range contentCandidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return DefaultConfig().Content.Source
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to masterclass! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Prompt{
		Label:   "Content document (file path or URL)",
		Default: detectContentSource(),
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Content.Source = source

	// 2. Code execution service.
	runnerPrompt := promptui.Prompt{
		Label:    "Code execution service URL",
		Default:  cfg.Runner.URL,
		Validate: validateHTTPURL,
	}
	runnerURL, err := runnerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("runner url: %w", err)
	}
	cfg.Runner.URL = runnerURL

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Highlighting language.
	langPrompt := promptui.Select{
		Label: "Language used for code highlighting",
		Items: []string{"java", "python", "go", "c", "cpp", "javascript", "none"},
	}
	_, lang, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight language: %w", err)
	}
	if lang == "none" {
		cfg.Highlight.Enabled = false
	} else {
		cfg.Highlight.Language = lang
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("must be a number between 1 and 65535")
	}
	return nil
}
