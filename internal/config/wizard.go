package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/content"
)

// shellCandidates are page shells picked up when present in the project.
var shellCandidates = []string{"index.html", "public/index.html", "src/index.html"}

// detectShell returns the first existing page shell in the current
// directory, or "" to use the built-in one.
func detectShell() string {
	for _, name := range shellCandidates {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	shell := detectShell()
	if shell != "" {
		fmt.Printf("Detected page shell: %s\n\n", shell)
	}

	// 1. Content source.
	sourcePrompt := promptui.Prompt{
		Label:   "Content document (path or http(s) URL)",
		Default: cfg.Content.Source,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a content source is required")
			}
			return nil
		},
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Content.Source = strings.TrimSpace(source)

	// 2. Page shell.
	shellPrompt := promptui.Prompt{
		Label:   "Page shell (leave blank for the built-in page)",
		Default: shell,
	}
	shell, err = shellPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page shell: %w", err)
	}
	cfg.Site.Shell = strings.TrimSpace(shell)

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for folio build",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = strings.TrimSpace(outputDir)

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Site.Exclude = append(cfg.Site.Exclude, splitAndTrim(excludeStr)...)

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for folio serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 6. Live reload.
	reloadPrompt := promptui.Select{
		Label: "Reload the browser when content changes?",
		Items: []string{"yes", "no"},
	}
	reloadIdx, _, err := reloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload selection: %w", err)
	}
	cfg.Server.LiveReload = reloadIdx == 0
	cfg.Server.Watch = cfg.Server.LiveReload

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !content.NewLoader(cfg.Content.Source).IsRemote() {
		if _, err := os.Stat(cfg.Content.Source); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet. Create it before running folio build.\n", cfg.Content.Source)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
