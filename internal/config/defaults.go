package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".folio.yml"

// DefaultExcludes are glob patterns never copied from the static directory.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"**/*.map",
	"*.lock",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Source:  "assets/data/content.json",
			Timeout: 10 * time.Second,
		},
		Site: SiteConfig{
			StaticDir: ".",
			OutputDir: "dist",
			Exclude:   append([]string(nil), DefaultExcludes...),
		},
		Server: ServerConfig{
			Port:       8080,
			Watch:      true,
			LiveReload: true,
			Debounce:   300 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
