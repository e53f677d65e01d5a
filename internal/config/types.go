package config

import "time"

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Content ContentConfig `yaml:"content" koanf:"content"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ContentConfig selects where the content document comes from.
type ContentConfig struct {
	Source  string        `yaml:"source" koanf:"source"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// SiteConfig describes the page shell, the static assets copied next to
// it, and where builds are written.
type SiteConfig struct {
	Shell     string   `yaml:"shell,omitempty" koanf:"shell"`
	StaticDir string   `yaml:"static_dir" koanf:"static_dir"`
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}

// ServerConfig holds settings for folio serve.
type ServerConfig struct {
	Port       int           `yaml:"port" koanf:"port"`
	AllowAll   bool          `yaml:"allow_all" koanf:"allow_all"`
	Watch      bool          `yaml:"watch" koanf:"watch"`
	LiveReload bool          `yaml:"live_reload" koanf:"live_reload"`
	Debounce   time.Duration `yaml:"debounce" koanf:"debounce"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
