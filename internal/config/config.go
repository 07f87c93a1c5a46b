// Package config loads cellar settings from a YAML file and the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Journal JournalConfig `yaml:"journal"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Log     LogConfig     `yaml:"log"`
}

// JournalConfig selects where and how the collection is stored.
type JournalConfig struct {
	Path     string `yaml:"path"      env:"CELLAR_PATH"      env-default:"."`
	Adapter  string `yaml:"adapter"   env:"CELLAR_ADAPTER"   env-default:"fs"`
	Key      string `yaml:"key"       env:"CELLAR_KEY"       env-default:"sommelier_wines_v2"`
	Locale   string `yaml:"locale"    env:"CELLAR_LOCALE"    env-default:"en"`
	ReadOnly bool   `yaml:"read_only" env:"CELLAR_READ_ONLY"`

	// Unsafe disables the `go run` sandbox. A zero value keeps it on.
	Unsafe bool `yaml:"unsafe" env:"CELLAR_UNSAFE"`
}

// GeminiConfig holds the AI gateway settings. APIKey falls back to API_KEY.
type GeminiConfig struct {
	APIKey  string        `yaml:"api_key"  env:"GEMINI_API_KEY,API_KEY"`
	Model   string        `yaml:"model"    env:"GEMINI_MODEL"    env-default:"gemini-3-flash-preview"`
	BaseURL string        `yaml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `yaml:"timeout"  env:"GEMINI_TIMEOUT"  env-default:"60s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"CELLAR_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"CELLAR_LOG_FORMAT" env-default:"text"`
}
