package lint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultMaxTitleLength is the title-length limit when the config does not
// set one.
const defaultMaxTitleLength = 120

// Config holds the naming conventions for a check run. All fields are
// optional in the YAML file — omitted fields keep their defaults.
type Config struct {
	// MaxTitleLength is the LNT005 limit in runes.
	MaxTitleLength int `yaml:"max_title_length"`
	// TagPrefix is the required first characters of every tag (LNT007).
	TagPrefix string `yaml:"tag_prefix"`
	// RequiredTags lists tags every plain scenario must carry (LNT006).
	RequiredTags []string `yaml:"required_tags"`
	// AllowOnly permits committed [ONLY] markers (LNT001).
	AllowOnly bool `yaml:"allow_only"`
	// AllowSkipped permits [SKIPPED] markers (LNT002).
	AllowSkipped bool `yaml:"allow_skipped"`
	// AllowTodo permits [TODO] markers (LNT003).
	AllowTodo bool `yaml:"allow_todo"`
}

// DefaultConfig returns the conventions used when no config file exists:
// 120-rune titles, "@"-prefixed tags, no required tags, skips and todos
// allowed, committed [ONLY] markers rejected.
func DefaultConfig() Config {
	return Config{
		MaxTitleLength: defaultMaxTitleLength,
		TagPrefix:      "@",
		AllowSkipped:   true,
		AllowTodo:      true,
	}
}

// ParseConfig parses a Config from raw YAML bytes, layered over
// DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse lint config: %w", err)
	}
	if cfg.MaxTitleLength <= 0 {
		cfg.MaxTitleLength = defaultMaxTitleLength
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read lint config: %w", err)
	}
	return ParseConfig(data)
}
