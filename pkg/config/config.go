package config

import (
	"github.com/arthur-debert/gitig/pkg/detect"
)

// Color modes accepted by ui.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged gitig configuration
type Config struct {
	Output    Output    `koanf:"output" json:"output" yaml:"output"`
	Compose   Compose   `koanf:"compose" json:"compose" yaml:"compose"`
	Detect    Detect    `koanf:"detect" json:"detect" yaml:"detect"`
	Templates Templates `koanf:"templates" json:"templates" yaml:"templates"`
	UI        UI        `koanf:"ui" json:"ui" yaml:"ui"`
}

// Output holds settings for the file written by init and add
type Output struct {
	Path   string `koanf:"path" json:"path" yaml:"path"`
	Append bool   `koanf:"append" json:"append" yaml:"append"`
}

// Compose holds settings for combining user supplied template names
type Compose struct {
	Dedupe bool `koanf:"dedupe" json:"dedupe" yaml:"dedupe"`
}

// Detect holds detection settings
type Detect struct {
	Dedupe bool         `koanf:"dedupe" json:"dedupe" yaml:"dedupe"`
	Rules  []DetectRule `koanf:"rules" json:"rules" yaml:"rules"`
}

// DetectRule maps directory entry globs to a template name
type DetectRule struct {
	Template string   `koanf:"template" json:"template" yaml:"template"`
	Patterns []string `koanf:"patterns" json:"patterns" yaml:"patterns"`
}

// Templates holds the user template settings
type Templates struct {
	// Dir is the user template directory. Empty means UserTemplatesDir().
	Dir string `koanf:"dir" json:"dir" yaml:"dir"`
}

// UI holds presentation settings
type UI struct {
	Color string `koanf:"color" json:"color" yaml:"color"`
}

// DetectRules converts the configured extra rules to detector rules
func (c *Config) DetectRules() []detect.Rule {
	if len(c.Detect.Rules) == 0 {
		return nil
	}
	rules := make([]detect.Rule, len(c.Detect.Rules))
	for i, r := range c.Detect.Rules {
		rules[i] = detect.Rule{Template: r.Template, Patterns: r.Patterns}
	}
	return rules
}

// TemplatesDir returns the configured user template directory, falling back
// to the XDG location
func (c *Config) TemplatesDir() string {
	if c.Templates.Dir != "" {
		return c.Templates.Dir
	}
	return UserTemplatesDir()
}
