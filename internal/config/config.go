// Package config loads and generates the .readably.yml configuration
// file. Config values sit between built-in defaults and command-line
// flags: flags override config, config overrides defaults.
package config

import (
	"github.com/gobwas/glob"
)

// Config is the top-level configuration.
type Config struct {
	// Audience is the target audience preset ID.
	Audience string `yaml:"audience,omitempty"`
	// WordsPerMinute is the reading rate for time estimates.
	WordsPerMinute int `yaml:"words-per-minute,omitempty"`
	// SpeakingWordsPerMinute is the speaking rate for time estimates.
	SpeakingWordsPerMinute int `yaml:"speaking-words-per-minute,omitempty"`
	// Format selects the default output format: text or json.
	Format string `yaml:"format,omitempty"`
	// Ignore lists glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Audience:               "general",
		WordsPerMinute:         200,
		SpeakingWordsPerMinute: 150,
		Format:                 "text",
	}
}

// Merge overlays non-zero fields of other onto c and returns c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Audience != "" {
		c.Audience = other.Audience
	}
	if other.WordsPerMinute > 0 {
		c.WordsPerMinute = other.WordsPerMinute
	}
	if other.SpeakingWordsPerMinute > 0 {
		c.SpeakingWordsPerMinute = other.SpeakingWordsPerMinute
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if len(other.Ignore) > 0 {
		c.Ignore = append(c.Ignore, other.Ignore...)
	}
	return c
}

// Ignored returns true if path matches any ignore pattern. Patterns
// that fail to compile are skipped.
func (c *Config) Ignored(path string) bool {
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) {
			return true
		}
	}
	return false
}
