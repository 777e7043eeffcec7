package faq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the FAQ configuration file structure
type Config struct {
	// MatchThreshold is the minimum fuzzy-phase score treated as a usable
	// match. Default: 0.35 (exact-phase hits always score 1.0)
	MatchThreshold float64 `yaml:"match_threshold"`

	// WrapMinConfidence is the minimum emotion confidence before the
	// composer wraps an answer in empathetic phrasing
	WrapMinConfidence float64 `yaml:"wrap_min_confidence"`

	// ConfidenceDivisor normalizes raw emotion lexicon scores into [0,1]
	ConfidenceDivisor float64 `yaml:"confidence_divisor"`

	// Entries is the list of FAQ entries
	Entries []EntryConfig `yaml:"entries"`
}

// EntryConfig represents a single FAQ entry in the config file
type EntryConfig struct {
	// ID is optional; the database assigns one when syncing if absent
	ID string `yaml:"id,omitempty"`

	// Question is the canonical question, used for display and matching
	Question string `yaml:"question"`

	// Answer is the canonical reply text
	Answer string `yaml:"answer"`

	// Category is optional grouping (tickets, refunds, booking, etc.)
	Category string `yaml:"category,omitempty"`

	// Keywords is a comma-separated list of trigger phrases
	Keywords string `yaml:"keywords,omitempty"`

	// EmotionAnswers optionally maps an emotion label to a pre-written
	// answer used verbatim when that emotion is detected
	EmotionAnswers map[string]string `yaml:"emotion_answers,omitempty"`

	// IsActive indicates whether this entry is enabled
	// Defaults to true if not specified
	IsActive *bool `yaml:"is_active,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		MatchThreshold:    DefaultMatchThreshold,
		WrapMinConfidence: 0.3,
		ConfidenceDivisor: 10,
		Entries:           []EntryConfig{},
	}
}

// LoadConfig loads FAQ configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ config file %s: %w", configPath, err)
	}

	// Start with defaults
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ config YAML: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid FAQ config: %w", err)
	}

	applyEntryDefaults(config)

	return config, nil
}

// validateConfig ensures required fields are present and values are sensible
func validateConfig(config *Config) error {
	if config.MatchThreshold <= 0 || config.MatchThreshold > 1 {
		return fmt.Errorf("match_threshold must be between 0 and 1 (exclusive), got %f", config.MatchThreshold)
	}

	if config.WrapMinConfidence < 0 || config.WrapMinConfidence > 1 {
		return fmt.Errorf("wrap_min_confidence must be between 0 and 1, got %f", config.WrapMinConfidence)
	}

	if config.ConfidenceDivisor <= 0 {
		return fmt.Errorf("confidence_divisor must be positive, got %f", config.ConfidenceDivisor)
	}

	if len(config.Entries) == 0 {
		return fmt.Errorf("at least one FAQ entry is required")
	}

	for i, entry := range config.Entries {
		if entry.Question == "" {
			return fmt.Errorf("entry %d: question is required", i)
		}
		if entry.Answer == "" {
			return fmt.Errorf("entry %d: answer is required", i)
		}
	}

	return nil
}

// applyEntryDefaults sets default values for entry fields that weren't specified
func applyEntryDefaults(config *Config) {
	for i := range config.Entries {
		entry := &config.Entries[i]

		// Default is_active to true
		if entry.IsActive == nil {
			isActive := true
			entry.IsActive = &isActive
		}
	}
}

// IsEntryActive returns whether the entry is active (true if nil or true)
func (e *EntryConfig) IsEntryActive() bool {
	return e.IsActive == nil || *e.IsActive
}

// Entry converts the config entry into a catalog Entry
func (e *EntryConfig) Entry() Entry {
	return Entry{
		ID:             e.ID,
		Question:       e.Question,
		Answer:         e.Answer,
		Category:       e.Category,
		Keywords:       e.Keywords,
		EmotionAnswers: e.EmotionAnswers,
	}
}

// Catalog returns the active entries as a catalog, preserving file order.
// Order matters: the exact-match phase is first-entry-wins.
func (c *Config) Catalog() []Entry {
	entries := make([]Entry, 0, len(c.Entries))
	for i := range c.Entries {
		if c.Entries[i].IsEntryActive() {
			entries = append(entries, c.Entries[i].Entry())
		}
	}
	return entries
}
