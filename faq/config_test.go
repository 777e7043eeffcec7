package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		errMsg    string
		checkFunc func(t *testing.T, config *Config)
	}{
		{
			name: "valid config",
			content: `
match_threshold: 0.4
wrap_min_confidence: 0.25
confidence_divisor: 8
entries:
  - question: "What are the ticket prices?"
    answer: "Tickets are $12."
    category: "tickets"
    keywords: "ticket price,price"
    is_active: true
`,
			wantErr: false,
			checkFunc: func(t *testing.T, config *Config) {
				assert.Equal(t, 0.4, config.MatchThreshold)
				assert.Equal(t, 0.25, config.WrapMinConfidence)
				assert.Equal(t, 8.0, config.ConfidenceDivisor)
				assert.Len(t, config.Entries, 1)
				assert.Equal(t, "What are the ticket prices?", config.Entries[0].Question)
				assert.True(t, config.Entries[0].IsEntryActive())
			},
		},
		{
			name: "default values applied",
			content: `
entries:
  - question: "Test question"
    answer: "Test answer"
`,
			wantErr: false,
			checkFunc: func(t *testing.T, config *Config) {
				assert.Equal(t, DefaultMatchThreshold, config.MatchThreshold)
				assert.Equal(t, 0.3, config.WrapMinConfidence)
				assert.Equal(t, 10.0, config.ConfidenceDivisor)
				// is_active defaults to true
				assert.True(t, config.Entries[0].IsEntryActive())
			},
		},
		{
			name: "emotion answers parsed",
			content: `
entries:
  - question: "How do I get a refund?"
    answer: "Use My Orders."
    emotion_answers:
      angry: "Sorry about that. Use My Orders."
`,
			wantErr: false,
			checkFunc: func(t *testing.T, config *Config) {
				require.Len(t, config.Entries, 1)
				assert.Equal(t, "Sorry about that. Use My Orders.", config.Entries[0].EmotionAnswers["angry"])
			},
		},
		{
			name: "invalid threshold (too high)",
			content: `
match_threshold: 1.5
entries:
  - question: "Test"
    answer: "Answer"
`,
			wantErr: true,
			errMsg:  "match_threshold must be between 0 and 1",
		},
		{
			name: "invalid divisor",
			content: `
confidence_divisor: -1
entries:
  - question: "Test"
    answer: "Answer"
`,
			wantErr: true,
			errMsg:  "confidence_divisor must be positive",
		},
		{
			name: "no entries",
			content: `
entries: []
`,
			wantErr: true,
			errMsg:  "at least one FAQ entry is required",
		},
		{
			name: "entry missing question",
			content: `
entries:
  - answer: "Answer"
`,
			wantErr: true,
			errMsg:  "question is required",
		},
		{
			name: "entry missing answer",
			content: `
entries:
  - question: "Test"
`,
			wantErr: true,
			errMsg:  "answer is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "faq.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			config, err := LoadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, config)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	_, err = LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path cannot be empty")
}

func TestConfigCatalog(t *testing.T) {
	inactive := false
	config := &Config{
		Entries: []EntryConfig{
			{ID: "a", Question: "First?", Answer: "1"},
			{ID: "b", Question: "Skipped?", Answer: "2", IsActive: &inactive},
			{ID: "c", Question: "Second?", Answer: "3", Keywords: "second"},
		},
	}

	catalog := config.Catalog()
	require.Len(t, catalog, 2)
	// file order survives; the exact phase depends on it
	assert.Equal(t, "a", catalog[0].ID)
	assert.Equal(t, "c", catalog[1].ID)
	assert.Equal(t, "second", catalog[1].Keywords)
}
