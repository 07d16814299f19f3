package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"emoji threshold too high", func(c *Config) { c.EmojiThreshold = 1 }, true},
		{"mixed threshold zero", func(c *Config) { c.MixedLanguageThreshold = 0 }, true},
		{"negative sarcasm threshold", func(c *Config) { c.SarcasmThreshold = -0.1 }, true},
		{"zero idiom weight", func(c *Config) { c.IdiomWeight = 0 }, true},
		{"emoji text weight above one", func(c *Config) { c.EmojiTextWeight = 1.5 }, true},
		{"negative cache size", func(c *Config) { c.CacheSize = -1 }, true},
		{"cache disabled", func(c *Config) { c.CacheSize = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.3, cfg.EmojiThreshold)
	assert.Equal(t, 0.8, cfg.MixedLanguageThreshold)
	assert.Equal(t, 0.5, cfg.SarcasmThreshold)
	assert.Equal(t, 2.0, cfg.IdiomWeight)
	assert.Equal(t, 1000, cfg.CacheSize)
	assert.Positive(t, cfg.Workers)
}
