package sentiment

import (
	"fmt"
	"runtime"
)

// Config holds the tunable thresholds of the classification pipeline.
// The defaults reproduce the behaviour the reports were calibrated against.
type Config struct {
	EmojiThreshold         float64 // emoji score band for positive/negative
	MixedLanguageThreshold float64 // max language ratio below which text is mixed
	SarcasmThreshold       float64 // sarcasm_score above which sarcasm is detected
	IdiomWeight            float64
	EmojiTextWeight        float64 // share of the emoji score applied to neutral text
	CacheSize              int     // 0 disables memoization
	Workers                int
}

// DefaultConfig returns the parity defaults
func DefaultConfig() Config {
	return Config{
		EmojiThreshold:         0.3,
		MixedLanguageThreshold: 0.8,
		SarcasmThreshold:       0.5,
		IdiomWeight:            2.0,
		EmojiTextWeight:        0.5,
		CacheSize:              1000,
		Workers:                runtime.NumCPU(),
	}
}

// Validate checks that every threshold is inside its usable range
func (c Config) Validate() error {
	if c.EmojiThreshold < 0 || c.EmojiThreshold >= 1 {
		return fmt.Errorf("emoji threshold must be in [0, 1), got %.2f", c.EmojiThreshold)
	}
	if c.MixedLanguageThreshold <= 0 || c.MixedLanguageThreshold > 1 {
		return fmt.Errorf("mixed language threshold must be in (0, 1], got %.2f", c.MixedLanguageThreshold)
	}
	if c.SarcasmThreshold < 0 || c.SarcasmThreshold >= 1 {
		return fmt.Errorf("sarcasm threshold must be in [0, 1), got %.2f", c.SarcasmThreshold)
	}
	if c.IdiomWeight <= 0 {
		return fmt.Errorf("idiom weight must be positive, got %.2f", c.IdiomWeight)
	}
	if c.EmojiTextWeight < 0 || c.EmojiTextWeight > 1 {
		return fmt.Errorf("emoji text weight must be in [0, 1], got %.2f", c.EmojiTextWeight)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size cannot be negative")
	}
	return nil
}
