package sentiment

import (
	"unicode"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

type scriptRange struct {
	language string
	lo, hi   rune
}

var indicScripts = []scriptRange{
	{models.LanguageDevanagari, 0x0900, 0x097F},
	{models.LanguageBengali, 0x0980, 0x09FF},
	{models.LanguageGujarati, 0x0A80, 0x0AFF},
	{models.LanguageTamil, 0x0B80, 0x0BFF},
	{models.LanguageTelugu, 0x0C00, 0x0C7F},
	{models.LanguageKannada, 0x0C80, 0x0CFF},
	{models.LanguageMalayalam, 0x0D00, 0x0D7F},
}

// languagePriority breaks ties when two ratios are equal
var languagePriority = []string{
	models.LanguageEnglish,
	models.LanguageDevanagari,
	models.LanguageTamil,
	models.LanguageMalayalam,
	models.LanguageTelugu,
	models.LanguageBengali,
	models.LanguageGujarati,
	models.LanguageKannada,
	models.LanguageLocalWords,
}

// LanguageMixer estimates the script and word-level language composition of a text
type LanguageMixer struct {
	english   map[string]bool
	local     map[string]bool
	threshold float64
}

// NewLanguageMixer builds a mixer from the lexicon word lists
func NewLanguageMixer(lex *lexicon.Lexicon, cfg Config) *LanguageMixer {
	return &LanguageMixer{
		english: toSet(lex.CommonEnglish),
		local: toSet(lex.HindiPositive, lex.HindiNegative,
			lex.RegionalPositive, lex.RegionalNegative),
		threshold: cfg.MixedLanguageThreshold,
	}
}

// Detect returns the language profile of text. It never fails; text without
// letters or digits yields an unknown, unmixed profile. Every token counts toward
// at most one language, so the ratios never sum above 1.
func (m *LanguageMixer) Detect(text string) models.LanguageProfile {
	profile := models.LanguageProfile{
		PrimaryLanguage: models.LanguageUnknown,
		Languages:       make(map[string]float64),
	}

	tokens := tokenize(normalize(text))
	if len(tokens) == 0 {
		return profile
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		if lang := m.tokenLanguage(tok); lang != "" {
			counts[lang]++
		}
	}
	for lang, n := range counts {
		profile.Languages[lang] = float64(n) / float64(len(tokens))
	}

	best, nonZero := 0.0, 0
	for _, lang := range languagePriority {
		ratio := profile.Languages[lang]
		if ratio <= 0 {
			continue
		}
		nonZero++
		if ratio > best {
			best = ratio
			profile.PrimaryLanguage = lang
		}
	}

	profile.IsMixed = nonZero > 1 && best < m.threshold
	return profile
}

// tokenLanguage assigns a token to the Indic script most of its letters use, or
// else to a word list. Tokens matching neither count toward no language.
func (m *LanguageMixer) tokenLanguage(tok string) string {
	scripts := make(map[string]int)
	other := 0
	for _, r := range tok {
		matched := false
		for _, s := range indicScripts {
			if r >= s.lo && r <= s.hi {
				scripts[s.language]++
				matched = true
				break
			}
		}
		if !matched {
			other++
		}
	}

	best, script := other, ""
	for _, s := range indicScripts {
		if n := scripts[s.language]; n > best {
			best, script = n, s.language
		}
	}
	switch {
	case script != "":
		return script
	case m.english[tok]:
		return models.LanguageEnglish
	case m.local[tok] && isLatin(tok):
		return models.LanguageLocalWords
	}
	return ""
}

func isLatin(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return false
		}
	}
	return true
}
