package sentiment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	tokenPattern  = regexp.MustCompile(`[\p{L}\p{M}\p{N}']+`)
	clausePattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}']+|[.,!?;।\n]+`)
	quoteFolder   = strings.NewReplacer("’", "'", "‘", "'", "`", "'")
)

// normalize lowercases text and folds typographic apostrophes
func normalize(text string) string {
	return quoteFolder.Replace(strings.ToLower(text))
}

// tokenize splits normalized text into word tokens. Indic combining marks stay
// attached to their base letters.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// tokenizeClauses returns the tokens of tokenize along with the clause each one
// belongs to. Clauses end at . , ! ? ; । and line breaks.
func tokenizeClauses(text string) ([]string, []int) {
	var tokens []string
	var clauses []int
	clause := 0
	for _, m := range clausePattern.FindAllString(text, -1) {
		if strings.ContainsAny(m, ".,!?;।\n") {
			clause++
			continue
		}
		if tok := strings.Trim(m, "'"); tok != "" {
			tokens = append(tokens, tok)
			clauses = append(clauses, clause)
		}
	}
	return tokens, clauses
}

// phrase is a lexicon entry pre-split into tokens so matching respects word boundaries
type phrase struct {
	text   string
	tokens []string
}

func newPhrase(text string) phrase {
	return phrase{text: text, tokens: tokenize(normalize(text))}
}

// compilePhrases tokenizes a list, dropping entries with no word content.
// The result is ordered longest first so multi-word entries win over their parts.
func compilePhrases(list []string) []phrase {
	out := make([]phrase, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		p := newPhrase(s)
		key := strings.Join(p.tokens, " ")
		if len(p.tokens) == 0 || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].tokens) > len(out[j].tokens)
	})
	return out
}

// matchAt reports whether p occurs in tokens starting at i
func (p phrase) matchAt(tokens []string, i int) bool {
	if i < 0 || i+len(p.tokens) > len(tokens) {
		return false
	}
	for k, t := range p.tokens {
		if tokens[i+k] != t {
			return false
		}
	}
	return true
}

// findAll returns every start index of p in tokens
func (p phrase) findAll(tokens []string) []int {
	var starts []int
	for i := 0; i+len(p.tokens) <= len(tokens); i++ {
		if p.matchAt(tokens, i) {
			starts = append(starts, i)
		}
	}
	return starts
}

func (p phrase) in(tokens []string) bool {
	for i := 0; i+len(p.tokens) <= len(tokens); i++ {
		if p.matchAt(tokens, i) {
			return true
		}
	}
	return false
}

// firstMatch returns the first phrase of list found in tokens
func firstMatch(list []phrase, tokens []string) (string, bool) {
	for _, p := range list {
		if p.in(tokens) {
			return p.text, true
		}
	}
	return "", false
}

// allMatches returns every phrase of list found in tokens, in list order
func allMatches(list []phrase, tokens []string) []string {
	var out []string
	for _, p := range list {
		if p.in(tokens) {
			out = append(out, p.text)
		}
	}
	return out
}

// span is a half-open token range
type span struct {
	start, end int
}

// spans returns the token ranges of every occurrence of any phrase in list
func spans(list []phrase, tokens []string) []span {
	var out []span
	for _, p := range list {
		for _, start := range p.findAll(tokens) {
			out = append(out, span{start: start, end: start + len(p.tokens)})
		}
	}
	return out
}

// near reports whether index i lies within window tokens of s
func (s span) near(i, window int) bool {
	return i >= s.start-window && i < s.end+window
}

func toSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range lists {
		for _, w := range list {
			set[normalize(w)] = true
		}
	}
	return set
}

func compileRegexps(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			logrus.Warnf("Skipping invalid lexicon pattern %q: %v", p, err)
			continue
		}
		out = append(out, re)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
