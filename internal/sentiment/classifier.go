package sentiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// textAnalysis is the target-independent part of a classification, memoized by raw text
type textAnalysis struct {
	language models.LanguageProfile
	emoji    models.EmojiProfile
	pattern  models.PatternSentiment
	sarcasm  models.SarcasmProfile
}

// Classifier runs the full pipeline for single comments and batches. It is safe
// for concurrent use; the only shared mutable state is the memoization cache.
type Classifier struct {
	cfg     Config
	version string

	language *LanguageMixer
	emoji    *EmojiScorer
	brands   *BrandDetector
	patterns *PatternScorer
	sarcasm  *SarcasmDetector
	combiner *Combiner

	cache  *lru.Cache[string, textAnalysis]
	tracer trace.Tracer
}

// NewClassifier validates the lexicon and config and compiles every layer
func NewClassifier(lex *lexicon.Lexicon, cfg Config) (*Classifier, error) {
	if lex == nil {
		return nil, fmt.Errorf("lexicon is required")
	}
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	brands := NewBrandDetector(lex)
	c := &Classifier{
		cfg:      cfg,
		version:  lex.Version,
		language: NewLanguageMixer(lex, cfg),
		emoji:    NewEmojiScorer(lex, cfg),
		brands:   brands,
		patterns: NewPatternScorer(lex, cfg),
		sarcasm:  NewSarcasmDetector(lex, cfg),
		combiner: NewCombiner(cfg, brands),
		tracer:   otel.Tracer("sentiment-classifier"),
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, textAnalysis](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create classification cache: %w", err)
		}
		c.cache = cache
	}

	logrus.Infof("Sentiment classifier ready (lexicon %s, %d brands, cache %d, workers %d)",
		lex.Version, len(lex.Brands), cfg.CacheSize, cfg.Workers)
	return c, nil
}

// Classify classifies one comment against target. An empty target disables brand
// gating. Unexpected failures yield a neutral classification marked Failed.
func (c *Classifier) Classify(comment models.Comment, target string) models.Classification {
	return c.classifyAt(0, comment, target)
}

// classifyAt classifies the comment at index of its batch
func (c *Classifier) classifyAt(index int, comment models.Comment, target string) (result models.Classification) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"index":      index,
				"comment_id": comment.ID,
			}).Warnf("Failed to classify comment: %v", r)
			result = c.failed(comment, target, fmt.Sprint(r))
		}
	}()
	return c.classify(comment, target)
}

// ClassifyText is a convenience wrapper for text without engagement counters
func (c *Classifier) ClassifyText(text, target string) models.Classification {
	return c.Classify(models.Comment{Text: text}, target)
}

// ClassifyBatch classifies comments in parallel and returns them in input order.
// Cancelling ctx stops the remaining work; unprocessed comments are returned as
// failed and ctx.Err() is reported.
func (c *Classifier) ClassifyBatch(ctx context.Context, comments []models.Comment, target string) ([]models.ClassifiedComment, error) {
	ctx, span := c.tracer.Start(ctx, "sentiment.classify_batch")
	defer span.End()
	span.SetAttributes(
		attribute.Int("comments", len(comments)),
		attribute.String("target", target),
	)

	results := make([]models.ClassifiedComment, len(comments))
	if len(comments) == 0 {
		return results, nil
	}

	workers := min(c.cfg.Workers, len(comments))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = models.ClassifiedComment{
					Comment:        comments[i],
					Classification: c.classifyAt(i, comments[i], target),
				}
			}
		}()
	}

	sent := 0
feed:
	for ; sent < len(comments); sent++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- sent:
		}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for i := sent; i < len(comments); i++ {
		results[i] = models.ClassifiedComment{
			Comment:        comments[i],
			Classification: c.failed(comments[i], target, ctx.Err().Error()),
		}
	}
	for _, r := range results {
		if r.Classification.Failed {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("failed", failed))

	if sent < len(comments) {
		span.RecordError(ctx.Err())
		span.SetStatus(codes.Error, "batch cancelled")
		return results, fmt.Errorf("batch classification stopped after %d of %d comments: %w", sent, len(comments), ctx.Err())
	}

	logrus.Debugf("Classified %d comments for target %q (%d failed)", len(comments), target, failed)
	return results, nil
}

// ResolveBrand maps a brand label onto the registered brand name
func (c *Classifier) ResolveBrand(target string) string {
	return c.brands.ResolveBrand(target)
}

// BrandNames returns the registered brands in order
func (c *Classifier) BrandNames() []string {
	return c.brands.Names()
}

// DetectBrands exposes the brand detector for relevance filtering
func (c *Classifier) DetectBrands(text string) models.BrandMention {
	return c.brands.Detect(text, "")
}

// LexiconVersion returns the version of the tables the classifier was built from
func (c *Classifier) LexiconVersion() string {
	return c.version
}

func (c *Classifier) classify(comment models.Comment, target string) models.Classification {
	analysis := c.analyze(comment.Text)
	brand := c.brands.Detect(comment.Text, target)
	engagement := CalculateEngagement(comment.Likes, comment.Replies, comment.Shares)

	result := c.combiner.Combine(analysis.pattern, analysis.emoji, analysis.sarcasm, engagement, brand, target)
	result.LanguageAnalysis = analysis.language
	result.LexiconVersion = c.version
	return result
}

// analyze runs the target-independent layers, consulting the cache first
func (c *Classifier) analyze(text string) textAnalysis {
	if c.cache != nil {
		if cached, ok := c.cache.Get(text); ok {
			return cached.clone()
		}
	}

	language := c.language.Detect(text)
	emoji := c.emoji.Analyze(text)
	pattern := c.patterns.Analyze(text, language)
	sarcasm := c.sarcasm.Detect(text, emoji, c.brands.Detect(text, ""))

	analysis := textAnalysis{language: language, emoji: emoji, pattern: pattern, sarcasm: sarcasm}
	if c.cache != nil {
		c.cache.Add(text, analysis.clone())
	}
	return analysis
}

func (c *Classifier) failed(comment models.Comment, target, reason string) models.Classification {
	return models.Classification{
		Sentiment:   models.SentimentNeutral,
		Confidence:  minConfidence,
		TargetBrand: target,
		LanguageAnalysis: models.LanguageProfile{
			PrimaryLanguage: models.LanguageUnknown,
			Languages:       map[string]float64{},
		},
		EmojiAnalysis: models.EmojiProfile{EmojiSentiment: models.SentimentNeutral},
		CompanyAnalysis: models.BrandMention{
			AllMentions:        map[string]models.BrandScore{},
			CompetitorMentions: []string{},
		},
		EngagementAnalysis: CalculateEngagement(comment.Likes, comment.Replies, comment.Shares),
		PatternAnalysis: models.PatternSentiment{
			Sentiment:      models.SentimentNeutral,
			Confidence:     minConfidence,
			SentimentWords: []models.SentimentWord{},
			Reason:         "enrichment_failed",
		},
		SarcasmAnalysis:       models.SarcasmProfile{SarcasmIndicators: []string{}},
		ClassificationFactors: []string{"enrichment_failed: " + reason},
		LexiconVersion:        c.version,
		Failed:                true,
	}
}

// clone copies the slices and maps so cached entries cannot be mutated through results
func (a textAnalysis) clone() textAnalysis {
	out := a

	out.language.Languages = make(map[string]float64, len(a.language.Languages))
	for k, v := range a.language.Languages {
		out.language.Languages[k] = v
	}
	out.emoji.Emojis = append([]string(nil), a.emoji.Emojis...)
	out.pattern.SentimentWords = append([]models.SentimentWord{}, a.pattern.SentimentWords...)
	out.sarcasm.SarcasmIndicators = append([]string{}, a.sarcasm.SarcasmIndicators...)

	return out
}
