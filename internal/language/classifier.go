// Package language classifies the input language of a chat message and
// decides whether translation is needed.
package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"go.uber.org/zap"
)

// Detection is the outcome of classifying one input.
type Detection struct {
	// Tag is the final ISO 639-1 language tag, after the romanized-keyword
	// override has been applied.
	Tag string
	// Supported reports whether the pipeline may answer this input. False
	// means the tag is outside the allow-list and no Devanagari script was
	// found.
	Supported bool
	// NeedsTranslation gates every translation call in the pipeline: true
	// when the tag is not English, the input carries Devanagari script, or
	// the romanized-keyword override fired.
	NeedsTranslation bool
}

// DetectFunc returns the ISO 639-1 tag for text and whether the detection is
// trustworthy. Implementations must not fail; an untrustworthy result is
// reported through the second return.
type DetectFunc func(text string) (tag string, reliable bool)

// Classifier determines the language of raw user input.
type Classifier struct {
	detect   DetectFunc
	allowed  map[string]struct{}
	keywords []string
	logger   *zap.Logger
}

// NewClassifier creates a classifier with the given allow-list and romanized
// keyword list. When detect is nil the statistical whatlanggo detector is
// used.
func NewClassifier(allowedTags, romanKeywords []string, detect DetectFunc, logger *zap.Logger) *Classifier {
	if detect == nil {
		detect = Detect
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(allowedTags))
	for _, tag := range allowedTags {
		allowed[tag] = struct{}{}
	}
	keywords := make([]string, len(romanKeywords))
	for i, kw := range romanKeywords {
		keywords[i] = strings.ToLower(kw)
	}
	return &Classifier{
		detect:   detect,
		allowed:  allowed,
		keywords: keywords,
		logger:   logger,
	}
}

// Classify determines the language of text. Detection failure is never
// fatal: an unreliable or empty detection falls back to English, and the
// Devanagari safety net keeps native-script Indian text supported even when
// the detector mislabels it.
func (c *Classifier) Classify(text string) Detection {
	tag, reliable := c.detect(text)
	if tag == "" || !reliable {
		c.logger.Debug("language detection unreliable, defaulting to English",
			zap.String("detected", tag))
		tag = "en"
	}

	devanagari := ContainsDevanagari(text)

	// Romanized Hindi/Marathi looks like English (or another Latin-script
	// language) to a statistical detector; the keyword list overrides it.
	romanish := c.containsRomanKeyword(text)
	if romanish {
		tag = "hi"
	}

	_, allowed := c.allowed[tag]
	supported := allowed || devanagari

	c.logger.Debug("language classified",
		zap.String("tag", tag),
		zap.Bool("supported", supported),
		zap.Bool("devanagari", devanagari),
		zap.Bool("roman_keyword", romanish),
	)

	return Detection{
		Tag:              tag,
		Supported:        supported,
		NeedsTranslation: tag != "en" || devanagari || romanish,
	}
}

func (c *Classifier) containsRomanKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ContainsDevanagari reports whether text has any code point in the
// Devanagari block (U+0900–U+097F).
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// Detect is the default DetectFunc, backed by whatlanggo's trigram detector.
func Detect(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	tag := info.Lang.Iso6391()
	if tag == "" {
		return "", false
	}
	return tag, info.IsReliable()
}
