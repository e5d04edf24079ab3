// Package chat implements the response resolution pipeline: language
// classification, translation, pattern lookup, and embedding search.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/devaniket16/Agriassist-Chatbot/internal/embedding"
	"github.com/devaniket16/Agriassist-Chatbot/internal/language"
	"github.com/devaniket16/Agriassist-Chatbot/internal/lexicon"
	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
	"github.com/devaniket16/Agriassist-Chatbot/internal/translate"
	"github.com/devaniket16/Agriassist-Chatbot/internal/vector"
	"github.com/devaniket16/Agriassist-Chatbot/pkg/utils"
)

// Fixed user-visible messages. MsgUnsupportedLanguage is never translated:
// its purpose is to tell the user no support exists for their language.
const (
	MsgNoData              = "Error: No data available."
	MsgFallback            = "I'm sorry, I don't have an answer for that."
	MsgUnsupportedLanguage = "Sorry, I can only understand major Indian languages like Hindi, Marathi, Gujarati, Bengali, Tamil, Telugu, Kannada, Malayalam, Punjabi, and English."
)

// Resolver answers a single chat message. All fields are initialized once at
// startup and read-only afterward, so one resolver serves concurrent
// requests.
type Resolver struct {
	entries    []models.QAEntry
	index      *vector.QuestionIndex
	embedder   embedding.Embedder
	rules      *lexicon.Table
	classifier *language.Classifier
	translator translate.Translator
	threshold  float64
	logger     *zap.Logger
}

// NewResolver creates a resolver with the given dependencies. The entries
// slice and index must be aligned: position i in one refers to the same
// question as position i in the other.
func NewResolver(
	entries []models.QAEntry,
	index *vector.QuestionIndex,
	embedder embedding.Embedder,
	rules *lexicon.Table,
	classifier *language.Classifier,
	translator translate.Translator,
	threshold float64,
	logger *zap.Logger,
) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		entries:    entries,
		index:      index,
		embedder:   embedder,
		rules:      rules,
		classifier: classifier,
		translator: translator,
		threshold:  threshold,
		logger:     logger,
	}
}

// Answer resolves message to a response and a confidence score in [0,1].
// Every failure along the pipeline is recovered locally; Answer never
// returns an error.
func (r *Resolver) Answer(ctx context.Context, message string) models.ChatResult {
	if len(r.entries) == 0 {
		return models.ChatResult{Response: MsgNoData, Confidence: 0.0}
	}

	original := strings.TrimSpace(message)
	det := r.classifier.Classify(original)
	if !det.Supported {
		return models.ChatResult{Response: MsgUnsupportedLanguage, Confidence: 0.0}
	}

	processed := original
	if det.NeedsTranslation {
		translated, err := r.translator.Translate(ctx, original, translate.Auto, "en")
		if err != nil {
			r.logger.Warn("input translation failed, using original text",
				zap.String("lang", det.Tag), zap.Error(err))
		} else {
			processed = translated
		}
	}
	processed = utils.NormalizeText(processed)

	if response, ok := r.rules.Match(processed); ok {
		return models.ChatResult{
			Response:   r.localize(ctx, response, det),
			Confidence: 1.0,
		}
	}

	queryVec, err := r.embedder.Embed(ctx, processed)
	if err != nil {
		r.logger.Error("query embedding failed", zap.Error(err))
		return models.ChatResult{Response: r.localize(ctx, MsgFallback, det), Confidence: 0.0}
	}
	idx, score, err := r.index.BestMatch(queryVec)
	if err != nil {
		r.logger.Error("embedding search failed", zap.Error(err))
		return models.ChatResult{Response: r.localize(ctx, MsgFallback, det), Confidence: 0.0}
	}

	r.logger.Debug("embedding match",
		zap.Int("index", idx),
		zap.Float64("score", score),
		zap.String("question", utils.Truncate(r.entries[idx].Question, 80)),
	)

	// Sub-threshold matches get the fallback message but keep the raw
	// score as confidence, unclamped and unzeroed.
	if score < r.threshold {
		return models.ChatResult{Response: r.localize(ctx, MsgFallback, det), Confidence: score}
	}
	return models.ChatResult{Response: r.localize(ctx, r.entries[idx].Answer, det), Confidence: score}
}

// localize translates an English response to the detected language when
// translation is needed. On failure the English text is returned as-is;
// response translation is never fatal.
func (r *Resolver) localize(ctx context.Context, text string, det language.Detection) string {
	if !det.NeedsTranslation {
		return text
	}
	translated, err := r.translator.Translate(ctx, text, "en", det.Tag)
	if err != nil {
		r.logger.Warn("response translation failed, returning English text",
			zap.String("lang", det.Tag), zap.Error(err))
		return text
	}
	return translated
}
