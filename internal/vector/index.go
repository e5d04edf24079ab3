package vector

import (
	"context"
	"fmt"

	"github.com/devaniket16/Agriassist-Chatbot/internal/embedding"
)

// QuestionIndex holds one embedding per stored question, in dataset order:
// position i in the index refers to the same question as position i in the
// QA entry slice. The index is built once at startup and read-only
// thereafter, so concurrent searches need no locking.
type QuestionIndex struct {
	dimensions int
	vectors    [][]float32
}

// NewQuestionIndex creates an index over the given pre-normalized vectors.
// All vectors must share the given dimension.
func NewQuestionIndex(dimensions int, vectors [][]float32) (*QuestionIndex, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("dimensions must be positive")
	}
	for i, vec := range vectors {
		if len(vec) != dimensions {
			return nil, fmt.Errorf("vector %d dimension mismatch: got %d, expected %d", i, len(vec), dimensions)
		}
	}
	return &QuestionIndex{dimensions: dimensions, vectors: vectors}, nil
}

// Build encodes the questions with the embedder and returns the index over
// the resulting vectors, preserving order.
func Build(ctx context.Context, embedder embedding.Embedder, questions []string) (*QuestionIndex, error) {
	vectors, err := embedder.EmbedBatch(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("failed to embed questions: %w", err)
	}
	return NewQuestionIndex(embedder.Dimensions(), vectors)
}

// BestMatch returns the position and cosine similarity of the stored vector
// closest to query. Ties resolve to the first occurrence of the maximum.
// Returns an error when the index is empty or the query dimension is wrong.
func (ix *QuestionIndex) BestMatch(query []float32) (int, float64, error) {
	if len(query) != ix.dimensions {
		return 0, 0, fmt.Errorf("query dimension mismatch: got %d, expected %d", len(query), ix.dimensions)
	}
	if len(ix.vectors) == 0 {
		return 0, 0, fmt.Errorf("index is empty")
	}
	bestIdx := 0
	bestScore := InnerProduct(query, ix.vectors[0])
	for i := 1; i < len(ix.vectors); i++ {
		if score := InnerProduct(query, ix.vectors[i]); score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, CosineSimilarity(query, ix.vectors[bestIdx]), nil
}

// Size returns the number of vectors in the index.
func (ix *QuestionIndex) Size() int {
	return len(ix.vectors)
}

// Dimensions returns the vector dimension of the index.
func (ix *QuestionIndex) Dimensions() int {
	return ix.dimensions
}
