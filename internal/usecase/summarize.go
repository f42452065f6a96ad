package usecase

import (
	"fmt"

	"newsbrief/internal/adapter/analyzer"
	"newsbrief/internal/adapter/embedding"
	"newsbrief/internal/adapter/textrank"
	"newsbrief/internal/domain"
)

// SummarizeUseCase runs the extractive summarization pipeline: segment
// and vectorize the text, build the sentence similarity graph, rank the
// sentences, and select the top scorers in document order.
//
// Each call is a pure computation over its input and the shared
// read-only embedding table, so one use case value can serve concurrent
// callers.
type SummarizeUseCase struct {
	vectorizer *textrank.Vectorizer
	damping    float64
	maxIter    int
	tol        float64
}

// Options configures the ranking step. Zero values fall back to the
// textrank defaults.
type Options struct {
	Damping       float64
	MaxIter       int
	Tol           float64
	DropStopwords bool
}

// NewSummarizeUseCase creates a summarizer over the given embedding
// table.
func NewSummarizeUseCase(table *embedding.Table, opts Options) *SummarizeUseCase {
	if opts.Damping == 0 {
		opts.Damping = textrank.DefaultDamping
	}
	if opts.MaxIter == 0 {
		opts.MaxIter = textrank.DefaultMaxIter
	}
	if opts.Tol == 0 {
		opts.Tol = textrank.DefaultTol
	}

	segmenter := analyzer.NewSegmenter()
	tokenizer := analyzer.NewTokenizer(opts.DropStopwords)

	return &SummarizeUseCase{
		vectorizer: textrank.NewVectorizer(segmenter, tokenizer, table),
		damping:    opts.Damping,
		maxIter:    opts.MaxIter,
		tol:        opts.Tol,
	}
}

// Summarize returns the count most central sentences of text in their
// original order. Empty text yields an empty summary, not an error.
func (u *SummarizeUseCase) Summarize(text string, count int) (domain.Summary, error) {
	sentences := u.vectorizer.Vectorize(text)
	if len(sentences) == 0 {
		return domain.Summary{}, nil
	}

	vectors := make([][]float64, len(sentences))
	for i, s := range sentences {
		vectors[i] = s.Vector
	}

	graph := textrank.BuildGraph(vectors)
	scores := textrank.Rank(graph, u.damping, u.maxIter, u.tol)

	summary, err := textrank.Select(sentences, scores, count)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to select sentences: %w", err)
	}

	return summary, nil
}

// Scores exposes the per-sentence centrality scores alongside the
// sentences, for callers that want the full ranking rather than a
// trimmed summary.
func (u *SummarizeUseCase) Scores(text string) []domain.ScoredSentence {
	sentences := u.vectorizer.Vectorize(text)
	if len(sentences) == 0 {
		return nil
	}

	vectors := make([][]float64, len(sentences))
	for i, s := range sentences {
		vectors[i] = s.Vector
	}

	graph := textrank.BuildGraph(vectors)
	scores := textrank.Rank(graph, u.damping, u.maxIter, u.tol)

	ranked := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		ranked[i] = domain.ScoredSentence{Sentence: s, Score: scores[i]}
	}
	return ranked
}
