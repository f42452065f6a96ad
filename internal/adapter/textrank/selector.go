package textrank

import (
	"errors"
	"sort"

	"newsbrief/internal/domain"
)

// ErrNegativeCount is returned when a summary of negative length is
// requested.
var ErrNegativeCount = errors.New("summary sentence count must not be negative")

// Select picks the count highest-scoring sentences and returns them in
// original document order. Ties in score break toward the lower index,
// so the selection is deterministic. A count of zero yields an empty
// summary; a count at or above the sentence total yields the whole
// document.
func Select(sentences []domain.Sentence, scores []float64, count int) (domain.Summary, error) {
	if count < 0 {
		return domain.Summary{}, ErrNegativeCount
	}
	if count > len(sentences) {
		count = len(sentences)
	}

	ranked := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		ranked[i] = domain.ScoredSentence{Sentence: s, Score: scores[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Sentence.Index < ranked[j].Sentence.Index
	})

	selected := make([]domain.Sentence, count)
	for i := 0; i < count; i++ {
		selected[i] = ranked[i].Sentence
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Index < selected[j].Index
	})

	return domain.Summary{Sentences: selected}, nil
}
