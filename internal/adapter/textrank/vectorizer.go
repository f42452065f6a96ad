package textrank

import (
	"newsbrief/internal/adapter/embedding"
	"newsbrief/internal/domain"
	"newsbrief/internal/port"
)

// Vectorizer maps article text to a list of sentences with embedding
// vectors. Vectors are recomputed on every call; nothing is cached
// across documents.
type Vectorizer struct {
	segmenter port.Segmenter
	tokenizer port.Tokenizer
	table     *embedding.Table
}

// NewVectorizer creates a Vectorizer over the given read-only embedding
// table.
func NewVectorizer(segmenter port.Segmenter, tokenizer port.Tokenizer, table *embedding.Table) *Vectorizer {
	return &Vectorizer{
		segmenter: segmenter,
		tokenizer: tokenizer,
		table:     table,
	}
}

// Vectorize splits text into sentences and computes each sentence's
// vector as the element-wise mean of the embeddings of its in-vocabulary
// tokens. Out-of-vocabulary tokens are skipped, not zero-substituted; a
// sentence with no in-vocabulary tokens gets the zero vector. Empty text
// yields an empty list.
func (v *Vectorizer) Vectorize(text string) []domain.Sentence {
	raw := v.segmenter.Segment(text)
	sentences := make([]domain.Sentence, 0, len(raw))

	dim := v.table.Dimension()
	for i, s := range raw {
		tokens := v.tokenizer.Tokenize(s)

		vec := make([]float64, dim)
		present := 0
		for _, tok := range tokens {
			emb, ok := v.table.Lookup(tok)
			if !ok {
				continue
			}
			for d := range emb {
				vec[d] += emb[d]
			}
			present++
		}
		if present > 0 {
			for d := range vec {
				vec[d] /= float64(present)
			}
		}

		sentences = append(sentences, domain.Sentence{
			Index:  i,
			Text:   s,
			Tokens: tokens,
			Vector: vec,
		})
	}

	return sentences
}
