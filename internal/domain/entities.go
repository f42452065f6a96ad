package domain

import (
	"strings"
	"time"
)

// Sentence is one sentence of an article, keyed by its position in the
// original text. Index is stable: it never changes as sentences move
// through the pipeline.
type Sentence struct {
	Index  int
	Text   string
	Tokens []string
	Vector []float64
}

type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// Summary is an ordered subset of a document's sentences, ascending by
// original index.
type Summary struct {
	Sentences []Sentence
}

// Text joins the selected sentences in document order.
func (s Summary) Text() string {
	var b strings.Builder
	for i, sent := range s.Sentences {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sent.Text)
	}
	return b.String()
}

type Article struct {
	Title       string
	Section     string
	URL         string
	PublishedAt time.Time
	Body        string
}

type SummarizedArticle struct {
	Article Article
	Summary Summary
}

type Digest struct {
	ID        string
	CreatedAt time.Time
	Articles  []SummarizedArticle
}

type Stats struct {
	TotalArticles   int
	TotalDigests    int
	AvgSummaryChars float64
}
