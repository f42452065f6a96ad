package port

import "newsbrief/internal/domain"

// Summarizer produces an extractive summary of at most count sentences.
type Summarizer interface {
	Summarize(text string, count int) (domain.Summary, error)
}
