package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer splits sentences into normalized word tokens with optional
// stopword removal.
type Tokenizer struct {
	stopwords map[string]struct{}
	dropStops bool
}

// NewTokenizer creates a new Tokenizer. When dropStopwords is set,
// common English closed-class words are excluded from the output.
func NewTokenizer(dropStopwords bool) *Tokenizer {
	return &Tokenizer{
		stopwords: defaultStopwords(),
		dropStops: dropStopwords,
	}
}

// Tokenize splits text into lowercased alphanumeric tokens. Embedding
// vocabularies carry single-letter entries, so no length filter is
// applied.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(word)
		if t.dropStops {
			if _, isStop := t.stopwords[word]; isStop {
				continue
			}
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// splitWords splits text into runs of letters and digits.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// defaultStopwords returns a set of common English stopwords.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
