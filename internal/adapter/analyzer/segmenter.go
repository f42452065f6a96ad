package analyzer

import (
	"strings"
	"unicode"
)

// Segmenter splits article text into sentences. The rules are
// deterministic and total: every character of the input belongs to
// exactly one sentence or to inter-sentence whitespace, and sentence
// order is the original text order.
type Segmenter struct {
	abbreviations map[string]struct{}
}

// NewSegmenter creates a Segmenter with a fixed English abbreviation
// list. A period after a known abbreviation, or between two digits, is
// not treated as a sentence boundary.
func NewSegmenter() *Segmenter {
	abbrevs := []string{
		"mr", "mrs", "ms", "dr", "prof", "rev", "gen", "sen", "rep",
		"sr", "jr", "st", "mt", "vs", "etc", "inc", "ltd", "co",
		"corp", "dept", "univ", "assn", "approx", "est", "fig",
		"e.g", "i.e", "u.s", "u.k", "u.n", "a.m", "p.m",
		"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep",
		"sept", "oct", "nov", "dec",
	}
	m := make(map[string]struct{}, len(abbrevs))
	for _, a := range abbrevs {
		m[a] = struct{}{}
	}
	return &Segmenter{abbreviations: m}
}

// Segment splits text into sentences. Empty or whitespace-only input
// yields an empty list.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	flush := func() {
		sent := strings.TrimSpace(current.String())
		if sent != "" {
			sentences = append(sentences, sent)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if r == '.' && !s.periodEndsSentence(runes, i) {
			continue
		}

		// Keep trailing closers with the sentence they end.
		for i+1 < len(runes) && isCloser(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}

		if i+1 >= len(runes) || boundaryFollows(runes, i) {
			flush()
		}
	}
	flush()

	return sentences
}

// periodEndsSentence reports whether the period at position i is a
// sentence terminator rather than part of a decimal number or a known
// abbreviation.
func (s *Segmenter) periodEndsSentence(runes []rune, i int) bool {
	// Decimal number: digit on both sides.
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false
	}

	word := precedingWord(runes, i)
	if word == "" {
		return true
	}
	if _, ok := s.abbreviations[word]; ok {
		return false
	}
	// Single capital letter reads as an initial: "J. Smith".
	if len(word) == 1 && unicode.IsUpper([]rune(word)[0]) {
		return false
	}
	return true
}

// precedingWord returns the lowercased word immediately before position
// i, keeping interior periods so that "e.g" and "u.s" match the
// abbreviation list.
func precedingWord(runes []rune, i int) string {
	start := i
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	word := strings.TrimLeft(string(runes[start:i]), "(\"'“‘[")
	if word == "" {
		return ""
	}
	// The rune case check in periodEndsSentence needs the original
	// casing for single letters, everything else matches lowercased.
	if len([]rune(word)) == 1 {
		return word
	}
	return strings.ToLower(word)
}

// boundaryFollows reports whether the text after the terminator at i
// looks like the start of a new sentence.
func boundaryFollows(runes []rune, i int) bool {
	j := i + 1
	if j >= len(runes) {
		return true
	}
	if !unicode.IsSpace(runes[j]) {
		return false
	}
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	next := runes[j]
	if isOpener(next) {
		return true
	}
	return unicode.IsUpper(next) || unicode.IsDigit(next)
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”' || r == '’'
}

func isOpener(r rune) bool {
	return r == '"' || r == '\'' || r == '(' || r == '[' || r == '“' || r == '‘'
}
