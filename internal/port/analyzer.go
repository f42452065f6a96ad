package port

// Segmenter splits raw text into sentences, preserving original order.
type Segmenter interface {
	Segment(text string) []string
}

// Tokenizer splits a sentence into normalized word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
