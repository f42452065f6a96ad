package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenizer_Normalization(t *testing.T) {
	tok := NewTokenizer(false)

	got := tok.Tokenize("The CAT sat, didn't it?")
	want := []string{"the", "cat", "sat", "didn", "t", "it"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizer_KeepsSingleLetters(t *testing.T) {
	tok := NewTokenizer(false)

	got := tok.Tokenize("A cat sat")
	want := []string{"a", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizer_StopwordRemoval(t *testing.T) {
	tok := NewTokenizer(true)

	got := tok.Tokenize("the quick brown fox is in the garden")
	for _, token := range got {
		if token == "the" || token == "is" || token == "in" {
			t.Errorf("stopword %q should have been dropped, got %v", token, got)
		}
	}

	want := []string{"quick", "brown", "fox", "garden"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizer_StopwordsKeptWhenDisabled(t *testing.T) {
	tok := NewTokenizer(false)

	got := tok.Tokenize("the fox")
	want := []string{"the", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizer_EmptyAndPunctuationOnly(t *testing.T) {
	tok := NewTokenizer(true)

	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", got)
	}
	if got := tok.Tokenize("... --- !!!"); len(got) != 0 {
		t.Errorf("expected no tokens for punctuation input, got %v", got)
	}
}

func TestTokenizer_Digits(t *testing.T) {
	tok := NewTokenizer(false)

	got := tok.Tokenize("rose 3.14 percent")
	want := []string{"rose", "3", "14", "percent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
