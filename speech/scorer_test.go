package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowercases", input: "  Hola  ", expected: "hola"},
		{name: "strips punctuation", input: "Hello!?,.", expected: "hello"},
		{name: "keeps inner spaces", input: "thank you", expected: "thank you"},
		{name: "keeps accents", input: "Adiós", expected: "adiós"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		spoken     string
		target     string
		confidence float64
		expected   int
	}{
		{name: "exact match", spoken: "hola", target: "hola", confidence: 0.1, expected: 100},
		{name: "exact after normalization", spoken: "  Hola! ", target: "hola", confidence: 0.1, expected: 100},
		{name: "clipped ending scores 85", spoken: "hell", target: "hello", confidence: 0.1, expected: 85},
		{name: "target embedded in longer utterance", spoken: "i said hell yes", target: "hello", confidence: 0.1, expected: 85},
		{name: "helo vs hello falls back to confidence", spoken: "helo", target: "hello", confidence: 0.4, expected: 40},
		{name: "mismatch uses confidence", spoken: "bonjour", target: "hola", confidence: 0.73, expected: 73},
		{name: "confidence rounds", spoken: "bonjour", target: "hola", confidence: 0.255, expected: 26},
		{name: "confidence clamped high", spoken: "bonjour", target: "hola", confidence: 1.7, expected: 100},
		{name: "confidence clamped low", spoken: "bonjour", target: "hola", confidence: -0.2, expected: 0},
		{name: "single rune target tolerates anything non-exact", spoken: "xyz", target: "a", confidence: 0.0, expected: 85},
		{name: "accented clipped ending", spoken: "adió", target: "adiós", confidence: 0.1, expected: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.spoken, tt.target, tt.confidence))
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		accuracy int
		expected Tier
	}{
		{accuracy: 100, expected: TierPerfect},
		{accuracy: 90, expected: TierPerfect},
		{accuracy: 89, expected: TierNeedsImprovement},
		{accuracy: 61, expected: TierNeedsImprovement},
		{accuracy: 60, expected: TierTryAgain},
		{accuracy: 0, expected: TierTryAgain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.accuracy), "accuracy %d", tt.accuracy)
	}
}

func TestCompletionGate(t *testing.T) {
	tests := []struct {
		words    int
		expected int
	}{
		{words: 1, expected: 1},
		{words: 2, expected: 1},
		{words: 5, expected: 3},
		{words: 6, expected: 3},
		{words: 7, expected: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompletionGate(tt.words), "%d words", tt.words)
	}
}
