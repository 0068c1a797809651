package speech

import (
	"math"
	"strings"
)

// Tier is the feedback bucket shown for a scored attempt.
type Tier string

const (
	TierPerfect          Tier = "perfect"
	TierNeedsImprovement Tier = "needs improvement"
	TierTryAgain         Tier = "try again"
)

// AdvanceThreshold is the accuracy at which a word counts as spoken and the
// session moves on.
const AdvanceThreshold = 60

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// Normalize trims, lower-cases and strips sentence punctuation so the
// recognizer transcript and the target compare on content alone.
func Normalize(s string) string {
	return punctuation.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Score rates a spoken attempt against the target word. First matching rule
// wins: an exact match after normalization is 100; a transcript containing
// the target minus its final rune is 85, tolerating a clipped ending;
// anything else falls back to the recognizer's own confidence.
func Score(spoken, target string, confidence float64) int {
	spokenClean := Normalize(spoken)
	targetClean := Normalize(target)

	if spokenClean == targetClean {
		return 100
	}
	if strings.Contains(spokenClean, trimLastRune(targetClean)) {
		return 85
	}

	accuracy := int(math.Round(confidence * 100))
	if accuracy < 0 {
		accuracy = 0
	} else if accuracy > 100 {
		accuracy = 100
	}
	return accuracy
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// TierFor buckets an accuracy value for feedback.
func TierFor(accuracy int) Tier {
	switch {
	case accuracy >= 90:
		return TierPerfect
	case accuracy > AdvanceThreshold:
		return TierNeedsImprovement
	default:
		return TierTryAgain
	}
}

// CompletionGate is the minimum count of adequately spoken words needed to
// complete a lesson of wordCount words: half the list, rounded up.
func CompletionGate(wordCount int) int {
	return (wordCount + 1) / 2
}
