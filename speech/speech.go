// Package speech contains the pronunciation scorer and the practice session
// controller. The platform speech capability (a browser recognizer in the
// shipped client) is injected behind small interfaces so sessions can be
// driven with synthetic results.
package speech

// RecognitionResult is one finished utterance from the recognizer.
type RecognitionResult struct {
	Transcript string
	Confidence float64 // 0.0 - 1.0 as reported by the recognizer
}

// Recognizer abstracts the platform speech recognizer.
type Recognizer interface {
	// Start begins capturing for the given BCP-47 language tag. The owner
	// feeds the outcome back into the session via HandleResult,
	// HandleSilence or HandleRecognizerError.
	Start(lang string) error

	// Stop aborts an in-flight recognition, e.g. when the page is left.
	Stop()
}

// Synthesizer plays a word back to the learner.
type Synthesizer interface {
	Speak(word, lang string) error
}

// ProgressReporter persists a completion event. Implementations post to the
// backend; the session never retries a failed report.
type ProgressReporter interface {
	ReportCompletion(accuracy int) error
}
