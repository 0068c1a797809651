package speech

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// State of the practice session machine.
type State int

const (
	// StateAwaitingInput shows the current word and waits for the learner
	// to start recognition or skip.
	StateAwaitingInput State = iota
	// StateListening means the recognizer is capturing. It leaves on a
	// result, on silence, or on a recognizer error.
	StateListening
	// StateCompleted is terminal; controls are disabled.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateListening:
		return "listening"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// AdvanceDelay is how long a scored attempt stays on screen before the next
// word loads. The session itself transitions immediately; callers owning a
// display apply the delay.
const AdvanceDelay = 2 * time.Second

// FeedbackKind classifies the message surfaced after each transition.
type FeedbackKind int

const (
	FeedbackPrompt FeedbackKind = iota
	FeedbackListening
	FeedbackScored
	FeedbackSilence
	FeedbackError
	FeedbackGateWarning
	FeedbackComplete
)

type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// Evaluation is the outcome of scoring one attempt.
type Evaluation struct {
	Accuracy int
	Tier     Tier
	Advanced bool
}

// Session sequences a learner through a lesson's word list. It is a
// single-owner state machine: the recognizer's callbacks and the learner's
// actions are funneled into its methods one at a time, so no locking.
type Session struct {
	words []string
	lang  string

	recognizer Recognizer
	synth      Synthesizer
	reporter   ProgressReporter

	state       State
	index       int
	wordsSpoken int
	feedback    Feedback
}

// NewSession snapshots the lesson's word list. The session holds its own
// copy; it is discarded rather than persisted when the learner navigates
// away.
func NewSession(words []string, lang string, recognizer Recognizer, synth Synthesizer, reporter ProgressReporter) *Session {
	snapshot := make([]string, len(words))
	copy(snapshot, words)

	s := &Session{
		words:      snapshot,
		lang:       lang,
		recognizer: recognizer,
		synth:      synth,
		reporter:   reporter,
		state:      StateAwaitingInput,
	}
	s.promptCurrent()
	return s
}

func (s *Session) State() State      { return s.state }
func (s *Session) Index() int        { return s.index }
func (s *Session) WordsSpoken() int  { return s.wordsSpoken }
func (s *Session) Feedback() Feedback { return s.feedback }
func (s *Session) Completed() bool   { return s.state == StateCompleted }

// CurrentWord returns the word on display, or "" once completed.
func (s *Session) CurrentWord() string {
	if s.state == StateCompleted || s.index >= len(s.words) {
		return ""
	}
	return s.words[s.index]
}

// StartListening begins recognition for the current word.
func (s *Session) StartListening() error {
	if s.state != StateAwaitingInput {
		return fmt.Errorf("cannot listen in state %s", s.state)
	}
	if err := s.recognizer.Start(s.lang); err != nil {
		s.feedback = Feedback{Kind: FeedbackError, Message: "Speech recognition unavailable: " + err.Error()}
		return err
	}
	s.state = StateListening
	s.feedback = Feedback{Kind: FeedbackListening, Message: "Listening..."}
	return nil
}

// HandleResult scores a finished utterance. At or above the advance
// threshold the word counts as spoken and the session moves on; below it
// the same word is offered again.
func (s *Session) HandleResult(result RecognitionResult) (Evaluation, error) {
	if s.state != StateListening {
		return Evaluation{}, fmt.Errorf("unexpected recognition result in state %s", s.state)
	}
	s.state = StateAwaitingInput

	accuracy := Score(result.Transcript, s.CurrentWord(), result.Confidence)
	eval := Evaluation{Accuracy: accuracy, Tier: TierFor(accuracy)}
	s.feedback = Feedback{
		Kind:    FeedbackScored,
		Message: fmt.Sprintf("%d%% accuracy - %s. You said: %q", accuracy, eval.Tier, result.Transcript),
	}

	if accuracy >= AdvanceThreshold {
		s.wordsSpoken++
		eval.Advanced = true
		s.advance()
	}
	return eval, nil
}

// HandleSilence reports that the recognizer stopped without an utterance.
func (s *Session) HandleSilence() {
	if s.state != StateListening {
		return
	}
	s.state = StateAwaitingInput
	s.feedback = Feedback{Kind: FeedbackSilence, Message: "Didn't catch that. Try speaking again."}
}

// HandleRecognizerError surfaces a recognizer failure inline without
// aborting the session.
func (s *Session) HandleRecognizerError(err error) {
	if s.state != StateListening {
		return
	}
	s.state = StateAwaitingInput
	s.feedback = Feedback{Kind: FeedbackError, Message: "Speech recognition error: " + err.Error()}
}

// Skip advances past the current word without counting it as spoken.
func (s *Session) Skip() {
	if s.state != StateAwaitingInput {
		return
	}
	s.advance()
}

// Speak plays the current word through the synthesizer.
func (s *Session) Speak() error {
	if s.state == StateCompleted {
		return nil
	}
	return s.synth.Speak(s.CurrentWord(), s.lang)
}

// Stop aborts any in-flight recognition, e.g. on navigation away.
func (s *Session) Stop() {
	if s.state == StateListening {
		s.recognizer.Stop()
		s.state = StateAwaitingInput
	}
}

func (s *Session) advance() {
	s.index++
	if s.index < len(s.words) {
		s.promptCurrent()
		return
	}

	gate := CompletionGate(len(s.words))
	if s.wordsSpoken >= gate {
		s.complete()
		return
	}

	// Below the gate the lesson restarts from the first word.
	s.index = 0
	s.feedback = Feedback{
		Kind:    FeedbackGateWarning,
		Message: fmt.Sprintf("Please speak at least %d words to complete the lesson!", gate),
	}
}

func (s *Session) complete() {
	s.state = StateCompleted
	s.feedback = Feedback{Kind: FeedbackComplete, Message: "Great job! You completed this lesson!"}

	// Exactly one report, fire-and-forget. A failed report is logged and
	// the session still completes locally.
	if err := s.reporter.ReportCompletion(100); err != nil {
		log.WithError(err).Warn("Failed to report lesson completion")
	}
}

func (s *Session) promptCurrent() {
	s.feedback = Feedback{
		Kind:    FeedbackPrompt,
		Message: fmt.Sprintf("Word %d of %d - Click the microphone to start.", s.index+1, len(s.words)),
	}
}
