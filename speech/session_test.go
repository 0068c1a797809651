package speech

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	started  int
	stopped  int
	lang     string
	startErr error
}

func (f *fakeRecognizer) Start(lang string) error {
	f.started++
	f.lang = lang
	return f.startErr
}

func (f *fakeRecognizer) Stop() { f.stopped++ }

type fakeSynth struct {
	spoken []string
}

func (f *fakeSynth) Speak(word, lang string) error {
	f.spoken = append(f.spoken, word)
	return nil
}

type fakeReporter struct {
	reports []int
	err     error
}

func (f *fakeReporter) ReportCompletion(accuracy int) error {
	f.reports = append(f.reports, accuracy)
	return f.err
}

func newTestSession(words []string) (*Session, *fakeRecognizer, *fakeSynth, *fakeReporter) {
	rec := &fakeRecognizer{}
	synth := &fakeSynth{}
	rep := &fakeReporter{}
	return NewSession(words, "es-ES", rec, synth, rep), rec, synth, rep
}

func speak(t *testing.T, s *Session, transcript string, confidence float64) Evaluation {
	t.Helper()
	require.NoError(t, s.StartListening())
	eval, err := s.HandleResult(RecognitionResult{Transcript: transcript, Confidence: confidence})
	require.NoError(t, err)
	return eval
}

func TestSession_InitialState(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola", "agua"})

	assert.Equal(t, StateAwaitingInput, s.State())
	assert.Equal(t, "hola", s.CurrentWord())
	assert.Equal(t, FeedbackPrompt, s.Feedback().Kind)
	assert.Contains(t, s.Feedback().Message, "Word 1 of 2")
}

func TestSession_ListeningUsesLessonLanguage(t *testing.T) {
	s, rec, _, _ := newTestSession([]string{"hola"})

	require.NoError(t, s.StartListening())
	assert.Equal(t, StateListening, s.State())
	assert.Equal(t, "es-ES", rec.lang)
}

func TestSession_RecognizerUnavailable(t *testing.T) {
	rec := &fakeRecognizer{startErr: errors.New("no microphone")}
	s := NewSession([]string{"hola"}, "es-ES", rec, &fakeSynth{}, &fakeReporter{})

	err := s.StartListening()
	assert.Error(t, err)
	assert.Equal(t, StateAwaitingInput, s.State())
	assert.Equal(t, FeedbackError, s.Feedback().Kind)
}

func TestSession_CannotListenTwice(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola"})

	require.NoError(t, s.StartListening())
	assert.Error(t, s.StartListening())
}

func TestSession_GoodAttemptAdvances(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola", "agua"})

	eval := speak(t, s, "hola", 0.9)
	assert.Equal(t, 100, eval.Accuracy)
	assert.Equal(t, TierPerfect, eval.Tier)
	assert.True(t, eval.Advanced)
	assert.Equal(t, "agua", s.CurrentWord())
	assert.Equal(t, 1, s.WordsSpoken())
}

func TestSession_FailedAttemptRetriesSameWord(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola", "agua"})

	eval := speak(t, s, "bonjour", 0.3)
	assert.Equal(t, 30, eval.Accuracy)
	assert.Equal(t, TierTryAgain, eval.Tier)
	assert.False(t, eval.Advanced)
	assert.Equal(t, "hola", s.CurrentWord())
	assert.Equal(t, 0, s.WordsSpoken())
	assert.Equal(t, StateAwaitingInput, s.State())
}

func TestSession_SilenceReturnsToAwaiting(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola"})

	require.NoError(t, s.StartListening())
	s.HandleSilence()
	assert.Equal(t, StateAwaitingInput, s.State())
	assert.Equal(t, FeedbackSilence, s.Feedback().Kind)
	assert.Equal(t, "hola", s.CurrentWord())
}

func TestSession_RecognizerErrorSurfacesInline(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola"})

	require.NoError(t, s.StartListening())
	s.HandleRecognizerError(errors.New("network"))
	assert.Equal(t, StateAwaitingInput, s.State())
	assert.Equal(t, FeedbackError, s.Feedback().Kind)
}

func TestSession_SkipDoesNotCountAsSpoken(t *testing.T) {
	s, _, _, _ := newTestSession([]string{"hola", "agua", "pan"})

	s.Skip()
	assert.Equal(t, "agua", s.CurrentWord())
	assert.Equal(t, 0, s.WordsSpoken())
}

func TestSession_CompletionAtGate(t *testing.T) {
	// 4 words, gate is 2: speak two, skip two.
	s, _, _, rep := newTestSession([]string{"uno", "dos", "tres", "cuatro"})

	speak(t, s, "uno", 0.9)
	speak(t, s, "dos", 0.9)
	s.Skip()
	s.Skip()

	assert.True(t, s.Completed())
	assert.Equal(t, StateCompleted, s.State())
	assert.Equal(t, FeedbackComplete, s.Feedback().Kind)
	assert.Equal(t, []int{100}, rep.reports)
	assert.Equal(t, "", s.CurrentWord())
}

func TestSession_BelowGateRestartsFromFirstWord(t *testing.T) {
	// 4 words, gate is 2: only one spoken.
	s, _, _, rep := newTestSession([]string{"uno", "dos", "tres", "cuatro"})

	speak(t, s, "uno", 0.9)
	s.Skip()
	s.Skip()
	s.Skip()

	assert.False(t, s.Completed())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, "uno", s.CurrentWord())
	assert.Equal(t, FeedbackGateWarning, s.Feedback().Kind)
	assert.Contains(t, s.Feedback().Message, "at least 2 words")
	assert.Empty(t, rep.reports)

	// Spoken count carries over, so one more good word completes.
	speak(t, s, "uno", 0.9)
	s.Skip()
	s.Skip()
	s.Skip()
	assert.True(t, s.Completed())
	assert.Equal(t, []int{100}, rep.reports)
}

func TestSession_GateBoundary(t *testing.T) {
	// 5 words, gate is 3: exactly ceil(N/2)-1 spoken must not complete.
	s, _, _, _ := newTestSession([]string{"a1", "b2", "c3", "d4", "e5"})

	speak(t, s, "a1", 0.9)
	speak(t, s, "b2", 0.9)
	s.Skip()
	s.Skip()
	s.Skip()
	assert.False(t, s.Completed())

	// One more spoken word reaches the gate.
	speak(t, s, "a1", 0.9)
	s.Skip()
	s.Skip()
	s.Skip()
	s.Skip()
	assert.True(t, s.Completed())
}

func TestSession_ReportsExactlyOnce(t *testing.T) {
	s, _, _, rep := newTestSession([]string{"hola"})

	speak(t, s, "hola", 0.9)
	assert.True(t, s.Completed())

	// Further actions are no-ops after completion.
	s.Skip()
	assert.NoError(t, s.Speak())
	assert.Equal(t, []int{100}, rep.reports)
}

func TestSession_ReportFailureIsIgnored(t *testing.T) {
	rec := &fakeRecognizer{}
	rep := &fakeReporter{err: errors.New("network unreachable")}
	s := NewSession([]string{"hola"}, "es-ES", rec, &fakeSynth{}, rep)

	speak(t, s, "hola", 0.9)

	// The session still completes locally; no retry happens.
	assert.True(t, s.Completed())
	assert.Equal(t, []int{100}, rep.reports)
}

func TestSession_SpeakPlaysCurrentWord(t *testing.T) {
	s, _, synth, _ := newTestSession([]string{"hola", "agua"})

	require.NoError(t, s.Speak())
	s.Skip()
	require.NoError(t, s.Speak())
	assert.Equal(t, []string{"hola", "agua"}, synth.spoken)
}

func TestSession_StopAbortsListening(t *testing.T) {
	s, rec, _, _ := newTestSession([]string{"hola"})

	require.NoError(t, s.StartListening())
	s.Stop()
	assert.Equal(t, 1, rec.stopped)
	assert.Equal(t, StateAwaitingInput, s.State())
}

func TestSession_SnapshotsWordList(t *testing.T) {
	words := []string{"hola", "agua"}
	s, _, _, _ := newTestSession(words)

	words[0] = "mutated"
	assert.Equal(t, "hola", s.CurrentWord())
}
