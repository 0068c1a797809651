package services

import (
	"fmt"
	"strings"

	"github.com/alphabatem/common/context"

	"github.com/genspeak/genspeak_api/catalog"
	"github.com/genspeak/genspeak_api/dto"
	"github.com/genspeak/genspeak_api/shared"
	"github.com/genspeak/genspeak_api/speech"
)

// ContentService serves the lesson catalog, the canned translator, and
// server-side pronunciation scoring.
type ContentService struct {
	context.DefaultService

	monitoringSvc *MonitoringService
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// ==================== LESSON CATALOG ====================

func (svc *ContentService) GetLessons(language string) (*dto.LessonListResponse, error) {
	lessons, ok := catalog.Lessons(language)
	if !ok {
		return nil, shared.NewNotFoundError(nil, "Language not found")
	}

	out := make([]dto.LessonResponse, len(lessons))
	for i, lesson := range lessons {
		out[i] = mapLesson(lesson)
	}

	return &dto.LessonListResponse{Success: true, Lessons: out}, nil
}

func (svc *ContentService) GetLanguages() *dto.LanguagesResponse {
	return &dto.LanguagesResponse{Success: true, Languages: catalog.Languages()}
}

func mapLesson(lesson catalog.Lesson) dto.LessonResponse {
	words := make([]dto.WordResponse, len(lesson.Words))
	for i, word := range lesson.Words {
		words[i] = dto.WordResponse{
			Word:          word.Word,
			Meaning:       word.Meaning,
			Pronunciation: word.Pronunciation,
		}
	}
	return dto.LessonResponse{
		ID:        lesson.ID,
		Level:     lesson.Level,
		Title:     lesson.Title,
		Lang:      lesson.Lang,
		Words:     words,
		Sentences: lesson.Sentences,
	}
}

// ==================== TRANSLATOR ====================

var translations = map[string]string{
	"hello":       "Hola (Spanish) / Bonjour (French) / Namaste (Hindi)",
	"how are you": "¿Cómo estás? (Spanish) / Comment allez-vous? (French)",
	"thank you":   "Gracias (Spanish) / Merci (French) / Dhanyavaad (Hindi)",
	"goodbye":     "Adiós (Spanish) / Au revoir (French) / Alvida (Hindi)",
	"yes":         "Sí (Spanish) / Oui (French) / Haan (Hindi)",
	"no":          "No (Spanish) / Non (French) / Nahi (Hindi)",
	"water":       "Agua (Spanish) / Eau (French) / Paani (Hindi)",
	"food":        "Comida (Spanish) / Nourriture (French) / Khaana (Hindi)",
}

// Translate looks the phrase up in the canned table. A miss is not an
// error: it answers success with a suggestion string.
func (svc *ContentService) Translate(text string) *dto.TranslateResponse {
	if translation, ok := translations[strings.ToLower(strings.TrimSpace(text))]; ok {
		return &dto.TranslateResponse{Success: true, Translation: translation}
	}

	return &dto.TranslateResponse{
		Success:     true,
		Translation: fmt.Sprintf("No translation found for %q. Try: hello, thank you, goodbye, water, food", text),
	}
}

// ==================== PRONUNCIATION SCORING ====================

// ScoreAttempt runs the scorer for clients that do not ship the heuristic.
func (svc *ContentService) ScoreAttempt(req dto.ScoreRequest) *dto.ScoreResponse {
	accuracy := speech.Score(req.Spoken, req.Target, req.Confidence)
	svc.monitoringSvc.RecordPronunciationScore(accuracy)
	return &dto.ScoreResponse{
		Success:  true,
		Accuracy: accuracy,
		Tier:     string(speech.TierFor(accuracy)),
		Advance:  accuracy >= speech.AdvanceThreshold,
	}
}
