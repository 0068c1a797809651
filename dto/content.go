package dto

// ==================== LESSON DTOs ====================

type WordResponse struct {
	Word          string `json:"word"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation"`
}

type LessonResponse struct {
	ID        string         `json:"id"`
	Level     string         `json:"level"`
	Title     string         `json:"title"`
	Lang      string         `json:"lang"` // BCP-47 tag handed to the browser recognizer
	Words     []WordResponse `json:"words"`
	Sentences []string       `json:"sentences"`
}

type LessonListResponse struct {
	Success bool             `json:"success"`
	Lessons []LessonResponse `json:"lessons"`
}

type LanguagesResponse struct {
	Success   bool     `json:"success"`
	Languages []string `json:"languages"`
}

// ==================== TRANSLATOR DTOs ====================

type TranslateRequest struct {
	Text string `json:"text" validate:"required" example:"hello"`
}

func (r TranslateRequest) Validate() error {
	return GetValidator().Struct(r)
}

type TranslateResponse struct {
	Success     bool   `json:"success"`
	Translation string `json:"translation"`
}

// ==================== PRONUNCIATION DTOs ====================

type ScoreRequest struct {
	Spoken     string  `json:"spoken" example:"hola"`
	Target     string  `json:"target" validate:"required" example:"hola"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1" example:"0.92"`
}

func (r ScoreRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ScoreResponse struct {
	Success  bool   `json:"success"`
	Accuracy int    `json:"accuracy"`
	Tier     string `json:"tier"`
	Advance  bool   `json:"advance"` // accuracy cleared the spoken-word threshold
}
