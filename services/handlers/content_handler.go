package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/genspeak/genspeak_api/dto"
	"github.com/genspeak/genspeak_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// @Summary List lessons for a language
// @Description Return the full lesson table for one catalog language
// @Tags content
// @Produce json
// @Param language path string true "Language name, case-insensitive"
// @Success 200 {object} dto.LessonListResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/lessons/{language} [get]
func (h *ContentHandler) GetLessons(c *fiber.Ctx) error {
	language := c.Params("language")
	if language == "" {
		return shared.NewBadRequestError(nil, "Language is required")
	}

	resp, err := h.contentSvc.GetLessons(language)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, resp)
}

// @Summary List catalog languages
// @Tags content
// @Produce json
// @Success 200 {object} dto.LanguagesResponse
// @Router /api/v1/languages [get]
func (h *ContentHandler) GetLanguages(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, h.contentSvc.GetLanguages())
}

// @Summary Translate a phrase
// @Description Look the phrase up in the built-in phrasebook
// @Tags content
// @Accept json
// @Produce json
// @Param translateRequest body dto.TranslateRequest true "Phrase to translate"
// @Success 200 {object} dto.TranslateResponse
// @Router /api/v1/translate [post]
func (h *ContentHandler) Translate(c *fiber.Ctx) error {
	var req dto.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	return shared.ResponseJSON(c, http.StatusOK, h.contentSvc.Translate(req.Text))
}

// @Summary Score a pronunciation attempt
// @Description Grade a transcript against the target word and return the feedback tier
// @Tags content
// @Accept json
// @Produce json
// @Param scoreRequest body dto.ScoreRequest true "Recognized transcript, target word and recognizer confidence"
// @Success 200 {object} dto.ScoreResponse
// @Router /api/v1/score [post]
func (h *ContentHandler) ScoreAttempt(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	return shared.ResponseJSON(c, http.StatusOK, h.contentSvc.ScoreAttempt(req))
}
