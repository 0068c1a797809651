package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genspeak/genspeak_api/dto"
)

type AuthServiceInterface interface {
	Signup(req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest, clientIP, userAgent string) (*dto.AuthResponse, error)
	RequiredAuth() fiber.Handler
}

type UserServiceInterface interface {
	GetStats(email string) (*dto.UserStatsResponse, error)
	GetUserInfo(userID string) (*dto.UserStatsResponse, error)
	UpdateProgress(req dto.ProgressRequest) (*dto.ProgressResponse, error)
}

type ContentServiceInterface interface {
	GetLessons(language string) (*dto.LessonListResponse, error)
	GetLanguages() *dto.LanguagesResponse
	Translate(text string) *dto.TranslateResponse
	ScoreAttempt(req dto.ScoreRequest) *dto.ScoreResponse
}
