package dto

// UserResponse mirrors the stored record minus the password hash.
type UserResponse struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	Plan             string `json:"plan"`
	Streak           int    `json:"streak"`
	Accuracy         int    `json:"accuracy"`
	CompletedLessons int    `json:"completedLessons"`
	LastActiveDate   string `json:"lastActiveDate,omitempty"`
}

type UserStatsResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// ==================== PROGRESS DTOs ====================

type ProgressRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Accuracy int    `json:"accuracy" validate:"gte=0,lte=100" example:"100"`
}

func (r ProgressRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ProgressResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewAccuracy int    `json:"newAccuracy"`
	NewStreak   int    `json:"newStreak"`
	NewLessons  int    `json:"newLessons"`
}
