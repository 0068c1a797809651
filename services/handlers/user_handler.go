package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/genspeak/genspeak_api/dto"
	"github.com/genspeak/genspeak_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// @Summary Get user stats
// @Description Fetch the dashboard counters for a user by email
// @Tags user
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} dto.UserStatsResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/user/{email} [get]
func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return shared.NewBadRequestError(nil, "Email is required")
	}

	resp, err := h.userSvc.GetStats(email)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, resp)
}

// @Summary Get own profile
// @Description Fetch the account behind the bearer token
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} dto.UserStatsResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /api/v1/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.userSvc.GetUserInfo(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, resp)
}

// @Summary Record a completed session
// @Description Apply one practice session to streak, rolling accuracy and lesson count
// @Tags user
// @Accept json
// @Produce json
// @Param progressRequest body dto.ProgressRequest true "Session result"
// @Success 200 {object} dto.ProgressResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /api/v1/progress [post]
func (h *UserHandler) UpdateProgress(c *fiber.Ctx) error {
	var req dto.ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.userSvc.UpdateProgress(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, resp)
}
