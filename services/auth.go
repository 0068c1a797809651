package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/genspeak/genspeak_api/dto"
	"github.com/genspeak/genspeak_api/model"
	"github.com/genspeak/genspeak_api/services/repositories"
	"github.com/genspeak/genspeak_api/shared"
)

type AuthService struct {
	context.DefaultService

	sqlSvc SqlService
	jwtSvc *JWTService
	users  *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(ActiveSqlService()).(SqlService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.users = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// Signup creates an account with all counters zeroed. Duplicate emails are
// rejected before any write so a repeat signup never mutates state.
func (svc *AuthService) Signup(req dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := svc.users.EmailExists(email)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if exists {
		return nil, shared.NewBadRequestError(nil, "Email already registered.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create account")
	}

	userID, _ := uuid.NewV7()
	user := &model.User{
		ID:       userID.String(),
		Name:     req.Name,
		Email:    email,
		Password: string(hash),
		Plan:     shared.PlanFree,
	}

	if err := svc.users.CreateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithField("email", email).Info("User registered")
	return &dto.AuthResponse{Success: true, User: MapUser(user)}, nil
}

// Login verifies the credential and mints an access token. The hash never
// leaves this service.
func (svc *AuthService) Login(req dto.LoginRequest, clientIP, userAgent string) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := svc.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	now := time.Now()
	sessionID, _ := uuid.NewV7()
	session := &model.UserSession{
		ID:        sessionID.String(),
		UserID:    user.ID,
		IP:        clientIP,
		UserAgent: userAgent,
		IsActive:  true,
		CreatedAt: now,
		LastUsed:  now,
	}
	if err := svc.users.CreateSession(session); err != nil {
		// A missing audit row must not block the login itself.
		log.WithError(err).Warn("Failed to record login session")
	}
	if err := svc.users.RecordLogin(user.ID, now); err != nil {
		log.WithError(err).Warn("Failed to record login time")
	}

	return &dto.AuthResponse{Success: true, User: MapUser(user), Token: pair.AccessToken}, nil
}

// RequiredAuth guards supplemental endpoints. The six public API routes do
// not use it.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.NewUnauthorizedError(err, "Invalid JWT token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}

// MapUser strips the credential from a stored record.
func MapUser(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		Email:            user.Email,
		Name:             user.Name,
		Plan:             user.Plan,
		Streak:           user.Streak,
		Accuracy:         user.Accuracy,
		CompletedLessons: user.CompletedLessons,
		LastActiveDate:   user.LastActiveDate,
	}
}
