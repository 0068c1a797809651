package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/genspeak/genspeak_api/dto"
	"github.com/genspeak/genspeak_api/progress"
	"github.com/genspeak/genspeak_api/services/repositories"
	"github.com/genspeak/genspeak_api/shared"
)

type UserService struct {
	context.DefaultService

	sqlSvc SqlService
	users  *repositories.UserRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(ActiveSqlService()).(SqlService)
	svc.users = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// GetStats returns the dashboard counters for a user, keyed by email.
func (svc *UserService) GetStats(email string) (*dto.UserStatsResponse, error) {
	user, err := svc.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.UserStatsResponse{Success: true, User: MapUser(user)}, nil
}

// GetUserInfo resolves a user by ID for the authenticated /me route.
func (svc *UserService) GetUserInfo(userID string) (*dto.UserStatsResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.UserStatsResponse{Success: true, User: MapUser(user)}, nil
}

// UpdateProgress records one completed session. The streak/accuracy rule
// lives in the progress package; this service only loads and persists.
// An unknown user fails with 401 and no state is touched.
func (svc *UserService) UpdateProgress(req dto.ProgressRequest) (*dto.ProgressResponse, error) {
	user, err := svc.users.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	result := progress.Update(progress.Snapshot{
		Streak:           user.Streak,
		Accuracy:         user.Accuracy,
		CompletedLessons: user.CompletedLessons,
		LastActiveDate:   user.LastActiveDate,
	}, req.Accuracy, time.Now())

	if err := svc.users.UpdateProgress(user.Email, result.Streak, result.Accuracy, result.CompletedLessons, result.LastActiveDate); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"email":  user.Email,
		"streak": result.Streak,
	}).Info("Progress updated")

	return &dto.ProgressResponse{
		Success:     true,
		Message:     "Progress updated",
		NewAccuracy: result.Accuracy,
		NewStreak:   result.Streak,
		NewLessons:  result.CompletedLessons,
	}, nil
}
