package repositories

import (
	"time"

	"github.com/genspeak/genspeak_api/model"
	"gorm.io/gorm"
)

// UserRepository handles user-related database operations.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// UpdateProgress writes the counters produced by one progress update. A
// column map keeps the write narrow so concurrent logins touching other
// columns stay unaffected.
func (r *UserRepository) UpdateProgress(email string, streak, accuracy, completedLessons int, lastActiveDate string) error {
	return r.db.Model(&model.User{}).Where("email = ?", email).Updates(map[string]interface{}{
		"streak":            streak,
		"accuracy":          accuracy,
		"completed_lessons": completedLessons,
		"last_active_date":  lastActiveDate,
		"updated_at":        time.Now(),
	}).Error
}

func (r *UserRepository) RecordLogin(userID string, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_login_at": at,
		"updated_at":    at,
	}).Error
}

func (r *UserRepository) CreateSession(session *model.UserSession) error {
	return r.db.Create(session).Error
}

func (r *UserRepository) DeactivateSession(sessionID, userID string) error {
	return r.db.Model(&model.UserSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Update("is_active", false).Error
}
