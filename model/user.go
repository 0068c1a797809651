package model

import "time"

// User is one learner account. Streak, accuracy and the lesson counter are
// mutated only through the progress update path.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Plan     string `json:"plan" gorm:"default:Free"`

	Streak           int    `json:"streak" gorm:"default:0"`
	Accuracy         int    `json:"accuracy" gorm:"default:0"`
	CompletedLessons int    `json:"completed_lessons" gorm:"default:0"`
	LastActiveDate   string `json:"last_active_date"` // YYYY-MM-DD, "" until first activity

	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserSession is one issued login token, kept for audit and revocation.
type UserSession struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	IP        string
	UserAgent string
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	LastUsed  time.Time
}
