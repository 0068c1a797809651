package repositories

import (
	"testing"
	"time"

	"github.com/genspeak/genspeak_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.UserSession{}))
	return NewUserRepository(db)
}

func testUser(email string) *model.User {
	return &model.User{
		ID:       "user-" + email,
		Name:     "Ana Torres",
		Email:    email,
		Password: "$2a$10$notarealhash",
		Plan:     "Free",
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateUser(testUser("ana@example.com")))

	user, err := repo.GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", user.Name)
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, 0, user.Accuracy)
	assert.Equal(t, 0, user.CompletedLessons)
	assert.Equal(t, "", user.LastActiveDate)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateUser(testUser("ana@example.com")))

	dup := testUser("ana@example.com")
	dup.ID = "user-other"
	err := repo.CreateUser(dup)
	require.Error(t, err)

	// The original record is untouched.
	user, err := repo.GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-ana@example.com", user.ID)
}

func TestUserRepository_GetUnknownEmail(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetUserByEmail("ghost@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_EmailExists(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.CreateUser(testUser("ana@example.com")))

	exists, err := repo.EmailExists("ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists("ghost@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdateProgress(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.CreateUser(testUser("ana@example.com")))

	require.NoError(t, repo.UpdateProgress("ana@example.com", 4, 85, 11, "2026-08-31"))

	user, err := repo.GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 4, user.Streak)
	assert.Equal(t, 85, user.Accuracy)
	assert.Equal(t, 11, user.CompletedLessons)
	assert.Equal(t, "2026-08-31", user.LastActiveDate)
}

func TestUserRepository_Sessions(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.CreateUser(testUser("ana@example.com")))

	session := &model.UserSession{
		ID:        "sess-1",
		UserID:    "user-ana@example.com",
		IP:        "203.0.113.9",
		UserAgent: "test",
		IsActive:  true,
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
	}
	require.NoError(t, repo.CreateSession(session))
	require.NoError(t, repo.DeactivateSession("sess-1", "user-ana@example.com"))
}
