package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/genspeak/genspeak_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresService is the hosted-database adapter, selected when
// DATABASE_URL is set.
type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
		if err == nil {
			break
		}

		log.WithError(err).Warn("Database connection failed, retrying")
		time.Sleep(retryDelay)
		retryDelay *= 2
	}
	if err != nil {
		return err
	}

	if err = ds.db.AutoMigrate(migrationModels()...); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(err, "Not found")
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "duplicate key value"):
		return shared.NewBadRequestError(err, "Email already registered.")
	default:
		log.WithError(err).Error("Database error occurred")
		return shared.NewInternalError(err, "Internal Server Error")
	}
}
