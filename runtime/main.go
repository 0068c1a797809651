package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/genspeak/genspeak_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using system environment")
	}

	// One storage adapter per process: postgres when DATABASE_URL is
	// set, the sqlite file otherwise.
	var sqlSvc context.Service = &services.SqliteService{}
	if os.Getenv("DATABASE_URL") != "" {
		sqlSvc = &services.PostgresService{}
	}

	svcs := []context.Service{
		sqlSvc,
		&services.JWTService{},
		&services.RedisService{},
		&services.RateLimitService{},
		&services.MonitoringService{},
		&services.AuthService{},
		&services.UserService{},
		&services.ContentService{},

		&services.HttpService{},
	}

	ctx, err := context.NewCtx(svcs...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	if err := ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Service context stopped")
		return
	}
}
