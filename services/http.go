package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/genspeak/genspeak_api/docs"
	"github.com/genspeak/genspeak_api/services/handlers"
	"github.com/genspeak/genspeak_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	userSvc       *UserService
	contentSvc    *ContentService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		AppName:               "GenSpeak API",
		DisableStartupMessage: true,
		JSONEncoder:           shared.JSONEncoder,
		JSONDecoder:           shared.JSONDecoder,
		ErrorHandler:          svc.errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	v1.Post("/signup", svc.rateLimitSvc.Middleware("signup"), svc.instrumentSignup(authHandler.Signup))
	v1.Post("/login", svc.rateLimitSvc.Middleware("login"), authHandler.Login)

	v1.Get("/user/:email", userHandler.GetStats)
	v1.Post("/progress", svc.instrumentProgress(userHandler.UpdateProgress))
	v1.Get("/me", svc.authSvc.RequiredAuth(), userHandler.GetMe)

	v1.Get("/lessons/:language", contentHandler.GetLessons)
	v1.Get("/languages", contentHandler.GetLanguages)
	v1.Post("/translate", contentHandler.Translate)
	v1.Post("/score", contentHandler.ScoreAttempt)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(nil, "Page not found")
	})

	svc.server = app

	log.Info().Int("port", svc.port).Msg("API server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Produce json
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return c.Status(http.StatusOK).SendString("pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("path", c.Path()).Msg("Request failed")
		}
		return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseError(c, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseError(c, http.StatusInternalServerError, "Internal server error")
}

func (svc *HttpService) instrumentSignup(next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := next(c); err != nil {
			return err
		}
		if c.Response().StatusCode() == http.StatusCreated {
			svc.monitoringSvc.RecordSignup()
		}
		return nil
	}
}

func (svc *HttpService) instrumentProgress(next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := next(c); err != nil {
			return err
		}
		if c.Response().StatusCode() == http.StatusOK {
			svc.monitoringSvc.RecordProgressUpdate()
		}
		return nil
	}
}
