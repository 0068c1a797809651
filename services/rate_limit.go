package services

import (
	stdContext "context"
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/genspeak/genspeak_api/shared"
)

// RateLimitService throttles the credential endpoints. Counters live in
// redis when available so limits hold across replicas; otherwise a local
// fixed window is used.
type RateLimitService struct {
	context.DefaultService

	redisSvc *RedisService

	configs map[string]*RateLimitConfig

	mutex    sync.Mutex
	counters map[string]*window
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.counters = make(map[string]*window)
	svc.configs = map[string]*RateLimitConfig{
		"login": {
			EndpointType: "login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
		},
		"signup": {
			EndpointType: "signup",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
		},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	go svc.startCleanupJob()
	return nil
}

// Middleware throttles by client IP for the given endpoint type.
func (svc *RateLimitService) Middleware(endpointType string) fiber.Handler {
	cfg, ok := svc.configs[endpointType]
	if !ok {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", endpointType, c.IP())

		count, err := svc.increment(key, cfg.WindowSize)
		if err != nil {
			// A broken limiter must not take the endpoint down.
			log.WithError(err).Warn("Rate limit counter unavailable")
			return c.Next()
		}

		if count > cfg.MaxRequests {
			return shared.NewTooManyRequestsError(nil, "Too many requests. Please try again later.")
		}
		return c.Next()
	}
}

func (svc *RateLimitService) increment(key string, windowSize time.Duration) (int, error) {
	if client := svc.redisSvc.GetClient(); client != nil {
		ctx := stdContext.Background()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			return 0, err
		}
		if count == 1 {
			client.Expire(ctx, key, windowSize)
		}
		return int(count), nil
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := time.Now()
	w, ok := svc.counters[key]
	if !ok || now.After(w.expiresAt) {
		w = &window{expiresAt: now.Add(windowSize)}
		svc.counters[key] = w
	}
	w.count++
	return w.count, nil
}

func (svc *RateLimitService) startCleanupJob() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		svc.mutex.Lock()
		now := time.Now()
		for key, w := range svc.counters {
			if now.After(w.expiresAt) {
				delete(svc.counters, key)
			}
		}
		svc.mutex.Unlock()
	}
}
