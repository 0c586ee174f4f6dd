package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Godkunn/Ocean-Watch/internal/api"
	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/internal/nlp"
	"github.com/Godkunn/Ocean-Watch/internal/queue"
	"github.com/Godkunn/Ocean-Watch/internal/redis"
	"github.com/Godkunn/Ocean-Watch/internal/service"
	"github.com/Godkunn/Ocean-Watch/internal/social"
	"github.com/Godkunn/Ocean-Watch/internal/storage/media"
	"github.com/Godkunn/Ocean-Watch/internal/storage/postgres"
	"github.com/Godkunn/Ocean-Watch/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertQueue  *redis.AlertQueue
	AlertSender *service.AlertSender
	Events      *queue.Publisher
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	if err := storage.EnsureSchema(ctx); err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")
	annotationCache := redis.NewAnnotationCache(redisClient)

	log.Info("initializing media store")
	mediaStore, err := media.NewStore(ctx, cfg, log)
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init media store: %w", err)
	}

	var events *queue.Publisher
	if !cfg.Events.Disabled {
		log.Info("initializing event publisher")
		events, err = queue.NewPublisher(cfg, log)
		if err != nil {
			log.Warn("event publisher unavailable, continuing without events", slog.Any("error", err))
			events = nil
		}
	}

	tokens := auth.NewTokenManager(cfg)
	annotator := nlp.NewClient(cfg, log)
	feed := social.NewMockFeed()

	authSvc := service.NewAuthService(storage.Users(), tokens, log, cfg.Auth.BcryptCost)
	reportSvc := service.NewReportService(storage.Reports(), storage.Users(), mediaStore, alertQueue, eventPublisher(events), log)
	postSvc := service.NewPostService(storage.Posts(), storage.Users(), storage.Comments(), mediaStore, annotator, annotationCache, eventPublisher(events), log)
	commentSvc := service.NewCommentService(storage.Comments(), storage.Users(), log)
	socialSvc := service.NewSocialService(feed, annotator, annotationCache, log)

	svc := service.NewService(authSvc, reportSvc, postSvc, commentSvc, socialSvc)

	var alertSender *service.AlertSender
	if !cfg.Webhook.Disabled && cfg.Webhook.URL != "" {
		alertSender = service.NewAlertSender(log, cfg.Webhook, alertQueue)
	}

	httpServer := api.NewServer(ctx, cfg, log, svc, tokens)
	log.Info("initialized server")

	return &Components{
		logger:      log,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertQueue:  alertQueue,
		AlertSender: alertSender,
		Events:      events,
	}, nil
}

// eventPublisher keeps the service layer's nil check honest: a typed nil
// *queue.Publisher must become a nil interface.
func eventPublisher(p *queue.Publisher) service.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Events != nil {
		if err := c.Events.Close(); err != nil {
			c.logger.Error("event publisher close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
