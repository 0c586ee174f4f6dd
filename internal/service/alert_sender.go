package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/redis"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

// AlertSender drains the critical-alert queue and delivers each alert to the
// configured webhook. It is meant to run as a long-lived goroutine.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.WebhookConfig, q *redis.AlertQueue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alert sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		alert, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("alert dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending critical alert",
			slog.String("report_id", alert.ReportID.String()),
			slog.String("hazard_type", string(alert.HazardType)),
		)
		s.sendWithRetry(ctx, alert)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, alert domain.Alert) {
	const maxRetries = 3

	body, err := json.Marshal(alert)
	if err != nil {
		s.logger.Error("marshal alert failed", slog.Any("error", err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.Any("error", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
