package service

import (
	"context"
	"log/slog"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
)

type socialService struct {
	feed      FeedSource
	annotator Annotator
	cache     AnnotationCache
	logger    *slog.Logger
}

func NewSocialService(feed FeedSource, annotator Annotator, cache AnnotationCache, logger *slog.Logger) SocialService {
	return &socialService{feed: feed, annotator: annotator, cache: cache, logger: logger}
}

func (s *socialService) Search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error) {
	return s.feed.Search(ctx, keyword, limit)
}

// Analyze is the direct analysis endpoint. Unlike post creation it does not
// degrade: an analyzer outage surfaces to the caller.
func (s *socialService) Analyze(ctx context.Context, text string) (*domain.Annotation, error) {
	const op = "service.Social.Analyze"

	if s.cache != nil {
		if ann, err := s.cache.Get(ctx, text); err != nil {
			s.logger.Warn("annotation cache read failed", slog.String("op", op), slog.Any("error", err))
		} else if ann != nil {
			return ann, nil
		}
	}

	ann, err := s.annotator.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, text, ann); err != nil {
			s.logger.Warn("annotation cache write failed", slog.String("op", op), slog.Any("error", err))
		}
	}
	return ann, nil
}
