package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	authhandler "github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/auth"
	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/comments"
	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/posts"
	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/reports"
	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/social"
	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/system"
	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/middleware"
	"github.com/Godkunn/Ocean-Watch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, tokens *auth.TokenManager) *Server {
	authHandler := authhandler.NewHandler(logger, svc.Auth)
	reportHandler := reports.NewHandler(logger, svc.Reports)
	postHandler := posts.NewHandler(logger, svc.Posts)
	commentHandler := comments.NewHandler(logger, svc.Comments)
	socialHandler := social.NewHandler(logger, svc.Social)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(ctx, logger, tokens, authHandler, reportHandler, postHandler, commentHandler, socialHandler, systemHandler)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	logger *slog.Logger,
	tokens *auth.TokenManager,
	authHandler *authhandler.Handler,
	reportHandler *reports.Handler,
	postHandler *posts.Handler,
	commentHandler *comments.Handler,
	socialHandler *social.Handler,
	systemHandler *system.Handler,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	authenticate := middleware.Authenticate(tokens)
	canModerate := middleware.RequireRole(domain.RoleOfficial, domain.RoleAnalyst, domain.RoleAdmin)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(ctx, 5, 10, 10*time.Minute, logger))
			ar.Post("/register", authHandler.Register)
			ar.Post("/login", authHandler.Login)
			ar.With(authenticate).Get("/me", authHandler.Me)
		})

		api.Route("/reports", func(rr chi.Router) {
			rr.Get("/", reportHandler.List)
			rr.Get("/nearby", reportHandler.Nearby)
			rr.With(authenticate).Post("/", reportHandler.Create)
			rr.With(authenticate, canModerate).Patch("/{id}/status", reportHandler.UpdateStatus)
		})

		api.Route("/posts", func(pr chi.Router) {
			pr.Get("/", postHandler.List)
			pr.With(authenticate).Post("/", postHandler.Create)

			pr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", postHandler.Get)
				ir.With(authenticate, middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).Post("/vote", postHandler.Vote)
				ir.With(authenticate).Post("/share", postHandler.Share)
			})
		})

		api.Route("/comments", func(cr chi.Router) {
			cr.Get("/post/{postId}", commentHandler.ListForPost)
			cr.With(authenticate).Post("/{postId}", commentHandler.Create)
			cr.With(authenticate, middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).Post("/{id}/vote", commentHandler.Vote)
		})

		api.Route("/social", func(sr chi.Router) {
			sr.Use(authenticate)
			sr.Get("/posts", socialHandler.Posts)
			sr.Post("/analyze", socialHandler.Analyze)
		})
	})

	r.Get("/health", systemHandler.SystemHealth)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
