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

	"safescout/internal/api/handlers/http/admin"
	"safescout/internal/api/handlers/http/public"
	"safescout/internal/api/handlers/http/system"
	"safescout/internal/api/handlers/http/user"
	"safescout/internal/config"
	"safescout/internal/middleware"
	"safescout/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, sessions middleware.TokenResolver) *Server {
	adminHandler := admin.NewHandler(logger, svc.Zones, svc.Resources, svc.Scores, svc.Incidents, svc.Entries)
	publicHandler := public.NewHandler(logger, svc.Zones, svc.Resources, svc.Scores)
	userHandler := user.NewHandler(logger, svc.SOS, svc.Incidents, svc.Locations, svc.Chat)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, userHandler, systemHandler, sessions, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	userHandler *user.Handler,
	systemHandler *system.Handler,
	sessions middleware.TokenResolver,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.AdminKey, logger))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Route("/danger-zones", func(zr chi.Router) {
				zr.Post("/", adminHandler.ZoneCreate)
				zr.Get("/", adminHandler.ZoneList)

				zr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.ZoneGet)
					rr.Put("/", adminHandler.ZoneUpdate)
				})
			})

			ar.Route("/safety-resources", func(sr chi.Router) {
				sr.Post("/", adminHandler.ResourceCreate)
				sr.Get("/", adminHandler.ResourceList)
			})

			ar.Route("/safety-scores", func(sr chi.Router) {
				sr.Post("/", adminHandler.ScoreCreate)
				sr.Get("/", adminHandler.ScoreList)
			})

			ar.Get("/incidents", adminHandler.IncidentList)
			ar.Get("/zone-entries", adminHandler.ZoneEntryList)
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Get("/danger-zones/nearby", publicHandler.ZonesNearby)
			pr.Get("/safety-resources/nearby", publicHandler.ResourcesNearby)
			pr.Get("/safety-scores/nearest", publicHandler.ScoreNearest)
		})

		// USER
		api.Group(func(ur chi.Router) {
			ur.Use(middleware.Authenticate(sessions, logger))
			ur.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			ur.Route("/sos", func(sr chi.Router) {
				sr.Post("/", userHandler.SOSCreate)
				sr.Get("/", userHandler.SOSList)
				sr.Put("/{id}", userHandler.SOSUpdate)
			})

			ur.Route("/incidents", func(ir chi.Router) {
				ir.Post("/", userHandler.IncidentCreate)
				ir.Put("/{id}", userHandler.IncidentUpdate)
				ir.Get("/user/{userId}", userHandler.IncidentListByUser)
			})

			ur.Route("/locations", func(lr chi.Router) {
				lr.Post("/track", userHandler.LocationTrack)
				lr.Get("/user/{userId}", userHandler.LocationListByUser)
			})

			ur.Route("/chat", func(cr chi.Router) {
				cr.Post("/", userHandler.ChatSend)
				cr.Get("/{userId}", userHandler.ChatHistory)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

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
