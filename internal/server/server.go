// Package server runs the local HTTP API the UI talks to.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/voici5986/Antigravity-Manager/internal/handler"
	"github.com/voici5986/Antigravity-Manager/internal/logging"
	"github.com/voici5986/Antigravity-Manager/internal/svc"
)

// Router builds the chi router over the service context. Split out so tests
// can drive the API without binding a port.
func Router(svcCtx *svc.ServiceContext) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", handler.HealthCheckHandler(svcCtx))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/config", handler.GetConfigHandler(svcCtx))
		r.Post("/config/load", handler.LoadConfigHandler(svcCtx))
		r.Put("/config", handler.SaveConfigHandler(svcCtx))
		r.Patch("/config/theme", handler.UpdateThemeHandler(svcCtx))
		r.Patch("/config/language", handler.UpdateLanguageHandler(svcCtx))
		r.Get("/update/check", handler.VersionCheckHandler(svcCtx))
	})

	return r
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, svcCtx *svc.ServiceContext) error {
	addr := fmt.Sprintf("%s:%d", svcCtx.Config.App.Host, svcCtx.Config.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(svcCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Infof("Serving API on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
