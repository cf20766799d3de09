package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIServer serves route until ctx is cancelled, then drains in-flight
// requests for up to the configured shutdown timeout.
func APIServer(ctx context.Context, route *chi.Mux, config *utils.Config, logger *zap.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.App.Port),
		Handler:           route,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := config.App.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// CleanSessions removes long-expired sessions every interval until ctx is
// cancelled.
func CleanSessions(ctx context.Context, auth usecase.AuthService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := auth.CleanExpiredSessions(ctx); err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}
}
