package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"menu-svc/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, m *metrics.Manager, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(handler.Logger))
	if m != nil {
		r.Use(MetricsMiddleware(m))
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}
	handler.RegisterRoutes(r)

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	}).Handler(r)
}

// StartServer serves until ctx is cancelled, then drains in-flight requests
// for up to shutdownTimeout.
func StartServer(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Menu Service starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Menu Service shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
