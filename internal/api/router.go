package api

import (
	"errors"
	"net/http"
	"os"
	"time"

	_ "github.com/AlexZinkM/pagekit/docs"
	"github.com/AlexZinkM/pagekit/internal/handler"
	"github.com/AlexZinkM/pagekit/internal/store"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(users *store.UserStore, staticDir string, logger *zap.Logger) (http.Handler, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	userHandler := handler.NewUserHandler(users, logger)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Static pages
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
		} else {
			logger.Warn("static directory not served", zap.String("dir", staticDir))
		}
	}

	// API endpoints
	mux.HandleFunc("/api/ping", userHandler.Ping)
	mux.HandleFunc("/api/users", userHandler.Users)
	mux.HandleFunc("/api/users/{id}", userHandler.GetUser)
	mux.HandleFunc("/api/authenticate", userHandler.Authenticate)

	return logRequests(mux, logger), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
