package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumenworks/backend/internal/config"
	"github.com/lumenworks/backend/internal/handler"
	"github.com/lumenworks/backend/internal/logging"
	"github.com/lumenworks/backend/internal/metrics"
	"github.com/lumenworks/backend/internal/repository"
	"github.com/lumenworks/backend/internal/service"
	"github.com/lumenworks/backend/internal/storage"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	pool, err := repository.SharedPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	contactService := service.NewContactService(contactRepo)
	projectService := service.NewProjectService(projectRepo)

	var store storage.Storage
	if cfg.StorageDir != "" {
		store = storage.NewLocalStorage(cfg.StorageDir, "/uploads")
	}

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	projectHandler := handler.NewProjectHandler(projectService, store, cfg.PublicProjectLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("POST /api/contacts", contactHandler.Create)
	mux.HandleFunc("GET /api/contacts/{id}", contactHandler.Get)
	mux.HandleFunc("PUT /api/contacts/{id}", contactHandler.Update)
	mux.HandleFunc("DELETE /api/contacts/{id}", contactHandler.Delete)

	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("POST /api/projects", projectHandler.Create)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.Delete)

	if cfg.StorageDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.StorageDir))))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(metrics.Middleware(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
