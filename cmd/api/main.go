// ================== cmd/api/main.go ==================
//
// @title MemTodo API
// @version 1.0
// @description In-memory CRUD API for todo items
// @host localhost:8080
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	docs "github.com/xyz-asif/memtodo/docs"
	"github.com/xyz-asif/memtodo/internal/config"
	"github.com/xyz-asif/memtodo/internal/features/todos"
	"github.com/xyz-asif/memtodo/internal/pkg/logger"
	"github.com/xyz-asif/memtodo/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Todos live only as long as this process.
	repo := todos.NewRepository()
	router := routes.NewRouter(cfg, repo)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting on port %s (%s)", cfg.Port, cfg.AppEnv)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited (%d todos discarded)", repo.Count())
}
