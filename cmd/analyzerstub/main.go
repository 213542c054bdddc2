package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ojas37/Legal-AI-Analyzer/pkg/logger"
	"github.com/Ojas37/Legal-AI-Analyzer/stubserver"
)

func main() {
	port := flag.Int("port", 8000, "port to listen on")
	stageDelay := flag.Duration("stage-delay", 200*time.Millisecond, "pause between processing stages")
	maxTasks := flag.Int("max-tasks", 100, "maximum tasks kept in memory")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger.Init(&logger.Config{
		Level:  *logLevel,
		Format: "text",
	})

	gin.SetMode(gin.ReleaseMode)
	router := stubserver.New(stubserver.Config{
		StageDelay: *stageDelay,
		MaxTasks:   *maxTasks,
	}).Router()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("analyzer stub starting", "port", *port, "stage_delay", *stageDelay)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
