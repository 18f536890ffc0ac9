package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nelld28/chorebender/internal/database"
	"github.com/nelld28/chorebender/internal/logging"
	"github.com/nelld28/chorebender/internal/motivation"
	"github.com/nelld28/chorebender/internal/server"
)

func main() {
	logger := logging.Setup(os.Getenv("CHOREBENDER_LOG_LEVEL"))

	port := os.Getenv("CHOREBENDER_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("CHOREBENDER_DB_PATH")
	if dbPath == "" {
		dbPath = "chorebender.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// The motivation endpoint is optional; without an API key it answers 503.
	var generator motivation.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gen, err := motivation.NewGemini(context.Background(), motivation.GeminiConfig{
			APIKey: apiKey,
			Model:  os.Getenv("CHOREBENDER_MOTIVATION_MODEL"),
		})
		if err != nil {
			logger.Error("failed to init motivation generator", "error", err)
			os.Exit(1)
		}
		generator = gen
	} else {
		logger.Warn("GEMINI_API_KEY not set, motivation endpoint disabled")
	}

	srv := server.New(db, generator, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		fmt.Printf("ChoreBender running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	cleanupCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
