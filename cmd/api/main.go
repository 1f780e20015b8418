package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"menuparser/internal/config"
	"menuparser/internal/llm"
	"menuparser/internal/menu"
	"menuparser/internal/middleware"
	"menuparser/internal/router"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	middleware.Setup(cfg.LogLevel, cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── LLM ─────────────────────────
	gemini := llm.NewGeminiClient(llm.GeminiOptions{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})

	var llmClient llm.Client = gemini
	if cfg.Breaker.Enabled {
		llmClient = llm.NewBreaker("gemini", gemini, cfg.Breaker.Timeout)
	}

	// ───────────────────────── MENU ─────────────────────────
	menuService := menu.NewService(llmClient)
	menuHandler := menu.NewHandler(menuService, cfg.MaxUploadBytes)

	// ───────────────────────── ROUTER ─────────────────────────
	r, err := router.NewRouter(menuHandler, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		ServeUI:        true,
	})
	if err != nil {
		log.Fatalf("❌ Router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(log.Fields{
			"addr":    cfg.Addr(),
			"model":   gemini.Model(),
			"breaker": cfg.Breaker.Enabled,
		}).Info("🚀 API running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Gemini.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
