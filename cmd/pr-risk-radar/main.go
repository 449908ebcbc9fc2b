// Package main запускает HTTP-сервис оценки риска pull request'ов
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pr-risk-radar/internal/github"
	httpapi "pr-risk-radar/internal/http"
	"pr-risk-radar/internal/service"
)

func main() {
	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV (.env подхватывается, если есть)
	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		log.Fatal("GITHUB_TOKEN environment variable is required")
	}

	baseURL := os.Getenv("GITHUB_API_URL")

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// 1. Инициализация клиента GitHub API
	gh := github.New(baseURL, token)

	// 2. Инициализация сервисов
	scanService := service.NewScanService(gh)
	perfService := service.NewPerformanceService(gh)

	// 3. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(scanService, perfService, logger)

	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
