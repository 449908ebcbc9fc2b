package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pr-risk-radar/internal/model"
	"pr-risk-radar/internal/service"
)

// ScanService описывает контракт сервиса сканирования PR (чтобы можно было мокать).
type ScanService interface {
	ScanPR(ctx context.Context, owner, repo string, number int) (model.ScanResult, error)
}

// PerformanceService описывает контракт сервиса анализа влияния PR.
type PerformanceService interface {
	AnalyzePR(ctx context.Context, owner, repo string, number int) (model.PerformanceResult, error)
}

// Handler объединяет HTTP-обработчики сервиса поверх бизнес-логики.
type Handler struct {
	Scans       ScanService
	Performance PerformanceService
	Log         *slog.Logger
}

// NewHandler создаёт HTTP-обработчик.
func NewHandler(scans ScanService, performance PerformanceService, log *slog.Logger) *Handler {
	return &Handler{
		Scans:       scans,
		Performance: performance,
		Log:         log,
	}
}

// Router собирает chi-роутер со всеми эндпоинтами сервиса.
// CORS разрешает любые источники, методы и заголовки.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/scan-pr", h.handleScanPR)
		r.Post("/analyze-pr-performance", h.handleAnalyzePerformance)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
