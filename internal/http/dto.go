// Package http реализует HTTP-обработчики и DTO поверх сервисов анализа PR.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// analyzePerformanceRequest — тело POST /api/analyze-pr-performance.
type analyzePerformanceRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	PR    int    `json:"pr"`
}
