package http

import (
	"strconv"

	"pr-risk-radar/internal/service"
)

// ValidateScanQuery валидирует query-параметры для /api/scan-pr и
// возвращает разобранный номер PR.
func ValidateScanQuery(owner, repo, pr string) (int, error) {
	if owner == "" {
		return 0, service.ErrBadRequest("owner is required")
	}
	if repo == "" {
		return 0, service.ErrBadRequest("repo is required")
	}
	if pr == "" {
		return 0, service.ErrBadRequest("pr is required")
	}

	number, err := strconv.Atoi(pr)
	if err != nil {
		return 0, service.ErrBadRequest("pr must be an integer, e.g. pr=42")
	}
	if number <= 0 {
		return 0, service.ErrBadRequest("pr must be a positive integer")
	}
	return number, nil
}

// ValidateAnalyzeRequest валидирует тело запроса /api/analyze-pr-performance.
func ValidateAnalyzeRequest(req analyzePerformanceRequest) error {
	if req.Owner == "" {
		return service.ErrBadRequest("owner is required")
	}
	if req.Repo == "" {
		return service.ErrBadRequest("repo is required")
	}
	if req.PR <= 0 {
		return service.ErrBadRequest("pr must be a positive integer")
	}
	return nil
}
