package http

import (
	"encoding/json"
	"net/http"

	"pr-risk-radar/internal/service"
)

func (h *Handler) handleAnalyzePerformance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "analyze_pr_performance"

	var req analyzePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateAnalyzeRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	result, err := h.Performance.AnalyzePR(ctx, req.Owner, req.Repo, req.PR)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, result)
}
