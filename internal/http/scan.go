package http

import (
	"net/http"
)

func (h *Handler) handleScanPR(w http.ResponseWriter, r *http.Request) {
	const handlerName = "scan_pr"

	q := r.URL.Query()
	number, err := ValidateScanQuery(q.Get("owner"), q.Get("repo"), q.Get("pr"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	result, err := h.Scans.ScanPR(ctx, q.Get("owner"), q.Get("repo"), number)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, result)
}
