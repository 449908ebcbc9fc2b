package http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "pr-risk-radar/internal/http"
	"pr-risk-radar/internal/http/mocks"
	"pr-risk-radar/internal/model"
	"pr-risk-radar/internal/service"
)

func TestHandler_AnalyzePerformance(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	okResult := model.PerformanceResult{
		Owner:   "acme",
		Repo:    "api",
		PR:      7,
		Risk:    model.RiskAssessment{Score: 30, Level: "low"},
		Comment: "## PR Performance Impact Analysis",
	}

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(perf *mocks.PerformanceService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"owner": "acme", "repo": "api", "pr": 7}`,
			mockBehavior: func(perf *mocks.PerformanceService) {
				perf.On("AnalyzePR", mock.Anything, "acme", "api", 7).Return(okResult, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad Request: invalid JSON",
			body:           `{"owner": "acme`,
			mockBehavior:   func(perf *mocks.PerformanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: missing owner",
			body:           `{"repo": "api", "pr": 7}`,
			mockBehavior:   func(perf *mocks.PerformanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: zero pr",
			body:           `{"owner": "acme", "repo": "api", "pr": 0}`,
			mockBehavior:   func(perf *mocks.PerformanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Gateway: upstream failed",
			body: `{"owner": "acme", "repo": "api", "pr": 7}`,
			mockBehavior: func(perf *mocks.PerformanceService) {
				perf.On("AnalyzePR", mock.Anything, "acme", "api", 7).
					Return(model.PerformanceResult{}, service.ErrUpstream(assert.AnError))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scans := new(mocks.ScanService)
			perf := new(mocks.PerformanceService)
			tt.mockBehavior(perf)

			h := httpapi.NewHandler(scans, perf, logger)

			req := httptest.NewRequest("POST", "/api/analyze-pr-performance", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var got model.PerformanceResult
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, okResult, got)
			}

			perf.AssertExpectations(t)
		})
	}
}
