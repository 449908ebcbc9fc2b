package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pr-risk-radar/internal/github"
	httpapi "pr-risk-radar/internal/http"
	"pr-risk-radar/internal/service"
)

const headSHA = "a3f5b2c1d4e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0"

// newFakeGitHub поднимает фейковый GitHub API с одним PR acme/api#100.
func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	createdAt := time.Now().UTC().Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/api/pulls/100", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"title": "Add caching layer",
			"state": "open",
			"draft": false,
			"created_at": %q,
			"author_association": "OWNER",
			"changed_files": 2,
			"additions": 40,
			"deletions": 5,
			"head": {"sha": %q},
			"base": {"ref": "main"}
		}`, createdAt, headSHA)
	})
	mux.HandleFunc("/repos/acme/api/pulls/100/files", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"filename": "internal/cache.go", "patch": "+func Get() {}", "status": "added", "additions": 30, "deletions": 0},
			{"filename": "internal/cache_test.go", "patch": "+func TestGet(t *testing.T) {}", "status": "added", "additions": 10, "deletions": 5}
		]`))
	})
	mux.HandleFunc("/repos/acme/api/pulls/100/reviews", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"state": "APPROVED"}]`))
	})
	mux.HandleFunc("/repos/acme/api/commits/"+headSHA+"/check-runs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"total_count": 1,
			"check_runs": [
				{"name": "build", "status": "completed", "conclusion": "success",
				 "started_at": "2024-01-01T00:00:00Z", "completed_at": "2024-01-01T00:00:30Z"}
			]
		}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	return httptest.NewServer(mux)
}

func TestE2E_FullFlow(t *testing.T) {
	upstream := newFakeGitHub(t)
	defer upstream.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	gh := github.New(upstream.URL, "e2e-token")
	handler := httpapi.NewHandler(service.NewScanService(gh), service.NewPerformanceService(gh), logger)

	srv := httptest.NewServer(handler.Router())
	defer srv.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	t.Log("Step 1: Health check")
	resp, err := client.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 1 Failed: Expected 200, got %d", resp.StatusCode)
	}
	t.Log("Step 1: Success")

	t.Log("Step 2: Scan PR")
	resp, err = client.Get(srv.URL + "/api/scan-pr?owner=acme&repo=api&pr=100")
	if err != nil {
		t.Fatalf("Failed to scan PR: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 2 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var scanResp struct {
		Score   int    `json:"score"`
		Grade   string `json:"grade"`
		Base    string `json:"base"`
		Signals struct {
			SecretsInDiff struct {
				Hits int `json:"hits"`
			} `json:"secrets_in_diff"`
		} `json:"signals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&scanResp); err != nil {
		t.Fatal("Failed to decode scan response:", err)
	}

	// Чистый PR от владельца без секретов и падений CI
	if scanResp.Score != 100 {
		t.Errorf("Expected score 100, got %d", scanResp.Score)
	}
	if scanResp.Grade != "A" {
		t.Errorf("Expected grade A, got %s", scanResp.Grade)
	}
	if scanResp.Base != "main" {
		t.Errorf("Expected base main, got %s", scanResp.Base)
	}
	if scanResp.Signals.SecretsInDiff.Hits != 0 {
		t.Errorf("Expected 0 secret hits, got %d", scanResp.Signals.SecretsInDiff.Hits)
	}
	t.Logf("Step 2 Success: score=%d grade=%s", scanResp.Score, scanResp.Grade)

	t.Log("Step 3: Analyze PR performance")
	perfBody := []byte(`{"owner": "acme", "repo": "api", "pr": 100}`)

	resp, err = client.Post(srv.URL+"/api/analyze-pr-performance", "application/json", bytes.NewBuffer(perfBody))
	if err != nil {
		t.Fatalf("Failed to analyze PR: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 3 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var perfResp struct {
		Risk struct {
			Level string `json:"level"`
		} `json:"risk"`
		CI struct {
			Success int `json:"success"`
		} `json:"ci"`
		FileTypes struct {
			Source int `json:"source"`
			Tests  int `json:"tests"`
		} `json:"file_types"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&perfResp); err != nil {
		t.Fatal("Failed to decode performance response:", err)
	}

	if perfResp.Risk.Level != "low" {
		t.Errorf("Expected low risk, got %s", perfResp.Risk.Level)
	}
	if perfResp.CI.Success != 1 {
		t.Errorf("Expected 1 successful check, got %d", perfResp.CI.Success)
	}
	if perfResp.FileTypes.Source != 1 || perfResp.FileTypes.Tests != 1 {
		t.Errorf("Expected 1 source and 1 test file, got %d/%d", perfResp.FileTypes.Source, perfResp.FileTypes.Tests)
	}
	if perfResp.Comment == "" {
		t.Error("Expected non-empty markdown comment")
	}
	t.Log("Step 3: Success")

	t.Log("Step 4: Validation error")
	resp, err = client.Get(srv.URL + "/api/scan-pr?owner=acme&repo=api")
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Step 4 Failed: Expected 400, got %d", resp.StatusCode)
	}
	t.Log("Step 4: Success")

	t.Log("Step 5: Unknown PR maps to 502")
	resp, err = client.Get(srv.URL + "/api/scan-pr?owner=acme&repo=api&pr=999")
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("Step 5 Failed: Expected 502, got %d", resp.StatusCode)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatal("Failed to decode error response:", err)
	}
	if errResp.Error.Code != "UPSTREAM_ERROR" {
		t.Errorf("Expected code UPSTREAM_ERROR, got %s", errResp.Error.Code)
	}
	t.Log("Step 5: Success")
}
