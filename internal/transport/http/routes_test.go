package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/serverconfig"
)

const easyS81 = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &serverconfig.Config{
		SessionSecret:   "test-secret-key-at-least-32-bytes-long",
		Port:            "8080",
		DefaultStrategy: "all",
	}
	RegisterRoutes(r, cfg)
	return r
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()
	w := doJSON(router, "GET", "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", resp["status"])
	}
}

func TestDecodeHandler(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name:       "valid s81",
			body:       map[string]interface{}{"format": "s81", "body": easyS81},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown format",
			body:       map[string]interface{}{"format": "nope", "body": easyS81},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing body field",
			body:       map[string]interface{}{"format": "s81"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/decode", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d. body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var resp decodeResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to parse response: %v", err)
				}
				if resp.Token == "" {
					t.Error("expected a non-empty token")
				}
				if resp.Dump == "" {
					t.Error("expected a non-empty dump")
				}
			}
		})
	}
}

func decodeTestToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, "POST", "/api/decode", map[string]interface{}{"format": "s81", "body": easyS81})
	if w.Code != http.StatusOK {
		t.Fatalf("decode failed: %s", w.Body.String())
	}
	var resp decodeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse decode response: %v", err)
	}
	return resp.Token
}

func TestSolveStepHandler(t *testing.T) {
	router := setupRouter()
	token := decodeTestToken(t, router)

	w := doJSON(router, "POST", "/api/solve/step", map[string]interface{}{"token": token, "strategy": "fh,n1,h1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp solveStepResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a refreshed token")
	}
}

func TestSolveStepHandlerBadToken(t *testing.T) {
	router := setupRouter()
	w := doJSON(router, "POST", "/api/solve/step", map[string]interface{}{"token": "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestSolveRunHandler(t *testing.T) {
	router := setupRouter()
	token := decodeTestToken(t, router)

	w := doJSON(router, "POST", "/api/solve/run", map[string]interface{}{"token": token, "strategy": "all"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp solveRunResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Steps) == 0 {
		t.Error("expected at least one step against an easy puzzle")
	}
}

func TestRenderHandler(t *testing.T) {
	router := setupRouter()
	token := decodeTestToken(t, router)

	req, _ := http.NewRequest("GET", "/api/render/csv?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["body"] == nil {
		t.Error("expected body in response")
	}
}

func TestRenderHandlerMissingToken(t *testing.T) {
	router := setupRouter()
	req, _ := http.NewRequest("GET", "/api/render/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
