package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Quuxplusone/xword/internal/auth"
	"github.com/Quuxplusone/xword/internal/models"
	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/gin-gonic/gin"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	words := dict.NewSet()
	for _, word := range []string{"art", "eta", "has", "hie", "hit", "ire", "sea"} {
		if err := words.Add(word); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	hash, err := auth.HashPassword("swordfish")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	authService := auth.NewService("test-secret", hash)

	// No store: fills are served but not persisted.
	handlers := NewHandlers(words, authService, nil)

	router := gin.New()
	router.POST("/api/auth/login", handlers.Login)
	router.POST("/api/fill", handlers.Fill)
	router.GET("/api/fills", handlers.RecentFills)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestFillEndpoint(t *testing.T) {
	router := setupTestServer(t)

	w := postJSON(t, router, "/api/fill", models.FillRequest{
		Grid: []string{".AS", ".R.", "ETA"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp models.FillResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if resp.Count != 1 || len(resp.Solutions) != 1 {
		t.Fatalf("count = %d solutions = %v, want exactly 1", resp.Count, resp.Solutions)
	}
	want := []string{"has", "ire", "eta"}
	for i, line := range want {
		if resp.Solutions[0][i] != line {
			t.Errorf("solution line %d = %q, want %q", i, resp.Solutions[0][i], line)
		}
	}
	if resp.ID == "" {
		t.Error("response has no id")
	}
}

func TestFillEndpointBadGrid(t *testing.T) {
	router := setupTestServer(t)

	w := postJSON(t, router, "/api/fill", models.FillRequest{
		Grid: []string{"abc", "ab"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("ragged grid status = %d, want 400", w.Code)
	}

	w = postJSON(t, router, "/api/fill", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing grid status = %d, want 400", w.Code)
	}
}

func TestFillEndpointRespectsMaxSolutions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	words := dict.NewSet()
	for _, word := range []string{"bag", "beg", "big", "bog", "bug", "byg"} {
		if err := words.Add(word); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	handlers := NewHandlers(words, auth.NewService("test-secret", ""), nil)
	router := gin.New()
	router.POST("/api/fill", handlers.Fill)

	w := postJSON(t, router, "/api/fill", models.FillRequest{
		Grid:         []string{"b0g"},
		MaxSolutions: 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp models.FillResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
	if len(resp.Solutions) != 2 || resp.Solutions[0][0] != "bag" || resp.Solutions[1][0] != "beg" {
		t.Errorf("solutions = %v, want [bag beg]", resp.Solutions)
	}
}

func TestLoginEndpoint(t *testing.T) {
	router := setupTestServer(t)

	w := postJSON(t, router, "/api/auth/login", models.LoginRequest{Password: "swordfish"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("login returned an empty token")
	}

	w = postJSON(t, router, "/api/auth/login", models.LoginRequest{Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}
}

func TestRecentFillsWithoutStore(t *testing.T) {
	router := setupTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/fills", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
