package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/mpdl-apps/cleaning-inventory/internal/http"
	handler "github.com/mpdl-apps/cleaning-inventory/internal/http/handlers"
)

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	tok, err := generateToken(r, "admin", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	payload := handler.UserLogin{Username: "admin", Password: "nope"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	r := api.NewRouter()

	payload := handler.UserLogin{Username: "intruder", Password: "secret"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestProtectedRoute_RejectsBadToken(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodDelete, "/inventories", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a forged token, got %d", w.Code)
	}
}

func TestProtectedRoute_RejectsMissingHeader(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodDelete, "/inventories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without Authorization, got %d", w.Code)
	}
}
