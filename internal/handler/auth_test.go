package handler_test

import (
	"net/http"
	"testing"

	"github.com/cinos-pos/api/internal/auth"
	"github.com/cinos-pos/api/internal/handler"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func setupAuthRouter(t *testing.T, pin string) *chi.Mux {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	h := handler.NewAuthHandler(testSecret, hash)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestLoginSuccess(t *testing.T) {
	router := setupAuthRouter(t, "123456")

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{"pin": "123456"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeOrderResponse(t, rr)
	token, _ := resp["access_token"].(string)
	if token == "" {
		t.Fatal("no access token in response")
	}

	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.Role != "CASHIER" {
		t.Errorf("role: got %q, want CASHIER", claims.Role)
	}
}

func TestLoginWrongPin(t *testing.T) {
	router := setupAuthRouter(t, "123456")

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{"pin": "000000"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestLoginMissingPin(t *testing.T) {
	router := setupAuthRouter(t, "123456")

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestRefresh(t *testing.T) {
	router := setupAuthRouter(t, "123456")

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{"pin": "123456"})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: %d: %s", rr.Code, rr.Body.String())
	}
	login := decodeOrderResponse(t, rr)
	refreshToken, _ := login["refresh_token"].(string)
	registerID, _ := login["register_id"].(string)

	rr = doRequest(t, router, "POST", "/auth/refresh", map[string]string{"refresh_token": refreshToken})
	if rr.Code != http.StatusOK {
		t.Fatalf("refresh status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	refreshed := decodeOrderResponse(t, rr)
	if refreshed["register_id"] != registerID {
		t.Errorf("register_id changed on refresh: got %v, want %v", refreshed["register_id"], registerID)
	}
}

func TestRefreshInvalidToken(t *testing.T) {
	router := setupAuthRouter(t, "123456")

	rr := doRequest(t, router, "POST", "/auth/refresh", map[string]string{"refresh_token": "garbage"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
