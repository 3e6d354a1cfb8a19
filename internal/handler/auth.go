package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cinos-pos/api/internal/auth"
	"github.com/cinos-pos/api/internal/enum"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles register login. There is no user store; a single
// staff PIN (bcrypt-hashed at startup) guards every register, and each
// successful login mints a fresh register session ID.
type AuthHandler struct {
	jwtSecret string
	pinHash   []byte
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtSecret string, pinHash []byte) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, pinHash: pinHash}
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
}

// --- Request / Response types ---

type loginRequest struct {
	Pin string `json:"pin"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	RegisterID   uuid.UUID `json:"register_id"`
	Role         string    `json:"role"`
}

// --- Handlers ---

// Login handles PIN authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pin is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.pinHash, []byte(req.Pin)); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	h.respondWithTokens(w, uuid.New())
}

// Refresh exchanges a valid refresh token for a new access + refresh token
// pair carrying the same register session ID.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.RefreshToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "refresh_token is required"})
		return
	}

	registerID, err := auth.ValidateRefreshToken(h.jwtSecret, req.RefreshToken)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
		return
	}

	h.respondWithTokens(w, registerID)
}

// --- Helpers ---

func (h *AuthHandler) respondWithTokens(w http.ResponseWriter, registerID uuid.UUID) {
	accessToken, err := auth.GenerateToken(h.jwtSecret, registerID, enum.RoleCashier)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	refreshToken, err := auth.GenerateRefreshToken(h.jwtSecret, registerID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RegisterID:   registerID,
		Role:         enum.RoleCashier,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
