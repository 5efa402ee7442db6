package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

const tokenIssuer = "casefilebackend"

type AuthHandler struct {
	UserRepo  repository.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is the public profile returned on login.
type AuthUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Station  string `json:"station"`
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *AuthUser `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

// Login validates a username/password pair and issues a signed session
// token. Unknown users and wrong passwords produce byte-identical responses
// so usernames cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.UserRepo.GetByUsername(payload.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.S().Errorw("login lookup failed", "error", err)
		}
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "Invalid username or password"})
		return
	}

	if !user.CheckPassword(payload.Password) {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Message: "Invalid username or password"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		zap.S().Errorw("failed to sign session token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User: &AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			FullName: user.FullName,
			Station:  user.Station,
		},
		Token: token,
	})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   fmt.Sprint(user.ID),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.TokenTTL)),
		Issuer:    tokenIssuer,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
}
