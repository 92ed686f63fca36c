package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.users.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, services.ErrAccountDisabled):
			utils.Error(w, http.StatusForbidden, "Account suspended. Please contact the owner.")
		default:
			utils.Error(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Me handles GET /api/users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
