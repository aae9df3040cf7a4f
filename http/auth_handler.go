package http

import (
	"log/slog"
	"net/http"
	"strings"

	"pfm-backend/service"
)

type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type deleteUserRequest struct {
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if _, err := h.service.Register(r.Context(), input); err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("register failed", "email", input.Email, "error", err)
		}
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input loginRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("login failed", "email", input.Email, "error", err)
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "User successfully logged in", Data: user})
}

// DeleteUser handles DELETE /delete/user/{email}; the body carries the password.
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	email := strings.TrimPrefix(r.URL.Path, "/delete/user/")
	if email == "" || strings.Contains(email, "/") {
		respondMessage(w, http.StatusBadRequest, "email is required")
		return
	}

	var input deleteUserRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.service.DeleteUser(r.Context(), email, input.Password); err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("delete user failed", "email", email, "error", err)
		}
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "User deleted successfully")
}
