package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/httputil"
	"github.com/jmcdev/cryptomark-api/internal/payload"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validate    *validator.Validate
	logger      *zerolog.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validate *validator.Validate, logger *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validate:    validate,
		logger:      logger,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req payload.SignupRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	err := h.authUsecase.Signup(r.Context(), usecase.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.Message(w, http.StatusBadRequest, "User already exists")
			return
		}

		h.logger.Error().Err(err).Msg("signup failed")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.Message(w, http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httputil.Message(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httputil.Message(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.logger.Error().Err(err).Msg("login failed")
			httputil.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, payload.LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req payload.LogoutRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Email is required")
		return
	}

	lastLogout, err := h.authUsecase.Logout(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httputil.Message(w, http.StatusBadRequest, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("logout failed")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, payload.LogoutResponse{
		Message:    "Logout successful",
		LastLogout: lastLogout,
	})
}
