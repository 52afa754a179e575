package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/httputil"
	"github.com/jmcdev/cryptomark-api/internal/payload"
	"github.com/jmcdev/cryptomark-api/internal/timefmt"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

// UserHandler serves the user listing and administration endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *zerolog.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]payload.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, payload.UserResponse{
			ID:         user.ID.Hex(),
			Name:       user.Name,
			Email:      user.Email,
			LastLogin:  timefmt.Format(user.LastLogin),
			LastLogout: timefmt.Format(user.LastLogout),
		})
	}

	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req payload.UpdateUserRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.userUsecase.UpdateUser(r.Context(), id, usecase.UpdateUserParams{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoChanges) {
			httputil.Message(w, http.StatusNotFound, "User not found or no changes made")
			return
		}

		h.logger.Error().Err(err).Str("id", id).Msg("failed to update user")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.Message(w, http.StatusOK, "User updated successfully")
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httputil.Message(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete user")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.Message(w, http.StatusOK, "User deleted successfully")
}
