package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/httputil"
	"github.com/jmcdev/cryptomark-api/internal/payload"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

// BookmarkHandler serves bookmark add, remove and list.
type BookmarkHandler struct {
	bookmarkUsecase usecase.BookmarkUsecase
	validate        *validator.Validate
	logger          *zerolog.Logger
}

func NewBookmarkHandler(
	bookmarkUsecase usecase.BookmarkUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUsecase: bookmarkUsecase,
		validate:        validate,
		logger:          logger,
	}
}

func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req payload.AddBookmarkRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil || req.Crypto.ID == "" {
		httputil.Message(w, http.StatusBadRequest, "Email and crypto object are required")
		return
	}

	err := h.bookmarkUsecase.AddBookmark(r.Context(), req.Email, *req.Crypto)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httputil.Message(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrAlreadyBookmarked):
			httputil.Message(w, http.StatusBadRequest, "Already bookmarked")
		default:
			h.logger.Error().Err(err).Msg("failed to add bookmark")
			httputil.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	httputil.Message(w, http.StatusCreated, "Bookmark added successfully")
}

func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	var req payload.RemoveBookmarkRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Message(w, http.StatusBadRequest, "Email and crypto ID are required")
		return
	}

	err := h.bookmarkUsecase.RemoveBookmark(r.Context(), req.Email, req.CryptoID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			httputil.Message(w, http.StatusNotFound, "Bookmark not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to remove bookmark")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.Message(w, http.StatusOK, "Bookmark deleted successfully")
}

func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		httputil.Message(w, http.StatusBadRequest, "Email is required")
		return
	}

	bookmarks, err := h.bookmarkUsecase.ListBookmarks(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httputil.Message(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to list bookmarks")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, payload.ListBookmarksResponse{
		Success:   true,
		Bookmarks: bookmarks,
	})
}
