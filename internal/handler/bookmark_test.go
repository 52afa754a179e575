package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

func bookmarkRouter(h *BookmarkHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/bookmark", h.AddBookmark)
	r.Delete("/bookmark", h.RemoveBookmark)
	r.Get("/bookmarks/{email}", h.ListBookmarks)
	return r
}

func TestAddBookmarkHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		addErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        `{"email":"a@x.com","crypto":{"id":"eth_0xabc","type":"pool"}}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "Bookmark added successfully",
		},
		{
			name:        "missing crypto",
			body:        `{"email":"a@x.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and crypto object are required",
		},
		{
			name:        "crypto without id",
			body:        `{"email":"a@x.com","crypto":{"type":"pool"}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and crypto object are required",
		},
		{
			name:        "missing email",
			body:        `{"crypto":{"id":"eth_0xabc"}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and crypto object are required",
		},
		{
			name:        "unknown user",
			body:        `{"email":"ghost@x.com","crypto":{"id":"eth_0xabc"}}`,
			addErr:      usecase.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "duplicate",
			body:        `{"email":"a@x.com","crypto":{"id":"eth_0xabc"}}`,
			addErr:      usecase.ErrAlreadyBookmarked,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Already bookmarked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookmarks := &stubBookmarkUsecase{
				add: func(context.Context, string, model.Bookmark) error { return tt.addErr },
			}
			h := NewBookmarkHandler(bookmarks, testValidate, &testLogger)

			rec := doJSON(t, bookmarkRouter(h), http.MethodPost, "/bookmark", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, rec)["message"])
		})
	}
}

func TestRemoveBookmarkHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		removeErr  error
		wantStatus int
	}{
		{
			name:       "removed",
			body:       `{"email":"a@x.com","cryptoId":"eth_0xabc"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing crypto id",
			body:       `{"email":"a@x.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nothing removed",
			body:       `{"email":"a@x.com","cryptoId":"eth_0xabc"}`,
			removeErr:  usecase.ErrBookmarkNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookmarks := &stubBookmarkUsecase{
				remove: func(context.Context, string, string) error { return tt.removeErr },
			}
			h := NewBookmarkHandler(bookmarks, testValidate, &testLogger)

			rec := doJSON(t, bookmarkRouter(h), http.MethodDelete, "/bookmark", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListBookmarksHandler(t *testing.T) {
	bookmarks := &stubBookmarkUsecase{
		list: func(_ context.Context, email string) ([]model.Bookmark, error) {
			assert.Equal(t, "a@x.com", email)
			return []model.Bookmark{{ID: "eth_0xabc", Type: "pool"}}, nil
		},
	}
	h := NewBookmarkHandler(bookmarks, testValidate, &testLogger)

	rec := doJSON(t, bookmarkRouter(h), http.MethodGet, "/bookmarks/a@x.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	list, ok := body["bookmarks"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestListBookmarksUnknownUserHandler(t *testing.T) {
	bookmarks := &stubBookmarkUsecase{
		list: func(context.Context, string) ([]model.Bookmark, error) {
			return nil, usecase.ErrUserNotFound
		},
	}
	h := NewBookmarkHandler(bookmarks, testValidate, &testLogger)

	rec := doJSON(t, bookmarkRouter(h), http.MethodGet, "/bookmarks/ghost@x.com", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBookmarksEmptyIsJSONArray(t *testing.T) {
	bookmarks := &stubBookmarkUsecase{
		list: func(context.Context, string) ([]model.Bookmark, error) {
			return []model.Bookmark{}, nil
		},
	}
	h := NewBookmarkHandler(bookmarks, testValidate, &testLogger)

	rec := doJSON(t, bookmarkRouter(h), http.MethodGet, "/bookmarks/a@x.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookmarks":[]`)
}
