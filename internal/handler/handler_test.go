package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/usecase"
)

var (
	testLogger   = zerolog.New(io.Discard)
	testValidate = validator.New()
)

// stubAuthUsecase implements usecase.AuthUsecase with function fields so
// each test supplies only the behavior it needs.
type stubAuthUsecase struct {
	signup func(ctx context.Context, params usecase.SignupParams) error
	login  func(ctx context.Context, params usecase.LoginParams) (*model.User, error)
	logout func(ctx context.Context, email string) (time.Time, error)
}

func (s *stubAuthUsecase) Signup(ctx context.Context, params usecase.SignupParams) error {
	return s.signup(ctx, params)
}

func (s *stubAuthUsecase) Login(ctx context.Context, params usecase.LoginParams) (*model.User, error) {
	return s.login(ctx, params)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, email string) (time.Time, error) {
	return s.logout(ctx, email)
}

type stubUserUsecase struct {
	list   func(ctx context.Context) ([]*model.User, error)
	update func(ctx context.Context, id string, params usecase.UpdateUserParams) error
	delete func(ctx context.Context, id string) error
}

func (s *stubUserUsecase) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.list(ctx)
}

func (s *stubUserUsecase) UpdateUser(ctx context.Context, id string, params usecase.UpdateUserParams) error {
	return s.update(ctx, id, params)
}

func (s *stubUserUsecase) DeleteUser(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type stubBookmarkUsecase struct {
	add    func(ctx context.Context, email string, bookmark model.Bookmark) error
	remove func(ctx context.Context, email, cryptoID string) error
	list   func(ctx context.Context, email string) ([]model.Bookmark, error)
}

func (s *stubBookmarkUsecase) AddBookmark(ctx context.Context, email string, bookmark model.Bookmark) error {
	return s.add(ctx, email, bookmark)
}

func (s *stubBookmarkUsecase) RemoveBookmark(ctx context.Context, email, cryptoID string) error {
	return s.remove(ctx, email, cryptoID)
}

func (s *stubBookmarkUsecase) ListBookmarks(ctx context.Context, email string) ([]model.Bookmark, error) {
	return s.list(ctx, email)
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v (body %q)", err, rec.Body.String())
	}
	return out
}
