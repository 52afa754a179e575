package payload

import "github.com/jmcdev/cryptomark-api/internal/model"

type AddBookmarkRequest struct {
	Email  string          `json:"email"  validate:"required,email"`
	Crypto *model.Bookmark `json:"crypto" validate:"required"`
}

type RemoveBookmarkRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	CryptoID string `json:"cryptoId" validate:"required"`
}

type ListBookmarksResponse struct {
	Success   bool             `json:"success"`
	Bookmarks []model.Bookmark `json:"bookmarks"`
}
