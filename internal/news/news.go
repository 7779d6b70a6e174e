package news

import (
	"errors"
	"strings"
	"time"

	"github.com/pemdes/webdesa/pkg"
)

const (
	maxTitleLength = 200
	MaxPageSize    = 50
)

var (
	ErrNewsNotFound        = errors.New("news not found")
	ErrTitleOrContentEmpty = errors.New("news title or content empty")
	ErrTitleTooLong        = errors.New("news title too long")
	ErrInvalidImageURL     = errors.New("news image url invalid")
)

type News struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize trims the editable fields and reports the first validation failure.
func (n *News) Normalize() error {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	n.ImageURL = strings.TrimSpace(n.ImageURL)

	if n.Title == "" || n.Content == "" {
		return ErrTitleOrContentEmpty
	}
	if len([]rune(n.Title)) > maxTitleLength {
		return ErrTitleTooLong
	}
	if n.ImageURL != "" && !pkg.IsValidImageURL(n.ImageURL) {
		return ErrInvalidImageURL
	}
	return nil
}

// validationMessage maps a validation error to the text shown to admins,
// empty if err is not a validation error.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, ErrTitleOrContentEmpty):
		return "Judul dan isi berita harus diisi"
	case errors.Is(err, ErrTitleTooLong):
		return "Judul berita maksimal 200 karakter"
	case errors.Is(err, ErrInvalidImageURL):
		return "URL gambar tidak valid"
	}
	return ""
}
