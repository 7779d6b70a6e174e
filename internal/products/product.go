package products

import (
	"errors"
	"strings"
	"time"

	"github.com/pemdes/webdesa/pkg"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameEmpty       = errors.New("product name empty")
	ErrNegativePrice   = errors.New("product price negative")
	ErrInvalidImageURL = errors.New("product image url invalid")
)

// Product is a featured village product (UMKM), priced in rupiah.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Product) Normalize() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Contact = strings.TrimSpace(p.Contact)

	if p.Name == "" {
		return ErrNameEmpty
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.ImageURL != "" && !pkg.IsValidImageURL(p.ImageURL) {
		return ErrInvalidImageURL
	}
	return nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, ErrNameEmpty):
		return "Nama produk harus diisi"
	case errors.Is(err, ErrNegativePrice):
		return "Harga tidak boleh negatif"
	case errors.Is(err, ErrInvalidImageURL):
		return "URL gambar tidak valid"
	}
	return ""
}
