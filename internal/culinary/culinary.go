package culinary

import (
	"errors"
	"strings"
	"time"

	"github.com/pemdes/webdesa/pkg"
)

var (
	ErrItemNotFound    = errors.New("culinary item not found")
	ErrNameEmpty       = errors.New("culinary name empty")
	ErrInvalidImageURL = errors.New("culinary image url invalid")
)

// Item is a local food stall or dish listed on the culinary page.
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	PriceRange  string    `json:"price_range"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i *Item) Normalize() error {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.Address = strings.TrimSpace(i.Address)
	i.PriceRange = strings.TrimSpace(i.PriceRange)
	i.ImageURL = strings.TrimSpace(i.ImageURL)

	if i.Name == "" {
		return ErrNameEmpty
	}
	if i.ImageURL != "" && !pkg.IsValidImageURL(i.ImageURL) {
		return ErrInvalidImageURL
	}
	return nil
}
