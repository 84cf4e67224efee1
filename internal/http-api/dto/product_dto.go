package dto

import (
	"mediahub/internal/http-api/models"
	"time"
)

// CreateProductDTO used for POST /product. Base fields are required for
// every kind; the type-specific block matching Type must be present too.
type CreateProductDTO struct {
	Title         string `json:"title" binding:"required"`
	Image         string `json:"image" binding:"required"`
	Type          string `json:"type" binding:"required"`
	GenreCategory string `json:"genre_category" binding:"required"`

	// film
	Director    *string `json:"director,omitempty"`
	Duration    *int    `json:"duration,omitempty"` // shared with music
	Description *string `json:"description,omitempty"`

	// book
	Publisher *string `json:"publisher,omitempty"`
	Author    *string `json:"author,omitempty"`
	ISBN      *string `json:"isbn,omitempty"`

	// music
	Producer *string `json:"producer,omitempty"`
	Artist   *string `json:"artist,omitempty"`
}

func (d CreateProductDTO) ToModel() models.Product {
	return models.Product{
		Title:         d.Title,
		Image:         d.Image,
		Type:          models.ProductType(d.Type),
		GenreCategory: d.GenreCategory,
	}
}

// ProductResponse is the flattened shape API consumers see: base fields
// plus the extension fields of the product's kind. The extension's own
// product_id never appears here.
type ProductResponse struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Image         string             `json:"image"`
	Type          models.ProductType `json:"type"`
	GenreCategory string             `json:"genre_category"`
	CreatedAt     *time.Time         `json:"created_at,omitempty"`

	Director    *string `json:"director,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Description *string `json:"description,omitempty"`

	Publisher *string `json:"publisher,omitempty"`
	Author    *string `json:"author,omitempty"`
	ISBN      *string `json:"isbn,omitempty"`

	Producer *string `json:"producer,omitempty"`
	Artist   *string `json:"artist,omitempty"`
}

func fromBase(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Image:         p.Image,
		Type:          p.Type,
		GenreCategory: p.GenreCategory,
		CreatedAt:     p.CreatedAt,
	}
}

// Converters: one per product kind, merging base and extension.

func FromFilmProduct(p models.Product, f models.Film) ProductResponse {
	resp := fromBase(p)
	resp.Director = &f.Director
	resp.Duration = &f.Duration
	resp.Description = &f.Description
	return resp
}

func FromBookProduct(p models.Product, b models.Book) ProductResponse {
	resp := fromBase(p)
	resp.Publisher = &b.Publisher
	resp.Author = &b.Author
	resp.ISBN = &b.ISBN
	resp.Description = &b.Description
	return resp
}

func FromMusicProduct(p models.Product, m models.Music) ProductResponse {
	resp := fromBase(p)
	resp.Producer = &m.Producer
	resp.Artist = &m.Artist
	resp.Duration = &m.Duration
	return resp
}
