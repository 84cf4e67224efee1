package models

import "time"

// ProductType discriminates which extension table a product row owns.
type ProductType string

const (
	TypeFilm  ProductType = "FILM"
	TypeBook  ProductType = "BOOK"
	TypeMusic ProductType = "MUSIC"
)

// Valid reports whether t is one of the three known product types.
func (t ProductType) Valid() bool {
	switch t {
	case TypeFilm, TypeBook, TypeMusic:
		return true
	}
	return false
}

type Product struct {
	ID            int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string      `json:"title" gorm:"not null"`
	Image         string      `json:"image" gorm:"not null"`
	Type          ProductType `json:"type" gorm:"type:varchar(10);not null;index"`
	GenreCategory string      `json:"genre_category" gorm:"not null"`
	CreatedAt     *time.Time  `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Product) TableName() string {
	return "product"
}
