package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/models"
	"mediahub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, in dto.CreateProductDTO) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	GetByType(ctx context.Context, productType string) ([]dto.ProductResponse, error)
}

type productService struct {
	repo *repository.ProductRepo
}

func NewProductService(r *repository.ProductRepo) ProductService {
	return &productService{repo: r}
}

// Create validates the discriminated input and persists the base record
// together with exactly one extension record of the declared type. The
// base record is returned; extension fields are not echoed back.
func (s *productService) Create(ctx context.Context, in dto.CreateProductDTO) (*models.Product, error) {
	t := models.ProductType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductType, in.Type)
	}

	p := in.ToModel()
	p.Type = t

	switch t {
	case models.TypeFilm:
		if in.Director == nil || in.Duration == nil {
			return nil, fmt.Errorf("%w: director and duration are required for FILM", ErrMissingField)
		}
		film := models.Film{
			Director:    *in.Director,
			Duration:    *in.Duration,
			Description: deref(in.Description),
		}
		if err := s.repo.CreateFilmProduct(ctx, &p, &film); err != nil {
			return nil, err
		}
	case models.TypeBook:
		if in.Publisher == nil || in.Author == nil || in.ISBN == nil {
			return nil, fmt.Errorf("%w: publisher, author and isbn are required for BOOK", ErrMissingField)
		}
		book := models.Book{
			Publisher:   *in.Publisher,
			Author:      *in.Author,
			ISBN:        *in.ISBN,
			Description: deref(in.Description),
		}
		if err := s.repo.CreateBookProduct(ctx, &p, &book); err != nil {
			return nil, err
		}
	case models.TypeMusic:
		if in.Producer == nil || in.Artist == nil || in.Duration == nil {
			return nil, fmt.Errorf("%w: producer, artist and duration are required for MUSIC", ErrMissingField)
		}
		music := models.Music{
			Producer: *in.Producer,
			Artist:   *in.Artist,
			Duration: *in.Duration,
		}
		if err := s.repo.CreateMusicProduct(ctx, &p, &music); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// GetByID loads the base record and merges its extension into the flat
// response shape. A stored type without a matching extension branch (or
// without its extension row) is an integrity fault, never silently
// dropped data.
func (s *productService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	switch p.Type {
	case models.TypeFilm:
		f, err := s.repo.FilmByProductID(ctx, p.ID)
		if err != nil {
			return nil, s.extensionFault(p, err)
		}
		resp := dto.FromFilmProduct(*p, *f)
		return &resp, nil
	case models.TypeBook:
		b, err := s.repo.BookByProductID(ctx, p.ID)
		if err != nil {
			return nil, s.extensionFault(p, err)
		}
		resp := dto.FromBookProduct(*p, *b)
		return &resp, nil
	case models.TypeMusic:
		m, err := s.repo.MusicByProductID(ctx, p.ID)
		if err != nil {
			return nil, s.extensionFault(p, err)
		}
		resp := dto.FromMusicProduct(*p, *m)
		return &resp, nil
	default:
		log.Printf("[ProductService] integrity fault: product %d has unknown type %q", p.ID, p.Type)
		return nil, fmt.Errorf("%w: product %d has type %q", ErrCorruptProductType, p.ID, p.Type)
	}
}

// GetByType normalizes the type string, loads the matching products and
// only the one extension table they reference. No products of the type
// is an empty slice, not an error.
func (s *productService) GetByType(ctx context.Context, productType string) ([]dto.ProductResponse, error) {
	t := models.ProductType(strings.ToUpper(strings.TrimSpace(productType)))
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductType, productType)
	}

	products, err := s.repo.GetByType(ctx, t)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	if len(products) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	switch t {
	case models.TypeFilm:
		films, err := s.repo.FilmsByProductIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byProduct := make(map[int64]models.Film, len(films))
		for _, f := range films {
			byProduct[f.ProductID] = f
		}
		for _, p := range products {
			f, ok := byProduct[p.ID]
			if !ok {
				return nil, s.extensionFault(&p, gorm.ErrRecordNotFound)
			}
			resp = append(resp, dto.FromFilmProduct(p, f))
		}
	case models.TypeBook:
		books, err := s.repo.BooksByProductIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byProduct := make(map[int64]models.Book, len(books))
		for _, b := range books {
			byProduct[b.ProductID] = b
		}
		for _, p := range products {
			b, ok := byProduct[p.ID]
			if !ok {
				return nil, s.extensionFault(&p, gorm.ErrRecordNotFound)
			}
			resp = append(resp, dto.FromBookProduct(p, b))
		}
	case models.TypeMusic:
		musics, err := s.repo.MusicsByProductIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byProduct := make(map[int64]models.Music, len(musics))
		for _, m := range musics {
			byProduct[m.ProductID] = m
		}
		for _, p := range products {
			m, ok := byProduct[p.ID]
			if !ok {
				return nil, s.extensionFault(&p, gorm.ErrRecordNotFound)
			}
			resp = append(resp, dto.FromMusicProduct(p, m))
		}
	}

	return resp, nil
}

// extensionFault classifies a failed extension lookup: a missing row
// violates the one-extension-per-product invariant and is reported as
// corruption, anything else is a plain storage error.
func (s *productService) extensionFault(p *models.Product, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ProductService] integrity fault: product %d (type %s) has no extension row", p.ID, p.Type)
		return fmt.Errorf("%w: product %d has no %s record", ErrCorruptProductType, p.ID, strings.ToLower(string(p.Type)))
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
