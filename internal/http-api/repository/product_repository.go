package repository

import (
	"context"
	"fmt"

	"mediahub/internal/http-api/models"

	"gorm.io/gorm"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// CreateFilmProduct persists the base product and its film extension in
// one transaction. Either both rows exist afterwards or neither does.
func (r *ProductRepo) CreateFilmProduct(ctx context.Context, p *models.Product, f *models.Film) error {
	return r.createWithExtension(ctx, p, func(tx *gorm.DB) error {
		f.ProductID = p.ID
		return tx.Create(f).Error
	})
}

// CreateBookProduct persists the base product and its book extension in
// one transaction.
func (r *ProductRepo) CreateBookProduct(ctx context.Context, p *models.Product, b *models.Book) error {
	return r.createWithExtension(ctx, p, func(tx *gorm.DB) error {
		b.ProductID = p.ID
		return tx.Create(b).Error
	})
}

// CreateMusicProduct persists the base product and its music extension in
// one transaction.
func (r *ProductRepo) CreateMusicProduct(ctx context.Context, p *models.Product, m *models.Music) error {
	return r.createWithExtension(ctx, p, func(tx *gorm.DB) error {
		m.ProductID = p.ID
		return tx.Create(m).Error
	})
}

func (r *ProductRepo) createWithExtension(ctx context.Context, p *models.Product, createExt func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	if err := tx.Create(p).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("create product: %w", translate(err))
	}
	// GORM populated p.ID; the extension row references it
	if err := createExt(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("create product extension: %w", translate(err))
	}
	return tx.Commit().Error
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetByType(ctx context.Context, t models.ProductType) ([]models.Product, error) {
	var list []models.Product
	if err := r.db.WithContext(ctx).
		Where("type = ?", t).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list products by type: %w", err)
	}
	return list, nil
}

// FilmByProductID loads the film extension row for a single product.
func (r *ProductRepo) FilmByProductID(ctx context.Context, productID int64) (*models.Film, error) {
	var f models.Film
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *ProductRepo) BookByProductID(ctx context.Context, productID int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ProductRepo) MusicByProductID(ctx context.Context, productID int64) (*models.Music, error) {
	var m models.Music
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FilmsByProductIDs batch-loads film extensions for a by-type listing,
// avoiding one query per product.
func (r *ProductRepo) FilmsByProductIDs(ctx context.Context, ids []int64) ([]models.Film, error) {
	var list []models.Film
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) BooksByProductIDs(ctx context.Context, ids []int64) ([]models.Book, error) {
	var list []models.Book
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) MusicsByProductIDs(ctx context.Context, ids []int64) ([]models.Music, error) {
	var list []models.Music
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list musics: %w", err)
	}
	return list, nil
}
