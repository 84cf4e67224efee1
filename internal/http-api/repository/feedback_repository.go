package repository

import (
	"context"
	"fmt"

	"mediahub/internal/http-api/models"

	"gorm.io/gorm"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	var list []models.Feedback
	if err := r.db.WithContext(ctx).Order("feedback_time desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	return list, nil
}

func (r *FeedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create feedback: %w", translate(err))
	}
	return nil
}

// ListByProduct returns all feedback rows for one product, oldest first.
func (r *FeedbackRepo) ListByProduct(ctx context.Context, productID int64) ([]models.Feedback, error) {
	var list []models.Feedback
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("feedback_time, id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list feedbacks by product: %w", err)
	}
	return list, nil
}
