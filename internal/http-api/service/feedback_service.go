package service

import (
	"context"
	"fmt"
	"time"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/models"
	"mediahub/internal/http-api/repository"
)

// Analyzer produces a 1-5 sentiment score for a piece of feedback text.
// Satisfied by sentiment.Client; swapped for a stub in tests.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (int, error)
}

type FeedbackService interface {
	GetAll(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, in dto.CreateFeedbackDTO) (*models.Feedback, error)
}

type feedbackService struct {
	repo     *repository.FeedbackRepo
	analyzer Analyzer
}

func NewFeedbackService(r *repository.FeedbackRepo, a Analyzer) FeedbackService {
	return &feedbackService{repo: r, analyzer: a}
}

func (s *feedbackService) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.GetAll(ctx)
}

// Create enriches the submission with a sentiment score before
// persistence. Enrichment is mandatory: if the analyzer fails, no
// feedback row is written. ResponseTime records the analyzer call's
// wall-clock latency in milliseconds, not the whole request.
func (s *feedbackService) Create(ctx context.Context, in dto.CreateFeedbackDTO) (*models.Feedback, error) {
	start := time.Now()
	score, err := s.analyzer.Analyze(ctx, in.FeedbackText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}
	elapsed := time.Since(start).Milliseconds()

	f := models.Feedback{
		UserID:        in.UserID,
		ProductID:     in.ProductID,
		FeedbackText:  in.FeedbackText,
		FeedbackScore: score,
		ResponseTime:  elapsed,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
