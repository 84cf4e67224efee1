package service

import (
	"context"
	"math"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/repository"
)

type StatisticService interface {
	ProductStatistics(ctx context.Context, productID int64) (*dto.StatisticResponse, error)
}

type statisticService struct {
	feedbacks *repository.FeedbackRepo
}

func NewStatisticService(f *repository.FeedbackRepo) StatisticService {
	return &statisticService{feedbacks: f}
}

// ProductStatistics computes the exact average feedback score for a
// product and selects the most significant feedback text: the one whose
// score deviates furthest from that average (earliest wins on ties).
// A product without feedback yields ErrNoFeedback, never an average of 0.
func (s *statisticService) ProductStatistics(ctx context.Context, productID int64) (*dto.StatisticResponse, error) {
	list, err := s.feedbacks.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoFeedback
	}

	total := 0
	for _, f := range list {
		total += f.FeedbackScore
	}
	average := float64(total) / float64(len(list))

	summary := list[0].FeedbackText
	maxDeviation := math.Abs(float64(list[0].FeedbackScore) - average)
	for _, f := range list[1:] {
		if d := math.Abs(float64(f.FeedbackScore) - average); d > maxDeviation {
			maxDeviation = d
			summary = f.FeedbackText
		}
	}

	return &dto.StatisticResponse{
		AverageScore:       average,
		SignificantSummary: summary,
	}, nil
}
