package service

import (
	"context"
	"testing"

	"mediahub/internal/http-api/models"
	"mediahub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFeedback(t *testing.T, db *gorm.DB, productID int64, entries ...models.Feedback) {
	t.Helper()
	for i := range entries {
		entries[i].ProductID = &productID
		if entries[i].UserID == "" {
			entries[i].UserID = "u-1"
		}
		require.NoError(t, db.Create(&entries[i]).Error)
	}
}

func TestStatisticService_ProductStatistics(t *testing.T) {
	t.Run("ExactAverage", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		seedFeedback(t, db, 7,
			models.Feedback{FeedbackText: "ok", FeedbackScore: 3},
			models.Feedback{FeedbackText: "good", FeedbackScore: 4},
			models.Feedback{FeedbackText: "great", FeedbackScore: 5},
		)

		stats, err := svc.ProductStatistics(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 4.0, stats.AverageScore)
	})

	t.Run("NonIntegerAverage", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		seedFeedback(t, db, 7,
			models.Feedback{FeedbackText: "meh", FeedbackScore: 2},
			models.Feedback{FeedbackText: "great", FeedbackScore: 5},
		)

		stats, err := svc.ProductStatistics(context.Background(), 7)
		require.NoError(t, err)
		assert.InDelta(t, 3.5, stats.AverageScore, 1e-9)
	})

	t.Run("SummaryIsMostDeviantFeedback", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		// average 3.75; the score-1 entry deviates furthest
		seedFeedback(t, db, 7,
			models.Feedback{FeedbackText: "fine", FeedbackScore: 4},
			models.Feedback{FeedbackText: "terrible, broke on arrival", FeedbackScore: 1},
			models.Feedback{FeedbackText: "good", FeedbackScore: 5},
			models.Feedback{FeedbackText: "decent", FeedbackScore: 5},
		)

		stats, err := svc.ProductStatistics(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "terrible, broke on arrival", stats.SignificantSummary)
	})

	t.Run("TieKeepsEarliestFeedback", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		// both deviate by 1 from the average of 3
		seedFeedback(t, db, 7,
			models.Feedback{FeedbackText: "low", FeedbackScore: 2},
			models.Feedback{FeedbackText: "high", FeedbackScore: 4},
		)

		stats, err := svc.ProductStatistics(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "low", stats.SignificantSummary)
	})

	t.Run("NoFeedback", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		_, err := svc.ProductStatistics(context.Background(), 999)
		assert.ErrorIs(t, err, ErrNoFeedback)
	})

	t.Run("OtherProductsExcluded", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewStatisticService(repository.NewFeedbackRepo(db))

		seedFeedback(t, db, 7, models.Feedback{FeedbackText: "mine", FeedbackScore: 5})
		seedFeedback(t, db, 8, models.Feedback{FeedbackText: "theirs", FeedbackScore: 1})

		stats, err := svc.ProductStatistics(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 5.0, stats.AverageScore)
		assert.Equal(t, "mine", stats.SignificantSummary)
	})
}
