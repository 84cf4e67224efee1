package service

import (
	"context"
	"sync"

	"mediahub/internal/http-api/dto"
)

// BulkService applies fixed-size chunking to unbounded creation
// sequences: chunks run strictly one after another, items inside a chunk
// run concurrently, and every item settles (success or failure) before
// the next chunk starts. Chunking bounds peak concurrent load on the
// database and the sentiment backend.
type BulkService interface {
	CreateProductsInBulk(ctx context.Context, items []dto.CreateProductDTO) (*dto.BulkResponse, error)
	CreateFeedbacksInBulk(ctx context.Context, items []dto.CreateFeedbackDTO) (*dto.BulkResponse, error)
}

type bulkService struct {
	products          ProductService
	feedbacks         FeedbackService
	productChunkSize  int
	feedbackChunkSize int
}

func NewBulkService(products ProductService, feedbacks FeedbackService, productChunkSize, feedbackChunkSize int) BulkService {
	return &bulkService{
		products:          products,
		feedbacks:         feedbacks,
		productChunkSize:  productChunkSize,
		feedbackChunkSize: feedbackChunkSize,
	}
}

func (s *bulkService) CreateProductsInBulk(ctx context.Context, items []dto.CreateProductDTO) (*dto.BulkResponse, error) {
	if len(items) == 0 {
		return nil, ErrInvalidBulkInput
	}
	return settleChunks(ctx, items, s.productChunkSize, func(ctx context.Context, item dto.CreateProductDTO) error {
		_, err := s.products.Create(ctx, item)
		return err
	}), nil
}

// CreateFeedbacksInBulk runs each item through sentiment enrichment
// before persistence; an enrichment failure counts as that item's
// failure only, never the chunk's.
func (s *bulkService) CreateFeedbacksInBulk(ctx context.Context, items []dto.CreateFeedbackDTO) (*dto.BulkResponse, error) {
	if len(items) == 0 {
		return nil, ErrInvalidBulkInput
	}
	return settleChunks(ctx, items, s.feedbackChunkSize, func(ctx context.Context, item dto.CreateFeedbackDTO) error {
		_, err := s.feedbacks.Create(ctx, item)
		return err
	}), nil
}

// settleChunks partitions items into contiguous chunks of chunkSize and
// resolves them in order. All-settle semantics: one item's failure never
// cancels or blocks its chunk siblings, and per-item errors end up in
// the aggregate instead of propagating.
func settleChunks[T any](ctx context.Context, items []T, chunkSize int, create func(ctx context.Context, item T) error) *dto.BulkResponse {
	resp := &dto.BulkResponse{Errors: []string{}}

	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))
		chunk := items[start:end]

		// settle every item of this chunk before touching the next one
		results := make([]error, len(chunk))
		var wg sync.WaitGroup
		for i, item := range chunk {
			wg.Add(1)
			go func(i int, item T) {
				defer wg.Done()
				results[i] = create(ctx, item)
			}(i, item)
		}
		wg.Wait()

		for _, err := range results {
			if err != nil {
				resp.FailureCount++
				resp.Errors = append(resp.Errors, err.Error())
			} else {
				resp.SuccessCount++
			}
		}
	}

	return resp
}
