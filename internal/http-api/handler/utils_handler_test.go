package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/handler"
	"mediahub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockBulkService struct {
	mock.Mock
}

func (m *MockBulkService) CreateProductsInBulk(ctx context.Context, items []dto.CreateProductDTO) (*dto.BulkResponse, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkResponse), args.Error(1)
}

func (m *MockBulkService) CreateFeedbacksInBulk(ctx context.Context, items []dto.CreateFeedbackDTO) (*dto.BulkResponse, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkResponse), args.Error(1)
}

func setupUtilsRouter(mockService *MockBulkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewUtilsHandler(mockService)
	h.RegisterRoutes(r.Group("/utils"))
	return r
}

// --- TESTS ---

func TestUtilsHandler_CreateProductsInBulk(t *testing.T) {
	t.Run("PartialFailure", func(t *testing.T) {
		mockService := new(MockBulkService)
		r := setupUtilsRouter(mockService)

		aggregate := &dto.BulkResponse{
			SuccessCount: 8,
			FailureCount: 2,
			Errors: []string{
				"create product: unique constraint failed on one of the fields",
				"product type not valid: \"GAME\"",
			},
		}
		mockService.On("CreateProductsInBulk", mock.Anything, mock.Anything).Return(aggregate, nil).Once()

		body, _ := json.Marshal(gin.H{"products": []gin.H{{"title": "a"}, {"title": "b"}}})
		req, _ := http.NewRequest(http.MethodPost, "/utils/create-products-in-bulk", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// partial failure still responds 201; the body carries the aggregate
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.BulkResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 8, resp.SuccessCount)
		assert.Equal(t, 2, resp.FailureCount)
		assert.Len(t, resp.Errors, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		mockService := new(MockBulkService)
		r := setupUtilsRouter(mockService)

		mockService.On("CreateProductsInBulk", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidBulkInput).Once()

		body, _ := json.Marshal(gin.H{"products": []gin.H{}})
		req, _ := http.NewRequest(http.MethodPost, "/utils/create-products-in-bulk", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Products array is required")
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockService := new(MockBulkService)
		r := setupUtilsRouter(mockService)

		req, _ := http.NewRequest(http.MethodPost, "/utils/create-products-in-bulk", bytes.NewReader([]byte(`{"products": "nope"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateProductsInBulk")
	})
}

func TestUtilsHandler_CreateFeedbacksInBulk(t *testing.T) {
	t.Run("AllSucceed", func(t *testing.T) {
		mockService := new(MockBulkService)
		r := setupUtilsRouter(mockService)

		aggregate := &dto.BulkResponse{SuccessCount: 3, FailureCount: 0, Errors: []string{}}
		mockService.On("CreateFeedbacksInBulk", mock.Anything, mock.Anything).Return(aggregate, nil).Once()

		body, _ := json.Marshal(gin.H{"feedbacks": []gin.H{
			{"feedback_text": "great", "user_id": "u-1"},
			{"feedback_text": "fine", "user_id": "u-2"},
			{"feedback_text": "meh", "user_id": "u-3"},
		}})
		req, _ := http.NewRequest(http.MethodPost, "/utils/create-feedbacks-in-bulk", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.BulkResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.SuccessCount)
		assert.Empty(t, resp.Errors)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingArray", func(t *testing.T) {
		mockService := new(MockBulkService)
		r := setupUtilsRouter(mockService)

		mockService.On("CreateFeedbacksInBulk", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidBulkInput).Once()

		req, _ := http.NewRequest(http.MethodPost, "/utils/create-feedbacks-in-bulk", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})
}
