package handler

import (
	"errors"
	"net/http"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// UtilsHandler exposes the bulk ingestion endpoints. Partial failure is
// communicated through the aggregate body, not the status code: the
// batch responds 201 even when some items failed.
type UtilsHandler struct {
	svc service.BulkService
}

func NewUtilsHandler(svc service.BulkService) *UtilsHandler {
	return &UtilsHandler{svc: svc}
}

func (h *UtilsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-products-in-bulk", h.CreateProductsInBulk)
	rg.POST("/create-feedbacks-in-bulk", h.CreateFeedbacksInBulk)
}

func (h *UtilsHandler) CreateProductsInBulk(c *gin.Context) {
	var req dto.BulkProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Products array is required and should not be empty."})
		return
	}

	// bulk runs are long-lived; the request context is the only deadline
	resp, err := h.svc.CreateProductsInBulk(c.Request.Context(), req.Products)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBulkInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Products array is required and should not be empty."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UtilsHandler) CreateFeedbacksInBulk(c *gin.Context) {
	var req dto.BulkFeedbacksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Feedbacks array is required and should not be empty."})
		return
	}

	resp, err := h.svc.CreateFeedbacksInBulk(c.Request.Context(), req.Feedbacks)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBulkInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Feedbacks array is required and should not be empty."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
