package handler

import (
	"context"
	"net/http"
	"time"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc service.FeedbackService
}

func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetAll)
	rg.POST("", h.Create)
}

func (h *FeedbackHandler) GetAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while retrieving all the feedbacks: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create blocks on the sentiment enrichment call, so its timeout is
// sized for the analyzer's transport budget, not the usual 5 seconds.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var in dto.CreateFeedbackDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	f, err := h.svc.Create(ctx, in)
	if err != nil {
		// enrichment and persistence failures are both creation errors
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error while adding a feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, f)
}
