package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mediahub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatisticHandler struct {
	svc service.StatisticService
}

func NewStatisticHandler(svc service.StatisticService) *StatisticHandler {
	return &StatisticHandler{svc: svc}
}

func (h *StatisticHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.Get)
}

func (h *StatisticHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.svc.ProductStatistics(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFeedback):
			c.JSON(http.StatusNotFound, gin.H{"message": "Statistics not found for the specified product."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while retrieving product statistics: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}
