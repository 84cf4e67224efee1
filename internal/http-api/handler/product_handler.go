package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/id/:id", h.GetByID)
	rg.GET("/type/:type", h.GetByType)
	rg.POST("", h.Create)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in dto.CreateProductDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	p, err := h.svc.Create(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		default:
			// invalid type and persistence failures are both creation errors
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error while adding a product: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	p, err := h.svc.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while retrieving the product: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) GetByType(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetByType(ctx, c.Param("type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProductType):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while retrieving the products: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}
