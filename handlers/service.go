package handlers

import (
	"net/http"

	"styledecor/models"
	"styledecor/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service catalog endpoints.
type ServiceHandler struct {
	Service catalog.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Service: svc}
}

// ListServices handles GET /services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Service.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// HomeServices handles GET /services/home, the top-by-cost highlight strip.
func (h *ServiceHandler) HomeServices(c *gin.Context) {
	services, err := h.Service.Home(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list home services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to fetch service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &svc)
	if err != nil {
		getLogger(c).Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
