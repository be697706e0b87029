package handlers

import (
	"net/http"

	"styledecor/models"
	"styledecor/services/decorator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DecoratorHandler exposes decorator registration, approval and
// availability endpoints.
type DecoratorHandler struct {
	Service decorator.DecoratorService
}

// NewDecoratorHandler creates a DecoratorHandler.
func NewDecoratorHandler(svc decorator.DecoratorService) *DecoratorHandler {
	return &DecoratorHandler{Service: svc}
}

// ListDecorators handles GET /decorators with status and district filters.
func (h *DecoratorHandler) ListDecorators(c *gin.Context) {
	status := models.ApprovalStatus(c.Query("status"))
	district := c.Query("district")

	decorators, err := h.Service.List(c.Request.Context(), status, district)
	if err != nil {
		getLogger(c).Error("Failed to list decorators", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, decorators)
}

// AvailableDecorators handles GET /available-decorators?date=...&district=...
func (h *DecoratorHandler) AvailableDecorators(c *gin.Context) {
	decorators, err := h.Service.AvailableOn(c.Request.Context(), c.Query("date"), c.Query("district"))
	if err != nil {
		getLogger(c).Error("Failed to list available decorators", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, decorators)
}

// RegisterDecorator handles POST /decorators; new decorators start pending
// approval.
func (h *DecoratorHandler) RegisterDecorator(c *gin.Context) {
	var d models.Decorator
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &d)
	if err != nil {
		getLogger(c).Error("Failed to register decorator", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// decisionRequest is the admin approval body.
type decisionRequest struct {
	Status string `json:"status"`
}

// DecideDecorator handles PATCH /decorators/:id (auth + admin). Approval
// promotes the owning user to the decorator role.
func (h *DecoratorHandler) DecideDecorator(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	err := h.Service.Decide(c.Request.Context(), c.Param("id"), models.ApprovalStatus(req.Status))
	if err != nil {
		getLogger(c).Error("Failed to record approval decision", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDecorator handles DELETE /decorators/:id.
func (h *DecoratorHandler) DeleteDecorator(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("Failed to delete decorator", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
