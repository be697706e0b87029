package handlers

import (
	"net/http"

	"styledecor/models"
	"styledecor/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes user account and role endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// SearchUsers handles GET /users?searchUser=... (auth), capped newest-first.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.Service.Search(c.Request.Context(), c.Query("searchUser"))
	if err != nil {
		getLogger(c).Error("Failed to search users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRole handles GET /users/:email/role, defaulting to "user".
func (h *UserHandler) GetUserRole(c *gin.Context) {
	role, err := h.Service.RoleOf(c.Request.Context(), c.Param("email"))
	if err != nil {
		getLogger(c).Error("Failed to look up role", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// RegisterUser handles POST /users; creating an existing email is a no-op.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &u)
	if err != nil {
		getLogger(c).Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user exist"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// roleRequest is the admin role-change body.
type roleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole handles PATCH /users/:id/role (auth + admin).
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ChangeRole(c.Request.Context(), c.Param("id"), models.Role(req.Role)); err != nil {
		getLogger(c).Error("Failed to change role", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
