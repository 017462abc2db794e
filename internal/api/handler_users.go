package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/auth"
	"vehicle-rental-backend/internal/model"
)

type createUserRequest struct {
	Username   string `json:"username" binding:"required,min=3"`
	Password   string `json:"password" binding:"required,min=8"`
	EmployeeID *uint  `json:"employeeId"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	u := model.User{
		Username:     req.Username,
		PasswordHash: hash,
		EmployeeID:   req.EmployeeID,
	}
	if err := h.store.CreateUser(c.Request.Context(), &u); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type updatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserPassword resets a user's password. Usernames are immutable, so
// there is no general user update.
func (h *Handler) UpdateUserPassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.UpdateUserPassword(c.Request.Context(), id, hash); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
