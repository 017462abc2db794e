package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/model"
)

type employeeRequest struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.store.ListEmployees(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	e, err := h.store.GetEmployee(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e := model.Employee{
		Name:       req.Name,
		NationalID: req.NationalID,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := h.store.CreateEmployee(c.Request.Context(), &e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e := model.Employee{
		ID:         id,
		Name:       req.Name,
		NationalID: req.NationalID,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := h.store.UpdateEmployee(c.Request.Context(), &e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteEmployee(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
