package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
	"vehicle-rental-backend/internal/parse"
)

type clientRequest struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (h *Handler) ListClients(c *gin.Context) {
	var status *domain.ClientStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := parse.ClientStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		status = &parsed
	}

	clients, err := h.store.ListClients(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	client, err := h.store.GetClient(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := model.Client{
		Name:       req.Name,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := h.store.CreateClient(c.Request.Context(), &client); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := model.Client{
		ID:         id,
		Name:       req.Name,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := h.store.UpdateClient(c.Request.Context(), &client); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

type clientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateClientStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req clientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := parse.ClientStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	client, err := h.store.UpdateClientStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
