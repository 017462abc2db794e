package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/model"
	"vehicle-rental-backend/internal/parse"
	"vehicle-rental-backend/internal/store"
)

type incidentRequest struct {
	RentalID    uint      `json:"rentalId" binding:"required"`
	EmployeeID  uint      `json:"employeeId"`
	Type        string    `json:"type" binding:"required"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
}

func (h *Handler) ListIncidents(c *gin.Context) {
	var f store.IncidentFilter
	if raw := c.Query("rental"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rental id"})
			return
		}
		f.RentalID = uint(id)
	}
	if raw := c.Query("type"); raw != "" {
		t, err := parse.IncidentType(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Type = &t
	}

	incidents, err := h.store.ListIncidents(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) GetIncident(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	i, err := h.store.GetIncident(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *Handler) CreateIncident(c *gin.Context) {
	var req incidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := parse.IncidentType(req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	i := model.Incident{
		RentalID:    req.RentalID,
		EmployeeID:  req.EmployeeID,
		Type:        t,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
	}
	if err := h.store.CreateIncident(c.Request.Context(), &i); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

func (h *Handler) UpdateIncident(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req incidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := parse.IncidentType(req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	i := model.Incident{
		ID:          id,
		RentalID:    req.RentalID,
		EmployeeID:  req.EmployeeID,
		Type:        t,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
	}
	if err := h.store.UpdateIncident(c.Request.Context(), &i); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *Handler) DeleteIncident(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteIncident(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
