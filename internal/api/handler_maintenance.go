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

type createMaintenanceRequest struct {
	VehicleID   uint      `json:"vehicleId" binding:"required"`
	EmployeeID  *uint     `json:"employeeId"`
	Type        string    `json:"type" binding:"required"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	StartDate   time.Time `json:"startDate"`
}

type finishMaintenanceRequest struct {
	OdometerKm *int `json:"odometerKm"`
}

func (h *Handler) ListMaintenance(c *gin.Context) {
	var f store.MaintenanceFilter
	if raw := c.Query("vehicle"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
			return
		}
		f.VehicleID = uint(id)
	}
	if raw := c.Query("status"); raw != "" {
		status, err := parse.MaintenanceStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = &status
	}

	jobs, err := h.store.ListMaintenance(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) GetMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.store.GetMaintenance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req createMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := parse.MaintenanceType(req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	m := model.Maintenance{
		VehicleID:   req.VehicleID,
		EmployeeID:  req.EmployeeID,
		Type:        t,
		Description: req.Description,
		Cost:        req.Cost,
		StartDate:   req.StartDate,
	}
	if err := h.store.CreateMaintenance(c.Request.Context(), &m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// FinishMaintenance closes a job and puts the vehicle back in service. An
// optional odometer reading covers shops that correct the meter.
func (h *Handler) FinishMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req finishMaintenanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	m, err := h.store.FinishMaintenance(c.Request.Context(), id, req.OdometerKm)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMaintenance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteMaintenance(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
