package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/model"
	"vehicle-rental-backend/internal/parse"
	"vehicle-rental-backend/internal/store"
)

type vehicleRequest struct {
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Plate        string  `json:"plate" binding:"required"`
	Year         int     `json:"year"`
	DailyRate    float64 `json:"dailyRate" binding:"required,gt=0"`
	OdometerKm   int     `json:"odometerKm" binding:"gte=0"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission"`
	Fuel         string  `json:"fuel"`
	Thumbnail    string  `json:"thumbnail"`
}

// ListVehicles returns the fleet, optionally narrowed by status, brand,
// model, year or fuel query parameters.
func (h *Handler) ListVehicles(c *gin.Context) {
	var f store.VehicleFilter
	if raw := c.Query("status"); raw != "" {
		status, err := parse.VehicleStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = &status
	}
	f.Brand = c.Query("brand")
	f.Model = c.Query("model")
	f.Fuel = c.Query("fuel")
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		f.Year = year
	}

	vehicles, err := h.store.ListVehicles(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := h.store.GetVehicle(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := model.Vehicle{
		Brand:        req.Brand,
		Model:        req.Model,
		Plate:        req.Plate,
		Year:         req.Year,
		DailyRate:    req.DailyRate,
		OdometerKm:   req.OdometerKm,
		Seats:        req.Seats,
		Transmission: req.Transmission,
		Fuel:         req.Fuel,
		Thumbnail:    req.Thumbnail,
	}
	if err := h.store.CreateVehicle(c.Request.Context(), &v); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := model.Vehicle{
		ID:           id,
		Brand:        req.Brand,
		Model:        req.Model,
		Plate:        req.Plate,
		Year:         req.Year,
		DailyRate:    req.DailyRate,
		OdometerKm:   req.OdometerKm,
		Seats:        req.Seats,
		Transmission: req.Transmission,
		Fuel:         req.Fuel,
		Thumbnail:    req.Thumbnail,
	}
	if err := h.store.UpdateVehicle(c.Request.Context(), &v); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type vehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateVehicleStatus flips a vehicle between available and unavailable.
// Decommissioning goes through DELETE, and the in-maintenance status is
// owned by the maintenance lifecycle.
func (h *Handler) UpdateVehicleStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req vehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := parse.VehicleStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	v, err := h.store.UpdateVehicleStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DecommissionVehicle retires a vehicle. The record is kept so rental and
// invoice history stays intact.
func (h *Handler) DecommissionVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := h.store.DecommissionVehicle(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
