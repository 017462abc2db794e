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

type createRentalRequest struct {
	ClientID   uint      `json:"clientId" binding:"required"`
	VehicleID  uint      `json:"vehicleId" binding:"required"`
	EmployeeID uint      `json:"employeeId" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
}

type updateRentalRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type finishRentalRequest struct {
	EndKm float64 `json:"endKm" binding:"required"`
}

func (h *Handler) ListRentals(c *gin.Context) {
	var f store.RentalFilter
	if raw := c.Query("status"); raw != "" {
		status, err := parse.RentalStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = &status
	}
	if raw := c.Query("client"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
			return
		}
		f.ClientID = uint(id)
	}
	if raw := c.Query("vehicle"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
			return
		}
		f.VehicleID = uint(id)
	}

	rentals, err := h.store.ListRentals(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

func (h *Handler) GetRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.store.GetRental(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) CreateRental(c *gin.Context) {
	var req createRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := model.Rental{
		ClientID:   req.ClientID,
		VehicleID:  req.VehicleID,
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := h.store.CreateRental(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) UpdateRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := model.Rental{ID: id, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := h.store.UpdateRental(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ReserveRental confirms a freshly created booking.
func (h *Handler) ReserveRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.store.ReserveRental(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// StartRental hands the vehicle over to the client.
func (h *Handler) StartRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.store.StartRental(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// FinishRental closes the rental with the returned odometer reading and
// returns both the rental and the invoice issued for it.
func (h *Handler) FinishRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req finishRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, invoice, err := h.store.FinishRental(c.Request.Context(), id, req.EndKm)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rental": r, "invoice": invoice})
}

func (h *Handler) CancelRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.store.CancelRental(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteRental(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
