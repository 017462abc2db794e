package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/config"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	cfg   *config.Config
	loc   *time.Location
}

// NewHandler creates a new API handler. loc is the business timezone used
// for calendar bucketing in reports and the dashboard.
func NewHandler(s store.Store, cfg *config.Config, loc *time.Location) *Handler {
	return &Handler{store: s, cfg: cfg, loc: loc}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeError maps domain error kinds onto HTTP statuses: validation and
// mileage errors are 400, missing records 404, lifecycle and uniqueness
// conflicts 409, anything unrecognized 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidMileage):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidInvoiceState),
		errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
