package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/parse"
	"vehicle-rental-backend/internal/store"
)

func (h *Handler) ListInvoices(c *gin.Context) {
	var f store.InvoiceFilter
	if raw := c.Query("status"); raw != "" {
		status, err := parse.InvoiceStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = &status
	}
	f.PaymentMethod = c.Query("method")

	invoices, err := h.store.ListInvoices(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.store.GetInvoice(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

type payInvoiceRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// PayInvoice settles a pending invoice and records the payment method.
func (h *Handler) PayInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req payInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inv, err := h.store.MarkInvoicePaid(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// VoidInvoice writes off a pending invoice. Paid invoices cannot be voided.
func (h *Handler) VoidInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.store.VoidInvoice(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
