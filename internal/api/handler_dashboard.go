package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the landing page snapshot: KPI counters, the
// current-year revenue series, the vehicle leaderboard and the latest
// invoices. The route sits behind the response cache, so bursts of
// dashboard reloads hit the database once per TTL.
func (h *Handler) GetDashboard(c *gin.Context) {
	d, err := h.store.Dashboard(c.Request.Context(), h.loc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
