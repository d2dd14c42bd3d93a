package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/httpresp"
	ucbooking "github.com/BruksfildServices01/studio-rental/internal/usecase/booking"
)

type DashboardHandler struct {
	dashboard *ucbooking.Dashboard
}

func NewDashboardHandler(d *ucbooking.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: d}
}

// Show escolhe a visão pelo papel do usuário.
func (h *DashboardHandler) Show(c *gin.Context) {
	actor := actorFrom(c)

	if actor.IsAdmin {
		stats, err := h.dashboard.Admin(c.Request.Context(), actor)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		httpresp.OK(c, gin.H{"role": "admin", "stats": stats})
		return
	}

	view, err := h.dashboard.Customer(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"role": "customer", "dashboard": view})
}
