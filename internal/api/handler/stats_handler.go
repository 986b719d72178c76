package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	svc *service.StatsService
}

// NewStatsHandler creates the StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Dashboard GET /api/stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors du calcul des statistiques")
		return
	}
	response.OK(c, stats)
}
