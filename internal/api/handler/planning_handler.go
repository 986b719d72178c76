package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// PlanningHandler serves the schedule grid and its exports.
type PlanningHandler struct {
	svc    *service.PlanningService
	export *service.ExportService
}

// NewPlanningHandler creates the PlanningHandler.
func NewPlanningHandler(svc *service.PlanningService, export *service.ExportService) *PlanningHandler {
	return &PlanningHandler{svc: svc, export: export}
}

// Grid GET /api/planning
func (h *PlanningHandler) Grid(c *gin.Context) {
	var req dto.PlanningRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	grid, err := h.svc.Grid(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Erreur lors de la génération du planning")
		return
	}
	response.OK(c, grid)
}

// Export GET /api/planning/export
func (h *PlanningHandler) Export(c *gin.Context) {
	var req dto.PlanningRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	f, err := h.export.WeekExcel(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Erreur lors de l'export du planning")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("planning-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if _, err := f.WriteTo(c.Writer); err != nil {
		// Headers are already out, nothing useful left to send.
		_ = c.Error(err)
	}
}

// Calendar GET /api/planning/calendar.ics
func (h *PlanningHandler) Calendar(c *gin.Context) {
	var req dto.PlanningRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	feed, err := h.export.Calendar(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Erreur lors de la génération du calendrier")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="planning.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
