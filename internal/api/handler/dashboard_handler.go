package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the admin-panel overview aggregation.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}

// @Summary      Published projects per category
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/dashboard/projects-by-category [get]
func (h *DashboardHandler) ProjectsByCategory(c echo.Context) error {
	counts, err := h.dashboardService.ProjectsByCategory(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, counts)
}

// @Summary      Inquiries per status
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/dashboard/inquiries-by-status [get]
func (h *DashboardHandler) InquiriesByStatus(c echo.Context) error {
	counts, err := h.dashboardService.InquiriesByStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, counts)
}
