package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// DashboardHandler serves the shop dashboard payload.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/dashboard.
//
// @Summary      Dashboard headline figures, low stock, and 7-day revenue chart
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	data, err := h.service.Data(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(data))
}
