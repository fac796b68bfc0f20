package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// ReportHandler serves profit, daily closing, and stock reports.
type ReportHandler struct {
	profit    ports.ProfitService
	sales     ports.SalesService
	inventory ports.InventoryReportService
}

func NewReportHandler(profit ports.ProfitService, sales ports.SalesService, inventory ports.InventoryReportService) *ReportHandler {
	return &ReportHandler{profit: profit, sales: sales, inventory: inventory}
}

// ProfitSummary handles GET /v1/reports/profit.
//
// @Summary      Profit summary (today, this month, all time)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profitSummaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports/profit [get]
func (h *ReportHandler) ProfitSummary(c echo.Context) error {
	summary, err := h.profit.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfitSummaryResponse(summary))
}

// ProfitDetails handles GET /v1/reports/profit/details.
//
// @Summary      Per-sale profit breakdown
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   saleProfitDetailResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/reports/profit/details [get]
func (h *ReportHandler) ProfitDetails(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	details, err := h.profit.Details(c.Request().Context(), ports.ListSalesFilter{Skip: skip, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfitDetailsResponse(details))
}

// DailyClosing handles GET /v1/reports/daily-closing.
//
// @Summary      End-of-day till reconciliation
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Day to close (yyyy-mm-dd, default today)"
// @Success      200   {object}  dailyClosingResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/reports/daily-closing [get]
func (h *ReportHandler) DailyClosing(c echo.Context) error {
	var day time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be yyyy-mm-dd")
		}
		day = parsed
	}

	report, err := h.profit.DailyClosing(c.Request().Context(), day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDailyClosingResponse(report))
}

// SalesReport handles GET /v1/reports/sales.
//
// @Summary      Sales between two dates, inclusive
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  true  "Start date (yyyy-mm-dd)"
// @Param        to    query     string  true  "End date (yyyy-mm-dd)"
// @Success      200   {array}   domain.Sale
// @Failure      400   {object}  errorResponse
// @Router       /v1/reports/sales [get]
func (h *ReportHandler) SalesReport(c echo.Context) error {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be yyyy-mm-dd")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must be yyyy-mm-dd")
	}
	if to.Before(from) {
		return echo.NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}

	sales, err := h.sales.Report(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// InventoryReport handles GET /v1/reports/inventory: the full stock list.
//
// @Summary      Full inventory report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Tire
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports/inventory [get]
func (h *ReportHandler) InventoryReport(c echo.Context) error {
	tires, err := h.inventory.InventoryReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tires)
}
