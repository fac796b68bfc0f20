package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// SalesHandler handles HTTP requests for billing operations.
type SalesHandler struct {
	service ports.SalesService
}

func NewSalesHandler(service ports.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

// Create handles POST /v1/sales.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent double billing"
// @Param        body             body      createSaleRequest  true   "Sale details"
// @Success      201              {object}  domain.Sale
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/sales [post]
func (h *SalesHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	sale, err := h.service.CreateSale(c.Request().Context(), toCreateSaleInput(req, idempotencyKey))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sale)
}

// Get handles GET /v1/sales/:id.
//
// @Summary      Get a sale by id
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  domain.Sale
// @Failure      404  {object}  errorResponse
// @Router       /v1/sales/{id} [get]
func (h *SalesHandler) Get(c echo.Context) error {
	sale, err := h.service.GetSale(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// List handles GET /v1/sales, sales history newest first.
//
// @Summary      List sales history
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   domain.Sale
// @Failure      401    {object}  errorResponse
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	sales, err := h.service.History(c.Request().Context(), ports.ListSalesFilter{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}
