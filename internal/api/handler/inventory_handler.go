package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// InventoryHandler handles HTTP requests for tire stock operations.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Create handles POST /v1/tires.
//
// @Summary      Add a tire to inventory
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTireRequest  true  "Tire details"
// @Success      201   {object}  domain.Tire
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/tires [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createTireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tire, err := h.service.Create(c.Request().Context(), ports.TireInput{
		Brand:         req.Brand,
		TireSize:      req.TireSize,
		TireType:      req.TireType,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		SupplierName:  req.SupplierName,
		PurchaseDate:  req.PurchaseDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tire)
}

// Get handles GET /v1/tires/:id.
//
// @Summary      Get a tire by id
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tire id"
// @Success      200  {object}  domain.Tire
// @Failure      404  {object}  errorResponse
// @Router       /v1/tires/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	tire, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tire)
}

// List handles GET /v1/tires.
//
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Partial match on brand or size"
// @Param        skip    query     int     false  "Offset"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {array}   domain.Tire
// @Failure      401     {object}  errorResponse
// @Router       /v1/tires [get]
func (h *InventoryHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	tires, err := h.service.List(c.Request().Context(), ports.ListTiresFilter{
		Search: c.QueryParam("search"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tires)
}

// Update handles PUT /v1/tires/:id.
//
// @Summary      Update a tire
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Tire id"
// @Param        body  body      updateTireRequest  true  "Fields to change"
// @Success      200   {object}  domain.Tire
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tires/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var req updateTireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tire, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.TireUpdate{
		Brand:         req.Brand,
		TireSize:      req.TireSize,
		TireType:      req.TireType,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		SupplierName:  req.SupplierName,
		PurchaseDate:  req.PurchaseDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tire)
}

// Delete handles DELETE /v1/tires/:id. Admin only.
//
// @Summary      Remove a tire from inventory
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "Tire id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tires/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
