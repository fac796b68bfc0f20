package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// PurchaseHandler handles HTTP requests for supplier restock operations.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Create handles POST /v1/purchases.
//
// @Summary      Record a supplier purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPurchaseRequest  true  "Purchase details"
// @Success      201   {object}  domain.Purchase
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/purchases [post]
func (h *PurchaseHandler) Create(c echo.Context) error {
	var req createPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.PurchaseItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.PurchaseItemInput{
			TireID:        it.TireID,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
		})
	}

	purchase, err := h.service.CreatePurchase(c.Request().Context(), ports.CreatePurchaseInput{
		SupplierName:  req.SupplierName,
		PurchaseDate:  req.PurchaseDate,
		PaymentStatus: req.PaymentStatus,
		Items:         items,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, purchase)
}

// Get handles GET /v1/purchases/:id.
//
// @Summary      Get a purchase by id
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Purchase id"
// @Success      200  {object}  domain.Purchase
// @Failure      404  {object}  errorResponse
// @Router       /v1/purchases/{id} [get]
func (h *PurchaseHandler) Get(c echo.Context) error {
	purchase, err := h.service.GetPurchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}

// List handles GET /v1/purchases, newest first.
//
// @Summary      List supplier purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   domain.Purchase
// @Failure      401    {object}  errorResponse
// @Router       /v1/purchases [get]
func (h *PurchaseHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	purchases, err := h.service.List(c.Request().Context(), ports.ListPurchasesFilter{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

// Update handles PUT /v1/purchases/:id.
//
// @Summary      Update a purchase header
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Purchase id"
// @Param        body  body      updatePurchaseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Purchase
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/purchases/{id} [put]
func (h *PurchaseHandler) Update(c echo.Context) error {
	var req updatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PurchaseUpdate{
		SupplierName:  req.SupplierName,
		PurchaseDate:  req.PurchaseDate,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}

// Delete handles DELETE /v1/purchases/:id. Admin only.
//
// @Summary      Delete a purchase record
// @Tags         purchases
// @Security     BearerAuth
// @Param        id  path  string  true  "Purchase id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
