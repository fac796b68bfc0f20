package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// InvoiceHandler serves invoice PDFs and queues WhatsApp delivery.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type sendInvoiceRequest struct {
	Mobile string `json:"mobile,omitempty" validate:"omitempty,min=10"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// Download handles GET /v1/sales/:id/invoice and streams the PDF.
//
// @Summary      Download the invoice PDF for a sale
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "Sale id"
// @Success      200  {file}  binary
// @Failure      404  {object}  errorResponse
// @Router       /v1/sales/{id}/invoice [get]
func (h *InvoiceHandler) Download(c echo.Context) error {
	data, filename, err := h.service.GeneratePDF(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// SendWhatsApp handles POST /v1/sales/:id/invoice/whatsapp, queueing async
// delivery and returns 202 immediately.
//
// @Summary      Send the invoice to the customer over WhatsApp
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true   "Sale id"
// @Param        body  body      sendInvoiceRequest  false  "Override destination number"
// @Success      202   {object}  acceptedResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/sales/{id}/invoice/whatsapp [post]
func (h *InvoiceHandler) SendWhatsApp(c echo.Context) error {
	var req sendInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SendWhatsApp(c.Request().Context(), c.Param("id"), req.Mobile); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "invoice delivery queued"})
}
