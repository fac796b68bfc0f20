// Package invoice renders tax invoices for completed sales as PDF documents.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tireshop/pos-system/internal/core/domain"
)

// GST is split equally between central and state components.
const gstRate = 0.09

// ShopInfo is the letterhead printed on every invoice.
type ShopInfo struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
	Email   string
}

// Renderer produces invoice PDFs with a fixed shop letterhead.
type Renderer struct {
	shop ShopInfo
}

func NewRenderer(shop ShopInfo) *Renderer {
	return &Renderer{shop: shop}
}

// Render builds the PDF for a sale and returns the raw document bytes.
func (r *Renderer) Render(sale *domain.Sale) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Letterhead.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(26, 86, 219)
	pdf.CellFormat(0, 12, r.shop.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(55, 65, 81)
	pdf.CellFormat(0, 5, r.shop.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "GSTIN: "+r.shop.GSTIN, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s | Email: %s", r.shop.Phone, r.shop.Email), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(26, 86, 219)
	pdf.CellFormat(0, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Invoice meta.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	meta := [][2]string{
		{"Invoice No:", sale.InvoiceID},
		{"Date:", sale.SaleDate.Format("02-01-2006")},
		{"Customer:", sale.CustomerName},
		{"Mobile:", sale.CustomerMobile},
		{"Payment Mode:", string(sale.PaymentMode)},
	}
	for _, row := range meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Items table header.
	colWidths := []float64{12, 88, 18, 35, 35}
	pdf.SetFillColor(26, 86, 219)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	headers := []string{"#", "Item Description", "Qty", "Rate", "Amount"}
	for i, h := range headers {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for idx, item := range sale.Items {
		pdf.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", idx+1), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%s - %s", item.Brand, item.TireSize), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, money(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, money(item.TotalPrice), "1", 1, "R", false, 0, "")
	}

	// Totals block. GST is charged on the discounted amount.
	taxable := sale.Subtotal - sale.DiscountAmount
	cgst := taxable * gstRate
	sgst := taxable * gstRate
	grand := taxable + cgst + sgst

	totals := [][2]string{
		{"Subtotal:", money(sale.Subtotal)},
	}
	if sale.DiscountAmount > 0 {
		totals = append(totals, [2]string{"Discount:", "-" + money(sale.DiscountAmount)})
	}
	totals = append(totals,
		[2]string{"CGST (9%):", money(cgst)},
		[2]string{"SGST (9%):", money(sgst)},
		[2]string{"Grand Total:", money(grand)},
	)

	labelOffset := colWidths[0] + colWidths[1] + colWidths[2]
	pdf.SetFont("Helvetica", "B", 10)
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(labelOffset, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, row[0], "T", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, row[1], "T", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This is a computer-generated invoice", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", sale.InvoiceID, err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
