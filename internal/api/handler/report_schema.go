package handler

import (
	"time"

	"github.com/tireshop/pos-system/internal/core/ports"
)

// Response-only types owned by the transport layer. These are intentionally
// separate from ports types so the JSON contract is not coupled to internal
// service changes.

type profitSummaryResponse struct {
	DailyProfit   float64 `json:"daily_profit"`
	MonthlyProfit float64 `json:"monthly_profit"`
	TotalProfit   float64 `json:"total_profit"`
}

type saleProfitDetailResponse struct {
	SaleID       string    `json:"sale_id"`
	InvoiceID    string    `json:"invoice_id"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  float64   `json:"total_amount"`
	TotalCost    float64   `json:"total_cost"`
	Profit       float64   `json:"profit"`
	SaleDate     time.Time `json:"sale_date"`
}

type dailyClosingResponse struct {
	Date              string  `json:"date"`
	TotalSales        float64 `json:"total_sales"`
	TotalProfit       float64 `json:"total_profit"`
	CashSales         float64 `json:"cash_sales"`
	UPISales          float64 `json:"upi_sales"`
	CardSales         float64 `json:"card_sales"`
	TotalItemsSold    int     `json:"total_items_sold"`
	TotalTransactions int     `json:"total_transactions"`
}

type lowStockItemResponse struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	TireSize string `json:"tire_size"`
	Quantity int    `json:"quantity"`
}

type salesChartPointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type dashboardSummaryResponse struct {
	TotalSalesToday     float64 `json:"total_sales_today"`
	TotalMonthlyRevenue float64 `json:"total_monthly_revenue"`
	LowStockCount       int     `json:"low_stock_count"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	TotalItems          int     `json:"total_items"`
	DailyProfit         float64 `json:"daily_profit"`
	MonthlyProfit       float64 `json:"monthly_profit"`
}

type dashboardResponse struct {
	Summary       dashboardSummaryResponse  `json:"summary"`
	LowStockItems []lowStockItemResponse    `json:"low_stock_items"`
	SalesChart    []salesChartPointResponse `json:"sales_chart"`
}

// --- Service result → HTTP response ---

func toProfitSummaryResponse(s *ports.ProfitSummary) profitSummaryResponse {
	return profitSummaryResponse{
		DailyProfit:   s.DailyProfit,
		MonthlyProfit: s.MonthlyProfit,
		TotalProfit:   s.TotalProfit,
	}
}

func toProfitDetailsResponse(details []ports.SaleProfitDetail) []saleProfitDetailResponse {
	out := make([]saleProfitDetailResponse, len(details))
	for i, d := range details {
		out[i] = saleProfitDetailResponse{
			SaleID:       d.SaleID,
			InvoiceID:    d.InvoiceID,
			CustomerName: d.CustomerName,
			TotalAmount:  d.TotalAmount,
			TotalCost:    d.TotalCost,
			Profit:       d.Profit,
			SaleDate:     d.SaleDate.UTC(),
		}
	}
	return out
}

func toDailyClosingResponse(r *ports.DailyClosingReport) dailyClosingResponse {
	return dailyClosingResponse{
		Date:              r.Date.Format("2006-01-02"),
		TotalSales:        r.TotalSales,
		TotalProfit:       r.TotalProfit,
		CashSales:         r.CashSales,
		UPISales:          r.UPISales,
		CardSales:         r.CardSales,
		TotalItemsSold:    r.TotalItemsSold,
		TotalTransactions: r.TotalTransactions,
	}
}

func toDashboardResponse(d *ports.DashboardData) dashboardResponse {
	low := make([]lowStockItemResponse, len(d.LowStockItems))
	for i, it := range d.LowStockItems {
		low[i] = lowStockItemResponse{
			ID:       it.ID,
			Brand:    it.Brand,
			TireSize: it.TireSize,
			Quantity: it.Quantity,
		}
	}

	chart := make([]salesChartPointResponse, len(d.SalesChart))
	for i, p := range d.SalesChart {
		chart[i] = salesChartPointResponse{Date: p.Date, Amount: p.Amount}
	}

	return dashboardResponse{
		Summary: dashboardSummaryResponse{
			TotalSalesToday:     d.Summary.TotalSalesToday,
			TotalMonthlyRevenue: d.Summary.TotalMonthlyRevenue,
			LowStockCount:       d.Summary.LowStockCount,
			TotalInventoryValue: d.Summary.TotalInventoryValue,
			TotalItems:          d.Summary.TotalItems,
			DailyProfit:         d.Summary.DailyProfit,
			MonthlyProfit:       d.Summary.MonthlyProfit,
		},
		LowStockItems: low,
		SalesChart:    chart,
	}
}
