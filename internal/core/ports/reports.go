package ports

import (
	"context"
	"time"

	"github.com/tireshop/pos-system/internal/core/domain"
)

// ProfitSummary aggregates profit over standard windows.
type ProfitSummary struct {
	DailyProfit   float64
	MonthlyProfit float64
	TotalProfit   float64
}

// SaleProfitDetail is the per-sale profit breakdown.
type SaleProfitDetail struct {
	SaleID       string
	InvoiceID    string
	CustomerName string
	TotalAmount  float64
	TotalCost    float64
	Profit       float64
	SaleDate     time.Time
}

// DailyClosingReport is the end-of-day till reconciliation.
type DailyClosingReport struct {
	Date              time.Time
	TotalSales        float64
	TotalProfit       float64
	CashSales         float64
	UPISales          float64
	CardSales         float64
	TotalItemsSold    int
	TotalTransactions int
}

// ProfitService computes profit aggregates from recorded sales.
type ProfitService interface {
	Summary(ctx context.Context) (*ProfitSummary, error)
	Details(ctx context.Context, filter ListSalesFilter) ([]SaleProfitDetail, error)
	DailyClosing(ctx context.Context, day time.Time) (*DailyClosingReport, error)
}

// LowStockItem is the dashboard's short view of a stock line running out.
type LowStockItem struct {
	ID       string
	Brand    string
	TireSize string
	Quantity int
}

// SalesChartPoint is one day of the dashboard revenue chart.
type SalesChartPoint struct {
	Date   string // yyyy-mm-dd
	Amount float64
}

// DashboardSummary is the headline figures block.
type DashboardSummary struct {
	TotalSalesToday     float64
	TotalMonthlyRevenue float64
	LowStockCount       int
	TotalInventoryValue float64
	TotalItems          int
	DailyProfit         float64
	MonthlyProfit       float64
}

// DashboardData is the full dashboard payload.
type DashboardData struct {
	Summary       DashboardSummary
	LowStockItems []LowStockItem
	SalesChart    []SalesChartPoint
}

// DashboardService assembles the dashboard from sales and inventory data.
type DashboardService interface {
	Data(ctx context.Context) (*DashboardData, error)
}

// InventoryReportService returns the full stock list for reporting.
type InventoryReportService interface {
	InventoryReport(ctx context.Context) ([]*domain.Tire, error)
}
