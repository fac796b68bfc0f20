package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/ports"
)

const defaultLowStockThreshold = 5

// DashboardService assembles the landing-page figures from sales and
// inventory data.
type DashboardService struct {
	salesRepo     ports.SalesRepository
	inventoryRepo ports.InventoryRepository
	profit        ports.ProfitService
	threshold     int
	logger        zerolog.Logger
	now           func() time.Time
}

func NewDashboardService(
	salesRepo ports.SalesRepository,
	inventoryRepo ports.InventoryRepository,
	profit ports.ProfitService,
	lowStockThreshold int,
	logger zerolog.Logger,
) *DashboardService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = defaultLowStockThreshold
	}
	return &DashboardService{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		profit:        profit,
		threshold:     lowStockThreshold,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *DashboardService) Data(ctx context.Context) (*ports.DashboardData, error) {
	now := s.now().UTC()
	today := dayStart(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekAgo := today.AddDate(0, 0, -6)

	monthSales, err := s.salesRepo.ListByDateRange(ctx, monthStart, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	weekSales, err := s.salesRepo.ListByDateRange(ctx, weekAgo, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	var todayTotal, monthTotal float64
	for _, sale := range monthSales {
		monthTotal += sale.TotalAmount
		if !sale.SaleDate.Before(today) {
			todayTotal += sale.TotalAmount
		}
	}

	// Bucket the trailing week per day for the revenue chart.
	byDay := make(map[string]float64, 7)
	for _, sale := range weekSales {
		byDay[sale.SaleDate.UTC().Format("2006-01-02")] += sale.TotalAmount
	}
	chart := make([]ports.SalesChartPoint, 0, 7)
	for d := weekAgo; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if amount, ok := byDay[key]; ok {
			chart = append(chart, ports.SalesChartPoint{Date: key, Amount: amount})
		}
	}

	lowStock, err := s.inventoryRepo.ListLowStock(ctx, s.threshold)
	if err != nil {
		return nil, err
	}
	lowItems := make([]ports.LowStockItem, 0, len(lowStock))
	for _, t := range lowStock {
		lowItems = append(lowItems, ports.LowStockItem{
			ID:       t.ID,
			Brand:    t.Brand,
			TireSize: t.TireSize,
			Quantity: t.Quantity,
		})
	}

	allStock, err := s.inventoryRepo.List(ctx, ports.ListTiresFilter{Limit: 10000})
	if err != nil {
		return nil, err
	}
	var inventoryValue float64
	for _, t := range allStock {
		inventoryValue += t.SellingPrice * float64(t.Quantity)
	}

	profitSummary, err := s.profit.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardData{
		Summary: ports.DashboardSummary{
			TotalSalesToday:     todayTotal,
			TotalMonthlyRevenue: monthTotal,
			LowStockCount:       len(lowItems),
			TotalInventoryValue: inventoryValue,
			TotalItems:          len(allStock),
			DailyProfit:         profitSummary.DailyProfit,
			MonthlyProfit:       profitSummary.MonthlyProfit,
		},
		LowStockItems: lowItems,
		SalesChart:    chart,
	}, nil
}
