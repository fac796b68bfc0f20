package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

// ProfitService computes profit aggregates from recorded sales. Cost prices
// are captured on each sale item at billing time, so reports are stable
// against later inventory price changes.
type ProfitService struct {
	salesRepo ports.SalesRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewProfitService(salesRepo ports.SalesRepository, logger zerolog.Logger) *ProfitService {
	return &ProfitService{salesRepo: salesRepo, logger: logger, now: time.Now}
}

// Summary returns today's, this month's, and all-time profit.
func (s *ProfitService) Summary(ctx context.Context) (*ports.ProfitSummary, error) {
	sales, err := s.salesRepo.ListByDateRange(ctx, time.Time{}, s.now().UTC().AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := dayStart(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var summary ports.ProfitSummary
	for _, sale := range sales {
		profit := sale.Profit()
		summary.TotalProfit += profit
		if !sale.SaleDate.Before(today) {
			summary.DailyProfit += profit
		}
		if !sale.SaleDate.Before(monthStart) {
			summary.MonthlyProfit += profit
		}
	}
	return &summary, nil
}

// Details returns the per-sale profit breakdown, newest first.
func (s *ProfitService) Details(ctx context.Context, filter ports.ListSalesFilter) ([]ports.SaleProfitDetail, error) {
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	sales, err := s.salesRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	details := make([]ports.SaleProfitDetail, 0, len(sales))
	for _, sale := range sales {
		cost := sale.CostTotal()
		details = append(details, ports.SaleProfitDetail{
			SaleID:       sale.ID,
			InvoiceID:    sale.InvoiceID,
			CustomerName: sale.CustomerName,
			TotalAmount:  sale.TotalAmount,
			TotalCost:    cost,
			Profit:       sale.TotalAmount - cost,
			SaleDate:     sale.SaleDate,
		})
	}
	return details, nil
}

// DailyClosing reconciles a single day's till: totals by payment mode,
// profit, items sold, and transaction count. A zero day means today.
func (s *ProfitService) DailyClosing(ctx context.Context, day time.Time) (*ports.DailyClosingReport, error) {
	if day.IsZero() {
		day = s.now().UTC()
	}
	from := dayStart(day)
	sales, err := s.salesRepo.ListByDateRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	report := &ports.DailyClosingReport{Date: from}
	for _, sale := range sales {
		report.TotalSales += sale.TotalAmount
		report.TotalProfit += sale.Profit()
		report.TotalItemsSold += sale.ItemCount()
		report.TotalTransactions++

		switch sale.PaymentMode {
		case domain.PaymentCash:
			report.CashSales += sale.TotalAmount
		case domain.PaymentUPI:
			report.UPISales += sale.TotalAmount
		case domain.PaymentCard:
			report.CardSales += sale.TotalAmount
		}
	}
	return report, nil
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
