package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrUnknownPeriod = errors.New("unknown report period")

// Period bucket identifiers accepted by ReportFor.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodYear      = "year"
	PeriodAll       = "all"
)

// --- RevenueService Interface ---
type RevenueService interface {
	ReportFor(period string) (*models.RevenueReport, error)
	DashboardSummary() (*models.DashboardSummary, error)
}

type revenueService struct {
	revenueRepo repositories.RevenueRepository
	orderRepo   repositories.OrderRepository
	menuRepo    repositories.MenuRepository
	db          *sql.DB
	now         func() time.Time
}

// NewRevenueService creates a new instance of RevenueService.
func NewRevenueService(
	rr repositories.RevenueRepository,
	or repositories.OrderRepository,
	mr repositories.MenuRepository,
	db *sql.DB,
) RevenueService {
	return &revenueService{
		revenueRepo: rr,
		orderRepo:   or,
		menuRepo:    mr,
		db:          db,
		now:         time.Now,
	}
}

// resolvePeriod maps a period bucket to an inclusive [start, end] date range
// relative to the reference day. A nil range means unbounded (all time).
func resolvePeriod(period string, reference time.Time) (start, end *time.Time, name string, err error) {
	today := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	switch period {
	case PeriodToday:
		return &today, &today, "Today", nil
	case PeriodYesterday:
		d := today.AddDate(0, 0, -1)
		return &d, &d, "Yesterday", nil
	case PeriodWeek:
		// Week starts on Monday.
		offset := (int(today.Weekday()) + 6) % 7
		s := today.AddDate(0, 0, -offset)
		return &s, &today, "This Week", nil
	case PeriodMonth:
		s := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return &s, &today, "This Month", nil
	case PeriodYear:
		s := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return &s, &today, "This Year", nil
	case PeriodAll:
		return nil, nil, "All Time", nil
	default:
		return nil, nil, "", fmt.Errorf("%w: %s", ErrUnknownPeriod, period)
	}
}

// ReportFor aggregates the revenue ledger into the requested period bucket.
// The average per order is left out entirely when the period has no orders.
func (s *revenueService) ReportFor(period string) (*models.RevenueReport, error) {
	start, end, name, err := resolvePeriod(period, s.now())
	if err != nil {
		return nil, err
	}

	var startDate, endDate *string
	if start != nil && end != nil {
		sd := start.Format(dateLayout)
		ed := end.Format(dateLayout)
		startDate, endDate = &sd, &ed
	}

	daily, err := s.revenueRepo.GetDailyTotals(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	totalRevenue := decimal.Zero
	totalOrders := 0
	for _, day := range daily {
		totalRevenue = totalRevenue.Add(decimal.NewFromFloat(day.Revenue))
		totalOrders += day.OrderCount
	}

	report := &models.RevenueReport{
		Period:         period,
		PeriodName:     name,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalOrders:    totalOrders,
		DailyBreakdown: daily,
	}
	report.TotalRevenue, _ = totalRevenue.Round(2).Float64()

	if totalOrders > 0 {
		avg, _ := totalRevenue.Div(decimal.NewFromInt(int64(totalOrders))).Round(2).Float64()
		report.AveragePerOrder = &avg
	}
	return report, nil
}

// DashboardSummary collects the counter's at-a-glance numbers.
func (s *revenueService) DashboardSummary() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	pending, err := s.orderRepo.CountByStatus(StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}
	summary.PendingOrdersCount = pending

	today := s.now().Format(dateLayout)
	daily, err := s.revenueRepo.GetDailyTotals(&today, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate today's revenue: %w", err)
	}
	for _, day := range daily {
		summary.TodayRevenue += day.Revenue
		summary.TodayOrdersCount += day.OrderCount
	}

	outOfStock, err := s.menuRepo.CountOutOfStock()
	if err != nil {
		return nil, fmt.Errorf("failed to count out-of-stock items: %w", err)
	}
	summary.OutOfStockCount = outOfStock

	return summary, nil
}
