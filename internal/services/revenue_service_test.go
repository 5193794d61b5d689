package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-30 is a Sunday, a useful reference for the Monday-start week rule.
var referenceDay = time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		period    string
		wantStart string
		wantEnd   string
		wantName  string
	}{
		{PeriodToday, "2026-08-30", "2026-08-30", "Today"},
		{PeriodYesterday, "2026-08-29", "2026-08-29", "Yesterday"},
		{PeriodWeek, "2026-08-24", "2026-08-30", "This Week"},
		{PeriodMonth, "2026-08-01", "2026-08-30", "This Month"},
		{PeriodYear, "2026-01-01", "2026-08-30", "This Year"},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			start, end, name, err := resolvePeriod(tc.period, referenceDay)
			require.NoError(t, err)
			require.NotNil(t, start)
			require.NotNil(t, end)
			assert.Equal(t, tc.wantStart, start.Format(dateLayout))
			assert.Equal(t, tc.wantEnd, end.Format(dateLayout))
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestResolvePeriodAllTimeIsUnbounded(t *testing.T) {
	start, end, name, err := resolvePeriod(PeriodAll, referenceDay)
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
	assert.Equal(t, "All Time", name)
}

func TestResolvePeriodWeekOnAMonday(t *testing.T) {
	monday := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	start, end, _, err := resolvePeriod(PeriodWeek, monday)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", start.Format(dateLayout))
	assert.Equal(t, "2026-08-24", end.Format(dateLayout))
}

func TestResolvePeriodUnknown(t *testing.T) {
	_, _, _, err := resolvePeriod("fortnight", referenceDay)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestReportForUnknownPeriod(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.revenue.ReportFor("fortnight")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestReportForEmptyPeriod(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.revenue.ReportFor(PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, "Today", report.PeriodName)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalOrders)
	assert.Nil(t, report.AveragePerOrder, "average must be omitted when the period has no orders")
	assert.Empty(t, report.DailyBreakdown)
}

func TestReportForAggregatesOrders(t *testing.T) {
	env := newTestEnv(t)
	customer := createTestCustomer(t, env)

	// A priced-to-the-paisa item exercises the decimal arithmetic.
	chuski, err := env.menu.CreateItem(CreateMenuItemRequest{
		Category: "Drinks", Name: "Chuski", Price: 12.50, Stock: 10,
	})
	require.NoError(t, err)

	_, err = env.orders.ConfirmOrder(ConfirmOrderRequest{
		CustomerID: customer.ID,
		Lines:      []CartLineRequest{{ItemID: samosaID, Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = env.orders.ConfirmOrder(ConfirmOrderRequest{
		CustomerID: customer.ID,
		Lines:      []CartLineRequest{{ItemID: chuski.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	report, err := env.revenue.ReportFor(PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 137.5, report.TotalRevenue)
	assert.Equal(t, 2, report.TotalOrders)
	require.NotNil(t, report.AveragePerOrder)
	assert.Equal(t, 68.75, *report.AveragePerOrder)

	require.Len(t, report.DailyBreakdown, 1)
	assert.Equal(t, 2, report.DailyBreakdown[0].OrderCount)
	assert.Equal(t, 137.5, report.DailyBreakdown[0].Revenue)
}

func TestReportForPastPeriodExcludesToday(t *testing.T) {
	env := newTestEnv(t)
	customer := createTestCustomer(t, env)

	_, err := env.orders.ConfirmOrder(ConfirmOrderRequest{
		CustomerID: customer.ID,
		Lines:      []CartLineRequest{{ItemID: samosaID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Pin "now" to tomorrow so today's order falls into yesterday's bucket
	// but not today's.
	rs := env.revenue.(*revenueService)
	rs.now = func() time.Time { return time.Now().AddDate(0, 0, 1) }

	today, err := env.revenue.ReportFor(PeriodToday)
	require.NoError(t, err)
	assert.Zero(t, today.TotalOrders)

	yesterday, err := env.revenue.ReportFor(PeriodYesterday)
	require.NoError(t, err)
	assert.Equal(t, 1, yesterday.TotalOrders)
	assert.Equal(t, 20.0, yesterday.TotalRevenue)
}

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	customer := createTestCustomer(t, env)

	order, err := env.orders.ConfirmOrder(ConfirmOrderRequest{
		CustomerID: customer.ID,
		Lines:      []CartLineRequest{{ItemID: samosaID, Quantity: 5}},
	})
	require.NoError(t, err)

	_, err = env.menu.AdjustStock(masalaChaiID, -50)
	require.NoError(t, err)

	summary, err := env.revenue.DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PendingOrdersCount)
	assert.Equal(t, 100.0, summary.TodayRevenue)
	assert.Equal(t, 1, summary.TodayOrdersCount)
	assert.Equal(t, 1, summary.OutOfStockCount)

	_, err = env.orders.MarkComplete(order.ID)
	require.NoError(t, err)

	summary, err = env.revenue.DashboardSummary()
	require.NoError(t, err)
	assert.Zero(t, summary.PendingOrdersCount)
	// Completion does not move revenue; today's numbers stay.
	assert.Equal(t, 100.0, summary.TodayRevenue)
}
