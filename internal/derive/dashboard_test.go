package derive

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tailor-backend/internal/models"
)

func TestKPIs(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)

	st := models.AppState{Orders: []models.Order{
		{
			ID:        "o1",
			Status:    models.StatusInProgress,
			OrderDate: now.AddDate(0, 0, -2),
			DueDate:   now.Add(3 * time.Hour),
			Payments:  []models.Payment{{Amount: decimal.NewFromInt(500)}},
		},
		{
			ID:        "o2",
			Status:    models.StatusCompleted,
			OrderDate: now.AddDate(0, 0, -5),
			DueDate:   now.AddDate(0, 0, 2),
			Payments:  []models.Payment{{Amount: decimal.NewFromInt(300)}},
		},
		{
			// Delivered today: not active, not counted as due
			ID:        "o3",
			Status:    models.StatusDelivered,
			OrderDate: lastMonth,
			DueDate:   now,
			Payments:  []models.Payment{{Amount: decimal.NewFromInt(1000)}},
		},
		{
			ID:        "o4",
			Status:    models.StatusCancelled,
			OrderDate: now.AddDate(0, 0, -1),
			DueDate:   now.AddDate(0, 0, 1),
		},
	}}

	kpis := KPIs(st, now)

	assert.Equal(t, 1, kpis.ActiveOrders)
	assert.Equal(t, 1, kpis.DueToday)
	// Only payments on orders opened this month count; o3 is last month's
	assert.True(t, kpis.RevenueThisMonth.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 1, kpis.CompletedThisMonth)
}

func TestWorkloadCountsInProgressUnitsOnly(t *testing.T) {
	st := models.AppState{
		Employees: []models.Employee{{ID: "e1"}, {ID: "e2"}},
		Orders: []models.Order{
			{
				Status: models.StatusInProgress,
				Items: []models.LineItem{
					{Assignments: []models.WorkAssignment{
						{EmployeeID: "e1"}, {EmployeeID: "e1"}, {},
					}},
				},
			},
			{
				Status: models.StatusCompleted,
				Items: []models.LineItem{
					{Assignments: []models.WorkAssignment{{EmployeeID: "e1"}}},
				},
			},
		},
	}

	workload := Workload(st)

	assert.Equal(t, 2, workload["e1"])
	assert.Equal(t, 0, workload["e2"], "idle employees appear with a zero count")
}

func TestCustomerLedger(t *testing.T) {
	st := models.AppState{Orders: []models.Order{
		{
			ID:         "o1",
			CustomerID: "c1",
			Status:     models.StatusCompleted,
			Total:      decimal.NewFromInt(1500),
			Payments:   []models.Payment{{Amount: decimal.NewFromInt(1000)}},
			Balance:    decimal.NewFromInt(500),
		},
		{
			ID:         "o2",
			CustomerID: "other",
			Total:      decimal.NewFromInt(999),
		},
	}}

	ledger := CustomerLedgerFor(st, "c1")

	assert.Len(t, ledger.Orders, 1)
	assert.True(t, ledger.TotalBilled.Equal(decimal.NewFromInt(1500)))
	assert.True(t, ledger.TotalPaid.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ledger.BalanceDue.Equal(decimal.NewFromInt(500)))
}
