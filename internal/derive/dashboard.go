package derive

import (
	"time"

	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

// DashboardKPIs are the four headline numbers on the dashboard
type DashboardKPIs struct {
	ActiveOrders       int             `json:"activeOrders"`
	DueToday           int             `json:"dueToday"`
	RevenueThisMonth   decimal.Decimal `json:"revenueThisMonth"`
	CompletedThisMonth int             `json:"completedThisMonth"`
}

// KPIs computes the dashboard numbers as of now. Revenue this month sums
// payments on orders opened this calendar month, regardless of when the
// individual payment arrived.
func KPIs(st models.AppState, now time.Time) DashboardKPIs {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	kpis := DashboardKPIs{RevenueThisMonth: decimal.Zero}

	for _, o := range st.Orders {
		if o.Status.IsActive() {
			kpis.ActiveOrders++
		}
		if sameDay(o.DueDate, now) && o.Status != models.StatusDelivered {
			kpis.DueToday++
		}
		if !o.OrderDate.Before(startOfMonth) {
			kpis.RevenueThisMonth = kpis.RevenueThisMonth.Add(PaymentsTotal(o.Payments))
			if o.Status == models.StatusCompleted || o.Status == models.StatusDelivered {
				kpis.CompletedThisMonth++
			}
		}
	}
	return kpis
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
