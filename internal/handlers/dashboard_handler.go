package handlers

import (
	"net/http"

	"tailor-backend/internal/derive"
	"tailor-backend/internal/services"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
	"tailor-backend/pkg/utils"
)

const recentOrderCount = 5

type DashboardHandler struct {
	Store  *state.Store
	Orders *services.OrderService
}

func NewDashboardHandler(store *state.Store, orders *services.OrderService) *DashboardHandler {
	return &DashboardHandler{Store: store, Orders: orders}
}

// GetDashboard returns the home-screen payload: the four KPI cards,
// the latest orders and per-employee workload
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	st := h.Store.State()

	recent := h.Orders.List()
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"kpis":         derive.KPIs(st, timeutil.Now()),
		"recentOrders": recent,
		"workload":     derive.Workload(st),
	})
}
