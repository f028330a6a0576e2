package state

import (
	"strings"

	"tailor-backend/internal/models"
)

// Transition is the pure state transition function. It never mutates its
// input: the returned state is a new top-level value that structurally
// shares every collection the action did not touch. Unknown action kinds
// return the state unchanged.
func Transition(s models.AppState, a Action) models.AppState {
	switch a := a.(type) {
	case SetLanguage:
		s.Language = a.Language
	case SetTheme:
		s.Theme = a.Theme
	case AddCustomer:
		s.Customers = appended(s.Customers, a.Customer)
	case UpdateCustomer:
		s.Customers = replaced(s.Customers, a.Customer, func(c models.Customer) string { return c.ID })
	case AddOrder:
		s.Orders = prepended(s.Orders, a.Order)
	case UpdateOrder:
		s.Orders = replaced(s.Orders, a.Order, func(o models.Order) string { return o.ID })
	case AddMeasurement:
		s.Measurements = appended(s.Measurements, a.Measurement)
	case UpdateMeasurement:
		s.Measurements = replaced(s.Measurements, a.Measurement, func(m models.Measurement) string { return m.ID })
	case AddGarmentType:
		for _, gt := range s.GarmentTypes {
			if strings.EqualFold(gt.Name, a.GarmentType.Name) {
				return s
			}
		}
		s.GarmentTypes = appended(s.GarmentTypes, a.GarmentType)
	case AddEmployee:
		s.Employees = appended(s.Employees, a.Employee)
	case UpdateEmployee:
		s.Employees = replaced(s.Employees, a.Employee, func(e models.Employee) string { return e.ID })
	case UpdateShopInfo:
		s.ShopInfo = a.ShopInfo
	case Login:
		s.IsAuthenticated = true
	case Logout:
		s.IsAuthenticated = false
	case RestoreState:
		s.Customers = a.Customers
		s.Measurements = a.Measurements
		s.Orders = a.Orders
		s.GarmentTypes = a.GarmentTypes
		s.ShopInfo = a.ShopInfo
		// Older exports predate the employees collection
		if a.Employees != nil {
			s.Employees = a.Employees
		} else {
			s.Employees = []models.Employee{}
		}
	}
	return s
}

// appended copies before growing so the prior state's backing array is
// never written through
func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func prepended[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

// replaced swaps the element whose key matches; a missing key leaves the
// collection unchanged but still returns a fresh slice
func replaced[T any](xs []T, x T, key func(T) string) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	id := key(x)
	for i := range out {
		if key(out[i]) == id {
			out[i] = x
		}
	}
	return out
}
