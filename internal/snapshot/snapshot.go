// Package snapshot is the persistence adapter: it serializes the
// application state to a JSON text blob under a fixed key in a key-value
// store, upgrades older blobs on load, and seeds a default dataset when
// nothing is stored.
package snapshot

import "tailor-backend/internal/models"

// Keys under which state is persisted. The remember-me flag lives under
// its own key so wiping the snapshot does not log the user out.
const (
	StateKey    = "tailor:state"
	RememberKey = "tailor:remember"
)

// Snapshot mirrors AppState minus theme and authentication, which are
// never persisted with the data.
type Snapshot struct {
	Language     models.Language                `json:"language"`
	Customers    []models.Customer              `json:"customers"`
	Measurements []models.Measurement           `json:"measurements"`
	Orders       []models.Order                 `json:"orders"`
	GarmentTypes []models.GarmentTypeDefinition `json:"garmentTypes"`
	Employees    []models.Employee              `json:"employees"`
	ShopInfo     models.ShopInfo                `json:"shopInfo"`
}

// Capture extracts the persistable portion of the state
func Capture(st models.AppState) Snapshot {
	return Snapshot{
		Language:     st.Language,
		Customers:    st.Customers,
		Measurements: st.Measurements,
		Orders:       st.Orders,
		GarmentTypes: st.GarmentTypes,
		Employees:    st.Employees,
		ShopInfo:     st.ShopInfo,
	}
}

// AppState rebuilds a full application state around the snapshot
func (s Snapshot) AppState(theme models.Theme, authenticated bool) models.AppState {
	return models.AppState{
		Language:        s.Language,
		Theme:           theme,
		Customers:       s.Customers,
		Measurements:    s.Measurements,
		Orders:          s.Orders,
		GarmentTypes:    s.GarmentTypes,
		Employees:       s.Employees,
		IsAuthenticated: authenticated,
		ShopInfo:        s.ShopInfo,
	}
}
