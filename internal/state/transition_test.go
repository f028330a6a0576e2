package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func TestTransitionAddCustomerDoesNotMutatePrior(t *testing.T) {
	prior := models.AppState{
		Customers: []models.Customer{{ID: "c1", FullName: "Asha"}},
	}

	next := Transition(prior, AddCustomer{Customer: models.Customer{ID: "c2", FullName: "Ravi"}})

	require.Len(t, next.Customers, 2)
	assert.Len(t, prior.Customers, 1, "prior state must stay untouched")
	assert.Equal(t, "c2", next.Customers[1].ID)
}

func TestTransitionAddOrderPrepends(t *testing.T) {
	st := models.AppState{Orders: []models.Order{{ID: "old"}}}

	st = Transition(st, AddOrder{Order: models.Order{ID: "new"}})

	require.Len(t, st.Orders, 2)
	assert.Equal(t, "new", st.Orders[0].ID, "newest order comes first")
	assert.Equal(t, "old", st.Orders[1].ID)
}

func TestTransitionUpdateReplacesByID(t *testing.T) {
	st := models.AppState{Customers: []models.Customer{
		{ID: "c1", FullName: "Asha"},
		{ID: "c2", FullName: "Ravi"},
	}}

	st = Transition(st, UpdateCustomer{Customer: models.Customer{ID: "c2", FullName: "Ravi Kumar"}})

	require.Len(t, st.Customers, 2)
	assert.Equal(t, "Ravi Kumar", st.Customers[1].FullName)
	assert.Equal(t, "Asha", st.Customers[0].FullName)
}

func TestTransitionUpdateUnknownIDIsNoOp(t *testing.T) {
	st := models.AppState{Orders: []models.Order{{ID: "o1", Notes: "keep"}}}

	st = Transition(st, UpdateOrder{Order: models.Order{ID: "missing", Notes: "drop"}})

	require.Len(t, st.Orders, 1)
	assert.Equal(t, "keep", st.Orders[0].Notes)
}

func TestTransitionAddGarmentTypeIgnoresCaseInsensitiveDuplicate(t *testing.T) {
	st := models.AppState{GarmentTypes: []models.GarmentTypeDefinition{
		{Name: "Shirt", MeasurementFields: []string{"chest"}},
	}}

	st = Transition(st, AddGarmentType{GarmentType: models.GarmentTypeDefinition{Name: "shirt"}})
	assert.Len(t, st.GarmentTypes, 1)

	st = Transition(st, AddGarmentType{GarmentType: models.GarmentTypeDefinition{Name: "Sherwani"}})
	assert.Len(t, st.GarmentTypes, 2)
}

func TestTransitionLoginLogout(t *testing.T) {
	st := models.AppState{}

	st = Transition(st, Login{})
	assert.True(t, st.IsAuthenticated)

	st = Transition(st, Logout{})
	assert.False(t, st.IsAuthenticated)
}

func TestTransitionRestoreStatePreservesSessionFields(t *testing.T) {
	st := models.AppState{
		Language:        models.LanguageHindi,
		Theme:           models.ThemeDark,
		IsAuthenticated: true,
		Customers:       []models.Customer{{ID: "old"}},
	}

	st = Transition(st, RestoreState{
		Customers:    []models.Customer{{ID: "imported"}},
		Measurements: []models.Measurement{},
		Orders:       []models.Order{},
		GarmentTypes: []models.GarmentTypeDefinition{{Name: "Shirt"}},
		Employees:    []models.Employee{{ID: "e1"}},
		ShopInfo:     models.ShopInfo{Name: "Deepak Tailors"},
	})

	assert.Equal(t, models.LanguageHindi, st.Language)
	assert.Equal(t, models.ThemeDark, st.Theme)
	assert.True(t, st.IsAuthenticated)
	require.Len(t, st.Customers, 1)
	assert.Equal(t, "imported", st.Customers[0].ID)
	assert.Len(t, st.Employees, 1)
}

func TestTransitionRestoreStateDefaultsMissingEmployees(t *testing.T) {
	st := models.AppState{Employees: []models.Employee{{ID: "stale"}}}

	st = Transition(st, RestoreState{
		Customers: []models.Customer{},
		Orders:    []models.Order{},
		Employees: nil,
	})

	require.NotNil(t, st.Employees)
	assert.Empty(t, st.Employees, "missing employees collection restores to empty, not stale data")
}

func TestStoreDispatchNotifiesObservers(t *testing.T) {
	store := NewStore(models.AppState{})

	var seen []models.AppState
	store.Subscribe(func(st models.AppState) {
		seen = append(seen, st)
	})

	store.Dispatch(AddCustomer{Customer: models.Customer{ID: "c1"}})
	store.Dispatch(AddCustomer{Customer: models.Customer{ID: "c2"}})

	require.Len(t, seen, 2)
	assert.Len(t, seen[0].Customers, 1)
	assert.Len(t, seen[1].Customers, 2)
	assert.Len(t, store.State().Customers, 2)
}
