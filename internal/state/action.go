package state

import "tailor-backend/internal/models"

// Action is the closed set of state transitions. Each variant carries a
// strongly-typed payload; Transition matches exhaustively over them.
type Action interface {
	isAction()
}

type SetLanguage struct {
	Language models.Language
}

type SetTheme struct {
	Theme models.Theme
}

type AddCustomer struct {
	Customer models.Customer
}

type UpdateCustomer struct {
	Customer models.Customer
}

// AddOrder prepends so order listings stay newest-first
type AddOrder struct {
	Order models.Order
}

type UpdateOrder struct {
	Order models.Order
}

type AddMeasurement struct {
	Measurement models.Measurement
}

type UpdateMeasurement struct {
	Measurement models.Measurement
}

// AddGarmentType is ignored when a case-insensitive name collision exists.
// Callers that need to distinguish "added" from "ignored" check the
// collection before dispatching (see services.GarmentTypeService).
type AddGarmentType struct {
	GarmentType models.GarmentTypeDefinition
}

type AddEmployee struct {
	Employee models.Employee
}

type UpdateEmployee struct {
	Employee models.Employee
}

type UpdateShopInfo struct {
	ShopInfo models.ShopInfo
}

type Login struct{}

type Logout struct{}

// RestoreState replaces all data collections from an imported snapshot
// while the current language, theme and auth fields are preserved.
type RestoreState struct {
	Customers    []models.Customer
	Measurements []models.Measurement
	Orders       []models.Order
	GarmentTypes []models.GarmentTypeDefinition
	Employees    []models.Employee
	ShopInfo     models.ShopInfo
}

func (SetLanguage) isAction()       {}
func (SetTheme) isAction()          {}
func (AddCustomer) isAction()       {}
func (UpdateCustomer) isAction()    {}
func (AddOrder) isAction()          {}
func (UpdateOrder) isAction()       {}
func (AddMeasurement) isAction()    {}
func (UpdateMeasurement) isAction() {}
func (AddGarmentType) isAction()    {}
func (AddEmployee) isAction()       {}
func (UpdateEmployee) isAction()    {}
func (UpdateShopInfo) isAction()    {}
func (Login) isAction()             {}
func (Logout) isAction()            {}
func (RestoreState) isAction()      {}
