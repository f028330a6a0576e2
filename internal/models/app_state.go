package models

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppState is the whole application state. It is treated as an immutable
// value: every mutation goes through the state transition function, which
// returns a new top-level value sharing unchanged collections.
type AppState struct {
	Language        Language                `json:"language"`
	Theme           Theme                   `json:"theme"`
	Customers       []Customer              `json:"customers"`
	Measurements    []Measurement           `json:"measurements"`
	Orders          []Order                 `json:"orders"`
	GarmentTypes    []GarmentTypeDefinition `json:"garmentTypes"`
	Employees       []Employee              `json:"employees"`
	IsAuthenticated bool                    `json:"isAuthenticated"`
	ShopInfo        ShopInfo                `json:"shopInfo"`
}

// FindCustomer returns the customer with the given id, if present
func (s AppState) FindCustomer(id string) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// FindEmployee returns the employee with the given id, if present
func (s AppState) FindEmployee(id string) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// FindOrder returns the order with the given id, if present
func (s AppState) FindOrder(id string) (Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
