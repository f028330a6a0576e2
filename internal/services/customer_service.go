package services

import (
	"strings"

	"github.com/google/uuid"

	"tailor-backend/internal/derive"
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

type CustomerService struct {
	Store *state.Store
}

func NewCustomerService(store *state.Store) *CustomerService {
	return &CustomerService{Store: store}
}

func (s *CustomerService) List() []models.Customer {
	customers := s.Store.State().Customers
	if customers == nil {
		return []models.Customer{}
	}
	return customers
}

func (s *CustomerService) Get(id string) (models.Customer, error) {
	c, ok := s.Store.State().FindCustomer(id)
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return c, nil
}

func (s *CustomerService) Create(req models.CreateCustomerRequest) (models.Customer, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return models.Customer{}, validationErr("customer name is required")
	}
	customer := models.Customer{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(req.FullName),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   req.Address,
		CreatedAt: timeutil.Now(),
	}
	s.Store.Dispatch(state.AddCustomer{Customer: customer})
	return customer, nil
}

func (s *CustomerService) Update(id string, req models.UpdateCustomerRequest) (models.Customer, error) {
	customer, ok := s.Store.State().FindCustomer(id)
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	if strings.TrimSpace(req.FullName) == "" {
		return models.Customer{}, validationErr("customer name is required")
	}
	customer.FullName = strings.TrimSpace(req.FullName)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.Address = req.Address
	s.Store.Dispatch(state.UpdateCustomer{Customer: customer})
	return customer, nil
}

// CustomerDetail is the customer page payload: the record, its orders
// with billing totals, and all measurement history.
type CustomerDetail struct {
	Customer     models.Customer       `json:"customer"`
	Ledger       derive.CustomerLedger `json:"ledger"`
	Measurements []models.Measurement  `json:"measurements"`
}

func (s *CustomerService) Detail(id string) (CustomerDetail, error) {
	st := s.Store.State()
	customer, ok := st.FindCustomer(id)
	if !ok {
		return CustomerDetail{}, ErrNotFound
	}
	detail := CustomerDetail{
		Customer:     customer,
		Ledger:       derive.CustomerLedgerFor(st, id),
		Measurements: []models.Measurement{},
	}
	for _, m := range st.Measurements {
		if m.CustomerID == id {
			detail.Measurements = append(detail.Measurements, m)
		}
	}
	return detail, nil
}
