package services

import (
	"strings"

	"github.com/google/uuid"

	"tailor-backend/internal/derive"
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

type EmployeeService struct {
	Store *state.Store
}

func NewEmployeeService(store *state.Store) *EmployeeService {
	return &EmployeeService{Store: store}
}

func (s *EmployeeService) List() []models.Employee {
	employees := s.Store.State().Employees
	if employees == nil {
		return []models.Employee{}
	}
	return employees
}

func (s *EmployeeService) Get(id string) (models.Employee, error) {
	e, ok := s.Store.State().FindEmployee(id)
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return e, nil
}

func (s *EmployeeService) Create(req models.CreateEmployeeRequest) (models.Employee, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Employee{}, validationErr("employee name is required")
	}
	employee := models.Employee{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Role:      req.Role,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: timeutil.Now(),
		Payments:  []models.EmployeePayment{},
	}
	s.Store.Dispatch(state.AddEmployee{Employee: employee})
	return employee, nil
}

func (s *EmployeeService) Update(id string, req models.UpdateEmployeeRequest) (models.Employee, error) {
	employee, ok := s.Store.State().FindEmployee(id)
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.Employee{}, validationErr("employee name is required")
	}
	employee.Name = strings.TrimSpace(req.Name)
	employee.Role = req.Role
	employee.Phone = strings.TrimSpace(req.Phone)
	s.Store.Dispatch(state.UpdateEmployee{Employee: employee})
	return employee, nil
}

// AddPayment appends a payout to the employee's payment history.
// Payments are append-only; there is no edit or delete path.
func (s *EmployeeService) AddPayment(id string, req models.CreateEmployeePaymentRequest) (models.Employee, error) {
	employee, ok := s.Store.State().FindEmployee(id)
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	if !req.Amount.IsPositive() {
		return models.Employee{}, validationErr("payment amount must be greater than zero")
	}
	date := timeutil.Now()
	if req.Date != nil {
		date = *req.Date
	}
	payment := models.EmployeePayment{
		ID:     uuid.NewString(),
		Amount: req.Amount,
		Date:   date,
		Notes:  req.Notes,
	}
	payments := make([]models.EmployeePayment, len(employee.Payments), len(employee.Payments)+1)
	copy(payments, employee.Payments)
	employee.Payments = append(payments, payment)
	s.Store.Dispatch(state.UpdateEmployee{Employee: employee})
	return employee, nil
}

// EmployeeLedgerView is the full chronological ledger with lifetime totals
type EmployeeLedgerView struct {
	Employee models.Employee      `json:"employee"`
	Entries  []derive.LedgerEntry `json:"entries"`
	Summary  derive.LedgerSummary `json:"summary"`
}

func (s *EmployeeService) Ledger(id string) (EmployeeLedgerView, error) {
	st := s.Store.State()
	employee, ok := st.FindEmployee(id)
	if !ok {
		return EmployeeLedgerView{}, ErrNotFound
	}
	entries, summary := derive.EmployeeLedger(st, employee)
	if entries == nil {
		entries = []derive.LedgerEntry{}
	}
	return EmployeeLedgerView{Employee: employee, Entries: entries, Summary: summary}, nil
}

// Statement returns only the currently-open run of transactions since
// the balance last settled to zero
func (s *EmployeeService) Statement(id string) (EmployeeLedgerView, error) {
	view, err := s.Ledger(id)
	if err != nil {
		return EmployeeLedgerView{}, err
	}
	entries, summary := derive.StatementWindow(view.Entries)
	view.Entries = entries
	view.Summary = summary
	return view, nil
}

// Workload lists unit counts on in-progress orders per employee
func (s *EmployeeService) Workload() map[string]int {
	return derive.Workload(s.Store.State())
}
