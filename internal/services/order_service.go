package services

import (
	"fmt"

	"github.com/google/uuid"

	"tailor-backend/internal/assign"
	"tailor-backend/internal/derive"
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

type OrderService struct {
	Store        *state.Store
	Measurements *MeasurementService
}

func NewOrderService(store *state.Store, measurements *MeasurementService) *OrderService {
	return &OrderService{Store: store, Measurements: measurements}
}

// OrderView decorates an order with the derived "New" display badge
type OrderView struct {
	models.Order
	IsNew bool `json:"isNew"`
}

func (s *OrderService) List() []OrderView {
	now := timeutil.Now()
	orders := s.Store.State().Orders
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderView{Order: o, IsNew: o.IsNew(now)})
	}
	return out
}

func (s *OrderService) Get(id string) (OrderView, error) {
	o, ok := s.Store.State().FindOrder(id)
	if !ok {
		return OrderView{}, ErrNotFound
	}
	return OrderView{Order: o, IsNew: o.IsNew(timeutil.Now())}, nil
}

// Create opens a new order directly into In Progress. Measurement
// snapshots are copied from the customer's latest record per garment
// type, every unit starts unassigned, and a positive advance becomes
// the first cash payment.
func (s *OrderService) Create(req models.CreateOrderRequest) (models.Order, error) {
	st := s.Store.State()
	if _, ok := st.FindCustomer(req.CustomerID); !ok {
		return models.Order{}, ErrNotFound
	}
	if len(req.Items) == 0 {
		return models.Order{}, validationErr("order must have at least one item")
	}
	if req.Discount.IsNegative() {
		return models.Order{}, validationErr("discount cannot be negative")
	}
	if req.Advance.IsNegative() {
		return models.Order{}, validationErr("advance cannot be negative")
	}

	now := timeutil.Now()
	orderID := uuid.NewString()

	items := make([]models.LineItem, 0, len(req.Items))
	for _, ir := range req.Items {
		if ir.Quantity <= 0 {
			return models.Order{}, validationErr("item quantity must be at least 1")
		}
		item := models.LineItem{
			ID:                  uuid.NewString(),
			GarmentType:         ir.GarmentType,
			Quantity:            ir.Quantity,
			UnitPrice:           ir.UnitPrice,
			FabricSource:        ir.FabricSource,
			Notes:               ir.Notes,
			Photo:               ir.Photo,
			MeasurementSnapshot: map[string]float64{},
		}
		if item.FabricSource == "" {
			item.FabricSource = models.FabricCustomer
		}
		if latest, err := s.Measurements.Latest(req.CustomerID, ir.GarmentType); err == nil {
			item.MeasurementSnapshot = latest.Values
		}
		item.Assignments, _ = assign.Expand(item, nil)
		items = append(items, item)
	}

	order := models.Order{
		ID:          orderID,
		OrderNumber: fmt.Sprintf("DT-%s-%s", now.Format("20060102"), orderID[len(orderID)-4:]),
		CustomerID:  req.CustomerID,
		OrderDate:   now,
		DueDate:     req.DueDate,
		Status:      models.StatusInProgress,
		Items:       items,
		Discount:    req.Discount,
		Payments:    []models.Payment{},
		Notes:       req.Notes,
	}
	if req.Advance.IsPositive() {
		order.Payments = append(order.Payments, models.Payment{
			ID:     uuid.NewString(),
			Amount: req.Advance,
			Method: models.PaymentCash,
			Date:   now,
		})
	}
	derive.ApplyTotals(&order)

	s.Store.Dispatch(state.AddOrder{Order: order})
	return order, nil
}

// Update edits an order's contents while it is still active. Existing
// per-unit assignments are carried over by item id; a quantity change
// refits the assignment list to the new unit count.
func (s *OrderService) Update(id string, req models.UpdateOrderRequest) (models.Order, error) {
	st := s.Store.State()
	order, ok := st.FindOrder(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if !order.Status.IsActive() {
		return models.Order{}, validationErr("order is no longer editable")
	}
	if len(req.Items) == 0 {
		return models.Order{}, validationErr("order must have at least one item")
	}
	if req.Discount.IsNegative() {
		return models.Order{}, validationErr("discount cannot be negative")
	}

	customerID := order.CustomerID
	if req.CustomerID != "" {
		if _, ok := st.FindCustomer(req.CustomerID); !ok {
			return models.Order{}, ErrNotFound
		}
		customerID = req.CustomerID
	}

	prior := make(map[string]models.LineItem, len(order.Items))
	for _, it := range order.Items {
		prior[it.ID] = it
	}

	items := make([]models.LineItem, 0, len(req.Items))
	for _, ir := range req.Items {
		if ir.Quantity <= 0 {
			return models.Order{}, validationErr("item quantity must be at least 1")
		}
		item := models.LineItem{
			ID:                  ir.ID,
			GarmentType:         ir.GarmentType,
			Quantity:            ir.Quantity,
			UnitPrice:           ir.UnitPrice,
			FabricSource:        ir.FabricSource,
			Notes:               ir.Notes,
			Photo:               ir.Photo,
			MeasurementSnapshot: map[string]float64{},
		}
		if item.FabricSource == "" {
			item.FabricSource = models.FabricCustomer
		}
		if prev, existed := prior[ir.ID]; item.ID != "" && existed {
			item.MeasurementSnapshot = prev.MeasurementSnapshot
			item.Assignments = assign.Refit(prev, ir.Quantity)
		} else {
			item.ID = uuid.NewString()
			if latest, err := s.Measurements.Latest(customerID, ir.GarmentType); err == nil {
				item.MeasurementSnapshot = latest.Values
			}
			item.Assignments, _ = assign.Expand(item, nil)
		}
		items = append(items, item)
	}

	order.CustomerID = customerID
	if !req.DueDate.IsZero() {
		order.DueDate = req.DueDate
	}
	order.Items = items
	order.Discount = req.Discount
	order.Notes = req.Notes
	derive.ApplyTotals(&order)

	s.Store.Dispatch(state.UpdateOrder{Order: order})
	return order, nil
}

// UpdateStatus applies one step of the status machine. Transitions are
// one-directional; anything else is rejected.
func (s *OrderService) UpdateStatus(id string, next models.OrderStatus) (models.Order, error) {
	order, ok := s.Store.State().FindOrder(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if !order.Status.CanTransitionTo(next) {
		return models.Order{}, validationErr(fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}
	order.Status = next
	s.Store.Dispatch(state.UpdateOrder{Order: order})
	return order, nil
}

// AddPayment records money received against the order and recomputes
// the stored totals atomically with the mutation.
func (s *OrderService) AddPayment(id string, req models.CreateOrderPaymentRequest) (models.Order, error) {
	order, ok := s.Store.State().FindOrder(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if order.Status == models.StatusCancelled {
		return models.Order{}, validationErr("cannot take payment on a cancelled order")
	}
	if !req.Amount.IsPositive() {
		return models.Order{}, validationErr("payment amount must be greater than zero")
	}
	if req.Amount.GreaterThan(order.Balance) {
		return models.Order{}, validationErr("payment exceeds outstanding balance")
	}
	method := req.Method
	if method == "" {
		method = models.PaymentCash
	}

	payments := make([]models.Payment, len(order.Payments), len(order.Payments)+1)
	copy(payments, order.Payments)
	order.Payments = append(payments, models.Payment{
		ID:     uuid.NewString(),
		Amount: req.Amount,
		Method: method,
		Date:   timeutil.Now(),
	})
	derive.ApplyTotals(&order)

	s.Store.Dispatch(state.UpdateOrder{Order: order})
	return order, nil
}

// AssignmentGroups returns an item's grouped editing view
func (s *OrderService) AssignmentGroups(orderID, itemID string) ([]assign.Group, error) {
	order, ok := s.Store.State().FindOrder(orderID)
	if !ok {
		return nil, ErrNotFound
	}
	for _, item := range order.Items {
		if item.ID == itemID {
			groups := assign.GroupAssignments(item.Assignments)
			if groups == nil {
				groups = []assign.Group{}
			}
			return groups, nil
		}
	}
	return nil, ErrNotFound
}

// SaveAssignments runs the grouped edit through the reconciler and
// persists the re-expanded per-unit array. Over-assignment rejects the
// whole edit with the prior state untouched.
func (s *OrderService) SaveAssignments(orderID, itemID string, groups []models.AssignmentGroupRequest) (models.Order, error) {
	st := s.Store.State()
	order, ok := st.FindOrder(orderID)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if !order.Status.IsActive() {
		return models.Order{}, validationErr("order is no longer editable")
	}

	itemIdx := -1
	for i, item := range order.Items {
		if item.ID == itemID {
			itemIdx = i
			break
		}
	}
	if itemIdx == -1 {
		return models.Order{}, ErrNotFound
	}

	for _, g := range groups {
		if g.EmployeeID != "" {
			if _, ok := st.FindEmployee(g.EmployeeID); !ok {
				return models.Order{}, validationErr("unknown employee: " + g.EmployeeID)
			}
		}
		if g.Payment.IsNegative() {
			return models.Order{}, validationErr("per-unit payment cannot be negative")
		}
	}

	expanded := make([]assign.Group, 0, len(groups))
	for _, g := range groups {
		expanded = append(expanded, assign.Group{EmployeeID: g.EmployeeID, Quantity: g.Quantity, Payment: g.Payment})
	}
	assignments, err := assign.Expand(order.Items[itemIdx], expanded)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.LineItem, len(order.Items))
	copy(items, order.Items)
	items[itemIdx].Assignments = assignments
	order.Items = items
	derive.ApplyTotals(&order)

	s.Store.Dispatch(state.UpdateOrder{Order: order})
	return order, nil
}
