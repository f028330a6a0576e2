package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusNew        OrderStatus = "New"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further status transition is possible
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether order contents may still be edited.
// Items, assignments and payments are frozen once work is completed.
func (s OrderStatus) IsActive() bool {
	switch s {
	case StatusCompleted, StatusDelivered, StatusCancelled:
		return false
	}
	return true
}

// CanTransitionTo enforces the one-directional status machine:
// InProgress -> Completed -> Delivered, with Cancelled reachable from
// any non-terminal state. No transition ever reverses status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case StatusCompleted:
		return s == StatusInProgress
	case StatusDelivered:
		return s == StatusCompleted
	case StatusCancelled:
		return !s.IsTerminal()
	}
	return false
}

type FabricSource string

const (
	FabricCustomer FabricSource = "Customer"
	FabricShop     FabricSource = "Shop"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
)

// WorkAssignment records which employee (if any) produces one physical
// garment unit and the per-unit labor amount they are paid for it.
type WorkAssignment struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId,omitempty"`
	WorkPhoto  string          `json:"workPhoto,omitempty"`
	Payment    decimal.Decimal `json:"payment"`
}

// LineItem is one garment order-line. Assignments always holds exactly
// Quantity entries, one per physical unit.
type LineItem struct {
	ID                  string             `json:"id"`
	GarmentType         string             `json:"garmentType"`
	Quantity            int                `json:"quantity"`
	UnitPrice           decimal.Decimal    `json:"unitPrice"`
	FabricSource        FabricSource       `json:"fabricSource"`
	Notes               string             `json:"notes,omitempty"`
	MeasurementSnapshot map[string]float64 `json:"measurementSnapshot"`
	Photo               string             `json:"photo,omitempty"`
	Assignments         []WorkAssignment   `json:"assignments"`
}

// LaborCost is the sum of per-unit payments across the item's assignments
func (li LineItem) LaborCost() decimal.Decimal {
	total := decimal.Zero
	for _, a := range li.Assignments {
		total = total.Add(a.Payment)
	}
	return total
}

// Payment is money received against an order
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method PaymentMethod   `json:"method"`
	Date   time.Time       `json:"date"`
}

type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	CustomerID  string          `json:"customerId"`
	OrderDate   time.Time       `json:"orderDate"`
	DueDate     time.Time       `json:"dueDate"`
	Status      OrderStatus     `json:"status"`
	Items       []LineItem      `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Advance     decimal.Decimal `json:"advance"`
	Payments    []Payment       `json:"payments"`
	Balance     decimal.Decimal `json:"balance"`
	Notes       string          `json:"notes,omitempty"`
}

// IsNew reports whether the order should carry the "New" display badge.
// New is not a stored status; orders are created In Progress and the badge
// is derived from order age.
func (o Order) IsNew(now time.Time) bool {
	return o.Status == StatusInProgress && now.Sub(o.OrderDate) < 24*time.Hour
}

// CreateOrderItemRequest is one order-line as submitted by the client.
// The measurement snapshot is copied server-side from the customer's
// latest measurement for the garment type.
type CreateOrderItemRequest struct {
	GarmentType  string          `json:"garmentType"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	FabricSource FabricSource    `json:"fabricSource"`
	Notes        string          `json:"notes"`
	Photo        string          `json:"photo"`
}

type CreateOrderRequest struct {
	CustomerID string                   `json:"customerId"`
	DueDate    time.Time                `json:"dueDate"`
	Items      []CreateOrderItemRequest `json:"items"`
	Discount   decimal.Decimal          `json:"discount"`
	Advance    decimal.Decimal          `json:"advance"`
	Notes      string                   `json:"notes"`
}

// UpdateOrderRequest edits an order's contents while it is active.
// Existing assignments are carried over per item id; quantity changes
// re-fit the assignment list to the new unit count.
type UpdateOrderRequest struct {
	CustomerID string                   `json:"customerId"`
	DueDate    time.Time                `json:"dueDate"`
	Items      []UpdateOrderItemRequest `json:"items"`
	Discount   decimal.Decimal          `json:"discount"`
	Notes      string                   `json:"notes"`
}

type UpdateOrderItemRequest struct {
	ID           string          `json:"id"`
	GarmentType  string          `json:"garmentType"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	FabricSource FabricSource    `json:"fabricSource"`
	Notes        string          `json:"notes"`
	Photo        string          `json:"photo"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

type CreateOrderPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method PaymentMethod   `json:"method"`
}

// AssignmentGroupRequest is one grouped editing row: a distinct employee,
// a unit count and a uniform per-unit rate.
type AssignmentGroupRequest struct {
	EmployeeID string          `json:"employeeId"`
	Quantity   int             `json:"quantity"`
	Payment    decimal.Decimal `json:"payment"`
}
