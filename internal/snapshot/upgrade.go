package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

// Raw mirror types with optional fields, so blobs written by older
// releases parse without loss and Upgrade can see what is missing.
// Historical gaps: line items predating per-unit assignments, assignments
// predating the payment field, employees predating payments and phone.

type rawAssignment struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId,omitempty"`
	WorkPhoto  string           `json:"workPhoto,omitempty"`
	Payment    *decimal.Decimal `json:"payment"`
}

type rawLineItem struct {
	ID                  string             `json:"id"`
	GarmentType         string             `json:"garmentType"`
	Quantity            int                `json:"quantity"`
	UnitPrice           decimal.Decimal    `json:"unitPrice"`
	FabricSource        models.FabricSource `json:"fabricSource"`
	Notes               string             `json:"notes,omitempty"`
	MeasurementSnapshot map[string]float64 `json:"measurementSnapshot"`
	Photo               string             `json:"photo,omitempty"`
	Assignments         *[]rawAssignment   `json:"assignments"`
}

type rawOrder struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	CustomerID  string             `json:"customerId"`
	OrderDate   time.Time          `json:"orderDate"`
	DueDate     time.Time          `json:"dueDate"`
	Status      models.OrderStatus `json:"status"`
	Items       []rawLineItem      `json:"items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	Discount    decimal.Decimal    `json:"discount"`
	Total       decimal.Decimal    `json:"total"`
	Advance     decimal.Decimal    `json:"advance"`
	Payments    []models.Payment   `json:"payments"`
	Balance     decimal.Decimal    `json:"balance"`
	Notes       string             `json:"notes,omitempty"`
}

type rawEmployee struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Role      string                    `json:"role"`
	Phone     *string                   `json:"phone"`
	CreatedAt time.Time                 `json:"createdAt"`
	Payments  *[]models.EmployeePayment `json:"payments"`
}

type rawSnapshot struct {
	Language     models.Language                `json:"language"`
	Customers    []models.Customer              `json:"customers"`
	Measurements []models.Measurement           `json:"measurements"`
	Orders       []rawOrder                     `json:"orders"`
	GarmentTypes []models.GarmentTypeDefinition `json:"garmentTypes"`
	Employees    []rawEmployee                  `json:"employees"`
	ShopInfo     models.ShopInfo                `json:"shopInfo"`
}

// Decode parses a persisted blob and runs the upgrade pipeline
func Decode(data []byte) (Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: parse failed: %w", err)
	}
	return upgrade(raw), nil
}

// Encode serializes a snapshot as the persisted text blob
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode failed: %w", err)
	}
	return data, nil
}

// upgrade applies each historical fix in sequence and produces a
// current-schema snapshot
func upgrade(raw rawSnapshot) Snapshot {
	snap := Snapshot{
		Language:     raw.Language,
		Customers:    raw.Customers,
		Measurements: raw.Measurements,
		GarmentTypes: raw.GarmentTypes,
		ShopInfo:     raw.ShopInfo,
	}
	if snap.Language == "" {
		snap.Language = models.LanguageEnglish
	}

	snap.Orders = make([]models.Order, 0, len(raw.Orders))
	for _, o := range raw.Orders {
		order := models.Order{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID,
			OrderDate:   o.OrderDate,
			DueDate:     o.DueDate,
			Status:      o.Status,
			Subtotal:    o.Subtotal,
			Discount:    o.Discount,
			Total:       o.Total,
			Advance:     o.Advance,
			Payments:    o.Payments,
			Balance:     o.Balance,
			Notes:       o.Notes,
		}
		order.Items = make([]models.LineItem, 0, len(o.Items))
		for _, it := range o.Items {
			order.Items = append(order.Items, upgradeLineItem(it))
		}
		snap.Orders = append(snap.Orders, order)
	}

	snap.Employees = make([]models.Employee, 0, len(raw.Employees))
	for _, e := range raw.Employees {
		emp := models.Employee{
			ID:        e.ID,
			Name:      e.Name,
			Role:      e.Role,
			CreatedAt: e.CreatedAt,
			Payments:  []models.EmployeePayment{},
		}
		if e.Phone != nil {
			emp.Phone = *e.Phone
		}
		if e.Payments != nil {
			emp.Payments = *e.Payments
		}
		snap.Employees = append(snap.Employees, emp)
	}

	return snap
}

func upgradeLineItem(it rawLineItem) models.LineItem {
	item := models.LineItem{
		ID:                  it.ID,
		GarmentType:         it.GarmentType,
		Quantity:            it.Quantity,
		UnitPrice:           it.UnitPrice,
		FabricSource:        it.FabricSource,
		Notes:               it.Notes,
		MeasurementSnapshot: it.MeasurementSnapshot,
		Photo:               it.Photo,
	}
	if it.Assignments == nil {
		// Pre-assignment blobs: synthesize one unassigned zero-payment
		// entry per unit
		quantity := it.Quantity
		if quantity < 1 {
			quantity = 1
		}
		item.Assignments = make([]models.WorkAssignment, 0, quantity)
		for i := 0; i < quantity; i++ {
			item.Assignments = append(item.Assignments, models.WorkAssignment{
				ID:      fmt.Sprintf("%s-A%d", it.ID, i+1),
				Payment: decimal.Zero,
			})
		}
		return item
	}
	item.Assignments = make([]models.WorkAssignment, 0, len(*it.Assignments))
	for _, a := range *it.Assignments {
		payment := decimal.Zero
		if a.Payment != nil {
			payment = *a.Payment
		}
		item.Assignments = append(item.Assignments, models.WorkAssignment{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			WorkPhoto:  a.WorkPhoto,
			Payment:    payment,
		})
	}
	return item
}
