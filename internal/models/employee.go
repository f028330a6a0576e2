package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Role      string            `json:"role"`
	Phone     string            `json:"phone"`
	CreatedAt time.Time         `json:"createdAt"`
	Payments  []EmployeePayment `json:"payments"`
}

// EmployeePayment is a payout made to an employee against earned work
type EmployeePayment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// CreateEmployeePaymentRequest records a payout; Date defaults to now when zero
type CreateEmployeePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   *time.Time      `json:"date,omitempty"`
	Notes  string          `json:"notes"`
}
