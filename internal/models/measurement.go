package models

import "time"

// Measurement is one measurement record for a (customer, garment type) pair.
// Multiple records may exist per pair; the latest by CreatedAt is authoritative.
type Measurement struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customerId"`
	GarmentType string            `json:"garmentType"`
	Values     map[string]float64 `json:"measurements"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type CreateMeasurementRequest struct {
	CustomerID  string             `json:"customerId"`
	GarmentType string             `json:"garmentType"`
	Values      map[string]float64 `json:"measurements"`
}

type UpdateMeasurementRequest struct {
	Values map[string]float64 `json:"measurements"`
}
