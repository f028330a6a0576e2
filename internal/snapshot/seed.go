package snapshot

import "tailor-backend/internal/models"

// DefaultSnapshot is the built-in dataset used on first run or when the
// persisted snapshot cannot be read.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Language:     models.LanguageEnglish,
		Customers:    []models.Customer{},
		Measurements: []models.Measurement{},
		Orders:       []models.Order{},
		Employees:    []models.Employee{},
		GarmentTypes: []models.GarmentTypeDefinition{
			{Name: "Shirt", MeasurementFields: []string{"Length", "Chest", "Waist", "Shoulder", "Sleeve Length", "Collar"}},
			{Name: "Pant", MeasurementFields: []string{"Length", "Waist", "Hip", "Thigh", "Knee", "Bottom"}},
			{Name: "Kurta", MeasurementFields: []string{"Length", "Chest", "Waist", "Shoulder", "Sleeve Length"}},
			{Name: "Blouse", MeasurementFields: []string{"Length", "Chest", "Waist", "Shoulder", "Sleeve Length", "Front Neck", "Back Neck"}},
		},
		ShopInfo: models.ShopInfo{
			Name:    "Deepak Tailors",
			Tagline: "Fine Stitching Since 1995",
			Address: "Shop 4, Main Market Road",
			Phone:   "9876543210",
		},
	}
}
