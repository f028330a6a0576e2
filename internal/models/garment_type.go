package models

// GarmentTypeDefinition names a garment type and the ordered list of
// measurement fields taken for it. Name acts as the key, unique
// case-insensitively across the application.
type GarmentTypeDefinition struct {
	Name              string   `json:"name"`
	MeasurementFields []string `json:"measurementFields"`
}

type CreateGarmentTypeRequest struct {
	Name              string   `json:"name"`
	MeasurementFields []string `json:"measurementFields"`
}
