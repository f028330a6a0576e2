package services

import (
	"strings"

	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
)

type GarmentTypeService struct {
	Store *state.Store
}

func NewGarmentTypeService(store *state.Store) *GarmentTypeService {
	return &GarmentTypeService{Store: store}
}

func (s *GarmentTypeService) List() []models.GarmentTypeDefinition {
	types := s.Store.State().GarmentTypes
	if types == nil {
		return []models.GarmentTypeDefinition{}
	}
	return types
}

// Add registers a garment type. The transition itself silently ignores
// case-insensitive duplicates, so the collision is checked here first to
// give the caller an explicit answer instead of a silent no-op.
func (s *GarmentTypeService) Add(req models.CreateGarmentTypeRequest) (models.GarmentTypeDefinition, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.GarmentTypeDefinition{}, validationErr("garment type name is required")
	}
	for _, gt := range s.Store.State().GarmentTypes {
		if strings.EqualFold(gt.Name, name) {
			return models.GarmentTypeDefinition{}, validationErr("garment type already exists: " + gt.Name)
		}
	}
	def := models.GarmentTypeDefinition{
		Name:              name,
		MeasurementFields: req.MeasurementFields,
	}
	if def.MeasurementFields == nil {
		def.MeasurementFields = []string{}
	}
	s.Store.Dispatch(state.AddGarmentType{GarmentType: def})
	return def, nil
}
