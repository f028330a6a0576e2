package services

import (
	"github.com/google/uuid"

	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

type MeasurementService struct {
	Store *state.Store
}

func NewMeasurementService(store *state.Store) *MeasurementService {
	return &MeasurementService{Store: store}
}

func (s *MeasurementService) ListByCustomer(customerID string) []models.Measurement {
	out := []models.Measurement{}
	for _, m := range s.Store.State().Measurements {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out
}

// Latest returns the authoritative measurement for a (customer, garment
// type) pair: the newest record by creation time.
func (s *MeasurementService) Latest(customerID, garmentType string) (models.Measurement, error) {
	var latest models.Measurement
	found := false
	for _, m := range s.Store.State().Measurements {
		if m.CustomerID != customerID || m.GarmentType != garmentType {
			continue
		}
		if !found || m.CreatedAt.After(latest.CreatedAt) {
			latest = m
			found = true
		}
	}
	if !found {
		return models.Measurement{}, ErrNotFound
	}
	return latest, nil
}

func (s *MeasurementService) Create(req models.CreateMeasurementRequest) (models.Measurement, error) {
	st := s.Store.State()
	if _, ok := st.FindCustomer(req.CustomerID); !ok {
		return models.Measurement{}, ErrNotFound
	}
	if req.GarmentType == "" {
		return models.Measurement{}, validationErr("garment type is required")
	}
	values := req.Values
	if values == nil {
		values = map[string]float64{}
	}
	m := models.Measurement{
		ID:          uuid.NewString(),
		CustomerID:  req.CustomerID,
		GarmentType: req.GarmentType,
		Values:      values,
		CreatedAt:   timeutil.Now(),
	}
	s.Store.Dispatch(state.AddMeasurement{Measurement: m})
	return m, nil
}

func (s *MeasurementService) Update(id string, req models.UpdateMeasurementRequest) (models.Measurement, error) {
	var target models.Measurement
	found := false
	for _, m := range s.Store.State().Measurements {
		if m.ID == id {
			target = m
			found = true
			break
		}
	}
	if !found {
		return models.Measurement{}, ErrNotFound
	}
	if req.Values != nil {
		target.Values = req.Values
	}
	s.Store.Dispatch(state.UpdateMeasurement{Measurement: target})
	return target, nil
}
