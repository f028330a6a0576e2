package handlers

import (
	"encoding/json"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type MeasurementHandler struct {
	Service *services.MeasurementService
}

func NewMeasurementHandler(s *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{Service: s}
}

func (h *MeasurementHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	if customerID == "" {
		utils.Error(w, http.StatusBadRequest, "customerId parameter is required")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.ListByCustomer(customerID))
}

// Latest returns the newest measurement for a customer and garment
// type, the one order intake copies from
func (h *MeasurementHandler) Latest(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	garmentType := r.URL.Query().Get("garmentType")
	if customerID == "" || garmentType == "" {
		utils.Error(w, http.StatusBadRequest, "customerId and garmentType parameters are required")
		return
	}

	m, err := h.Service.Latest(customerID, garmentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, m)
}

func (h *MeasurementHandler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := h.Service.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, m)
}

func (h *MeasurementHandler) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := h.Service.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, m)
}
