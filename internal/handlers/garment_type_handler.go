package handlers

import (
	"encoding/json"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type GarmentTypeHandler struct {
	Service *services.GarmentTypeService
}

func NewGarmentTypeHandler(s *services.GarmentTypeService) *GarmentTypeHandler {
	return &GarmentTypeHandler{Service: s}
}

func (h *GarmentTypeHandler) ListGarmentTypes(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List())
}

func (h *GarmentTypeHandler) CreateGarmentType(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGarmentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gt, err := h.Service.Add(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, gt)
}
