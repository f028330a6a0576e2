package handlers

import (
	"errors"
	"net/http"

	"tailor-backend/internal/assign"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

// writeServiceError maps service errors to HTTP statuses: validation
// problems are 400, missing records 404, anything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	var oaErr *assign.OverAssignedError
	switch {
	case errors.As(err, &vErr):
		utils.Error(w, http.StatusBadRequest, vErr.Message)
	case errors.As(err, &oaErr):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
