package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/internal/whatsapp"
	"tailor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	Service  *services.EmployeeService
	Invoices *services.InvoiceService
	Settings *services.SettingsService
}

func NewEmployeeHandler(s *services.EmployeeService, invoices *services.InvoiceService, settings *services.SettingsService) *EmployeeHandler {
	return &EmployeeHandler{Service: s, Invoices: invoices, Settings: settings}
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List())
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := h.Service.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Service.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := h.Service.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := h.Service.AddPayment(mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, employee)
}

// GetLedger returns the full earnings/payouts history
func (h *EmployeeHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Ledger(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, view)
}

// GetStatement returns only the entries since the balance last
// settled to zero
func (h *EmployeeHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Statement(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, view)
}

func (h *EmployeeHandler) DownloadStatementPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data, err := h.Invoices.EmployeeStatementPDF(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement-%s.pdf", id))
	w.Write(data)
}

// StatementWhatsAppLink builds a wa.me link carrying the current
// settlement summary for the employee's phone
func (h *EmployeeHandler) StatementWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Statement(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if view.Employee.Phone == "" {
		utils.Error(w, http.StatusBadRequest, "employee has no phone number")
		return
	}

	msg := whatsapp.StatementMessage(h.Settings.ShopInfo(), view.Employee, view.Summary)
	utils.JSON(w, http.StatusOK, map[string]string{"link": whatsapp.Link(view.Employee.Phone, msg)})
}

// GetWorkload returns in-progress assignment counts per employee
func (h *EmployeeHandler) GetWorkload(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Workload())
}
