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

type OrderHandler struct {
	Service   *services.OrderService
	Customers *services.CustomerService
	Invoices  *services.InvoiceService
	Settings  *services.SettingsService
}

func NewOrderHandler(s *services.OrderService, customers *services.CustomerService, invoices *services.InvoiceService, settings *services.SettingsService) *OrderHandler {
	return &OrderHandler{Service: s, Customers: customers, Invoices: invoices, Settings: settings}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List())
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, view)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.UpdateStatus(mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.AddPayment(mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

// GetAssignments returns the item's work split grouped by employee,
// the form model the assignment editor works on
func (h *OrderHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, itemID := vars["id"], vars["itemId"]

	groups, err := h.Service.AssignmentGroups(orderID, itemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.Service.Get(orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	for _, item := range view.Order.Items {
		if item.ID == itemID {
			utils.JSON(w, http.StatusOK, map[string]interface{}{
				"groups":    groups,
				"quantity":  item.Quantity,
				"laborCost": item.LaborCost(),
			})
			return
		}
	}
	utils.Error(w, http.StatusNotFound, "not found")
}

func (h *OrderHandler) SaveAssignments(w http.ResponseWriter, r *http.Request) {
	var groups []models.AssignmentGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&groups); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	order, err := h.Service.SaveAssignments(vars["id"], vars["itemId"], groups)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data, err := h.Invoices.OrderInvoicePDF(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", id))
	w.Write(data)
}

// WhatsAppLink builds a wa.me link with the order confirmation
// message for the customer's phone
func (h *OrderHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	customer, err := h.Customers.Get(view.Order.CustomerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	msg := whatsapp.OrderMessage(h.Settings.ShopInfo(), customer, view.Order)
	utils.JSON(w, http.StatusOK, map[string]string{"link": whatsapp.Link(customer.Phone, msg)})
}
