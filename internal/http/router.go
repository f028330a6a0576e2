package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tailor-backend/internal/handlers"
	"tailor-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	measurementHandler *handlers.MeasurementHandler,
	garmentTypeHandler *handlers.GarmentTypeHandler,
	employeeHandler *handlers.EmployeeHandler,
	orderHandler *handlers.OrderHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Everything under /api requires a valid token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.RequireAuth)

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Dashboard
	api.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")

	// Customers
	api.HandleFunc("/customers", customerHandler.ListCustomers).Methods("GET")
	api.HandleFunc("/customers", customerHandler.CreateCustomer).Methods("POST")
	api.HandleFunc("/customers/{id}", customerHandler.GetCustomer).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.UpdateCustomer).Methods("PUT")

	// Measurements
	api.HandleFunc("/measurements", measurementHandler.ListByCustomer).Methods("GET")
	api.HandleFunc("/measurements", measurementHandler.CreateMeasurement).Methods("POST")
	api.HandleFunc("/measurements/latest", measurementHandler.Latest).Methods("GET")
	api.HandleFunc("/measurements/{id}", measurementHandler.UpdateMeasurement).Methods("PUT")

	// Garment types
	api.HandleFunc("/garment-types", garmentTypeHandler.ListGarmentTypes).Methods("GET")
	api.HandleFunc("/garment-types", garmentTypeHandler.CreateGarmentType).Methods("POST")

	// Employees
	api.HandleFunc("/employees", employeeHandler.ListEmployees).Methods("GET")
	api.HandleFunc("/employees", employeeHandler.CreateEmployee).Methods("POST")
	api.HandleFunc("/employees/workload", employeeHandler.GetWorkload).Methods("GET")
	api.HandleFunc("/employees/{id}", employeeHandler.GetEmployee).Methods("GET")
	api.HandleFunc("/employees/{id}", employeeHandler.UpdateEmployee).Methods("PUT")
	api.HandleFunc("/employees/{id}/payments", employeeHandler.AddPayment).Methods("POST")
	api.HandleFunc("/employees/{id}/ledger", employeeHandler.GetLedger).Methods("GET")
	api.HandleFunc("/employees/{id}/statement", employeeHandler.GetStatement).Methods("GET")
	api.HandleFunc("/employees/{id}/statement/pdf", employeeHandler.DownloadStatementPDF).Methods("GET")
	api.HandleFunc("/employees/{id}/statement/whatsapp", employeeHandler.StatementWhatsAppLink).Methods("GET")

	// Orders
	api.HandleFunc("/orders", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", orderHandler.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", orderHandler.UpdateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/orders/{id}/payments", orderHandler.AddPayment).Methods("POST")
	api.HandleFunc("/orders/{id}/items/{itemId}/assignments", orderHandler.GetAssignments).Methods("GET")
	api.HandleFunc("/orders/{id}/items/{itemId}/assignments", orderHandler.SaveAssignments).Methods("PUT")
	api.HandleFunc("/orders/{id}/invoice", orderHandler.DownloadInvoicePDF).Methods("GET")
	api.HandleFunc("/orders/{id}/whatsapp", orderHandler.WhatsAppLink).Methods("GET")

	// Settings and backups
	api.HandleFunc("/settings/preferences", settingsHandler.GetPreferences).Methods("GET")
	api.HandleFunc("/settings/preferences", settingsHandler.UpdatePreferences).Methods("PUT")
	api.HandleFunc("/settings/shop", settingsHandler.GetShopInfo).Methods("GET")
	api.HandleFunc("/settings/shop", settingsHandler.UpdateShopInfo).Methods("PUT")
	api.HandleFunc("/settings/backup/export", settingsHandler.ExportBackup).Methods("GET")
	api.HandleFunc("/settings/backup/import", settingsHandler.ImportBackup).Methods("POST")
	api.HandleFunc("/settings/backup/offsite", settingsHandler.ListOffsiteBackups).Methods("GET")

	return r
}
