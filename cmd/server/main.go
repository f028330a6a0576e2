package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"tailor-backend/internal/auth"
	"tailor-backend/internal/backup"
	"tailor-backend/internal/config"
	"tailor-backend/internal/handlers"
	"tailor-backend/internal/health"
	h "tailor-backend/internal/http"
	"tailor-backend/internal/middleware"
	"tailor-backend/internal/monitoring"
	"tailor-backend/internal/services"
	"tailor-backend/internal/snapshot"
	"tailor-backend/internal/state"
)

// connectSnapshotStore tries Redis first, then falls back to Postgres.
// One of them must answer, the whole application state lives there.
func connectSnapshotStore(cfg *config.Config) snapshot.Store {
	redisStore, err := snapshot.NewRedisStore(cfg.RedisAddr(), cfg.Redis.Password)
	if err == nil {
		log.Println("[Snapshot] Connected to Redis")
		return redisStore
	}
	log.Printf("[Snapshot] Redis unavailable: %v, trying Postgres", err)

	pgStore, err := snapshot.NewPostgresStore(cfg.PostgresConnString())
	if err == nil {
		log.Println("[Snapshot] Connected to Postgres")
		return pgStore
	}
	log.Fatalf("[Snapshot] No storage backend available: %v", err)
	return nil
}

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	snapStore := connectSnapshotStore(cfg)

	// Load persisted state (or seed defaults on first run) and hook up
	// the save-on-every-change observer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	initial := snapshot.Load(ctx, snapStore)
	cancel()

	store := state.NewStore(initial)
	store.Subscribe(snapshot.Saver(snapStore))

	healthChecker := health.NewHealthChecker(snapStore)

	// Monitoring dashboard on its own port
	go monitoring.NewMonitoringServer(store, snapStore, cfg.Monitoring.Port).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Optional offsite backup uploader
	var uploader *backup.Uploader
	if cfg.Backup.Enabled {
		var err error
		uploader, err = backup.NewUploader(context.Background(), backup.Options{
			Endpoint:  cfg.Backup.Endpoint,
			Region:    cfg.Backup.Region,
			Bucket:    cfg.Backup.Bucket,
			AccessKey: cfg.Backup.AccessKey,
			SecretKey: cfg.Backup.SecretKey,
		})
		if err != nil {
			log.Printf("[Backup] Offsite uploads disabled: %v", err)
		} else {
			log.Println("[Backup] Offsite uploads enabled")
		}
	}

	// Services
	authService, err := services.NewAuthService(cfg, store, jwtManager, snapStore)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}
	customerService := services.NewCustomerService(store)
	measurementService := services.NewMeasurementService(store)
	garmentTypeService := services.NewGarmentTypeService(store)
	employeeService := services.NewEmployeeService(store)
	orderService := services.NewOrderService(store, measurementService)
	invoiceService := services.NewInvoiceService(store, employeeService)
	settingsService := services.NewSettingsService(store)
	backupService := services.NewBackupService(store, uploader)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	measurementHandler := handlers.NewMeasurementHandler(measurementService)
	garmentTypeHandler := handlers.NewGarmentTypeHandler(garmentTypeService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, invoiceService, settingsService)
	orderHandler := handlers.NewOrderHandler(orderService, customerService, invoiceService, settingsService)
	dashboardHandler := handlers.NewDashboardHandler(store, orderService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, backupService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		customerHandler,
		measurementHandler,
		garmentTypeHandler,
		employeeHandler,
		orderHandler,
		dashboardHandler,
		settingsHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
