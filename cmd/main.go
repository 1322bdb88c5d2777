package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/create_booking"
	createTimeBlockHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/create_time_block"
	deleteTimeBlockHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/delete_time_block"
	findNextSlotHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/find_next_slot"
	getAvailabilityHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/get_availability"
	getAvailabilityRangeHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/get_availability_range"
	getBookingHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/get_customer_bookings"
	getPackageBookingsHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/get_package_bookings"
	listTimeBlocksHandler "github.com/voyagecrest/charter-booking-service/internal/api/handlers/list_time_blocks"
	"github.com/voyagecrest/charter-booking-service/internal/api/middleware"
	"github.com/voyagecrest/charter-booking-service/internal/config"
	"github.com/voyagecrest/charter-booking-service/internal/domain"
	bookingRepo "github.com/voyagecrest/charter-booking-service/internal/infra/storage/booking"
	timeblockRepo "github.com/voyagecrest/charter-booking-service/internal/infra/storage/timeblock"
	fleetServiceClient "github.com/voyagecrest/charter-booking-service/internal/integrations/fleetservice"
	"github.com/voyagecrest/charter-booking-service/internal/jobs"
	bookingsService "github.com/voyagecrest/charter-booking-service/internal/service/bookings"
	timeblocksService "github.com/voyagecrest/charter-booking-service/internal/service/timeblocks"
	createBookingUC "github.com/voyagecrest/charter-booking-service/internal/usecase/create_booking"
	createTimeBlockUC "github.com/voyagecrest/charter-booking-service/internal/usecase/create_time_block"
	findNextSlotUC "github.com/voyagecrest/charter-booking-service/internal/usecase/find_next_slot"
	getAvailabilityUC "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability"
	getAvailabilityRangeUC "github.com/voyagecrest/charter-booking-service/internal/usecase/get_availability_range"
	"github.com/voyagecrest/charter-booking-service/pkg/dbmetrics"
	"github.com/voyagecrest/charter-booking-service/pkg/logger"
	"github.com/voyagecrest/charter-booking-service/pkg/metrics"
	"github.com/voyagecrest/charter-booking-service/pkg/simpletxmanager"
	"github.com/voyagecrest/charter-booking-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting charter-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the fleet catalog client
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FleetService=%s timeout=%ds)",
		cfg.FleetService.URL, cfg.FleetService.Timeout)

	// Build the slot catalog and the availability calculator
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	calculator := domain.NewCalculator(catalog)
	log.Info("Slot catalog loaded with %d slots", catalog.Len())

	// Initialize repositories (with or without metrics instrumentation)
	var (
		bookingRepository *bookingRepo.Repository
		blockRepository   *timeblockRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = timeblockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = timeblockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	timeblockSvc := timeblocksService.NewService(blockRepository, log)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetClient,
		calculator,
		txMgr,
		cfg.Booking.MaxLookaheadDays,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetClient,
		calculator,
		log,
	)

	getAvailabilityRangeUseCase := getAvailabilityRangeUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetClient,
		calculator,
		log,
	)

	findNextSlotUseCase := findNextSlotUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetClient,
		calculator,
		cfg.Booking.MaxLookaheadDays,
		log,
	)

	createTimeBlockUseCase := createTimeBlockUC.NewUseCase(
		blockRepository,
		fleetClient,
		log,
	)

	// Initialize handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailabilityRange := getAvailabilityRangeHandler.NewHandler(getAvailabilityRangeUseCase, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getPackageBookings := getPackageBookingsHandler.NewHandler(bookingSvc, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(createTimeBlockUseCase, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(timeblockSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(timeblockSvc, log)

	// Background job: move finished charters to completed
	completionJob := jobs.NewCompletionJob(bookingRepository, cfg.Booking.CompletionSchedule, log)
	if err := completionJob.Start(); err != nil {
		log.Fatal("Failed to start completion job: %v", err)
	}

	// Configure the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Availability ---
	api.HandleFunc("/packages/{packageId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}/availability/range",
		getAvailabilityRange.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}/next-available",
		findNextSlot.Handle).Methods(http.MethodGet)

	// --- Bookings ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}/bookings", getPackageBookings.Handle).Methods(http.MethodGet)

	// --- Time blocks (administrative) ---
	api.HandleFunc("/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-blocks/{blockId}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	completionJob.Stop()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
