package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addClientHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/add_client"
	applyDiscountHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/apply_discount"
	cancelClientBookingsHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/cancel_client_bookings"
	createBookingHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/create_booking"
	getReportHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/get_report"
	listBookingsHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/list_clients"
	listEquipmentHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/list_equipment"
	listHallsHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/list_halls"
	mostExpensiveHallHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/most_expensive_hall"
	updateClientPhoneHandler "github.com/m0rkovka/LS-BookingService/internal/api/handlers/update_client_phone"
	"github.com/m0rkovka/LS-BookingService/internal/api/middleware"
	"github.com/m0rkovka/LS-BookingService/internal/config"
	"github.com/m0rkovka/LS-BookingService/internal/domain"
	bookingRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
	bookingsService "github.com/m0rkovka/LS-BookingService/internal/service/bookings"
	catalogService "github.com/m0rkovka/LS-BookingService/internal/service/catalog"
	clientsService "github.com/m0rkovka/LS-BookingService/internal/service/clients"
	createBookingUC "github.com/m0rkovka/LS-BookingService/internal/usecase/create_booking"
	"github.com/m0rkovka/LS-BookingService/pkg/logger"
	"github.com/m0rkovka/LS-BookingService/pkg/metrics"
	"github.com/m0rkovka/LS-BookingService/pkg/txmanager"
	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var admissionMetrics createBookingUC.Metrics = createBookingUC.NopMetrics{}
	var metricsCollector *metrics.Metrics

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		admissionMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища в памяти
	catalogRepository := catalogRepo.NewRepository()
	clientRepository := clientRepo.NewRepository()
	bookingRepository := bookingRepo.NewRepository()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, clientRepository, log)

	// Заполняем каталог из конфигурации
	if err := seedCatalog(cfg, catalogSvc, log); err != nil {
		log.Fatal("Failed to seed catalog: %v", err)
	}

	// Границы admission: длительность и часы работы студии
	bounds, err := admissionBounds(cfg)
	if err != nil {
		log.Fatal("Invalid studio config: %v", err)
	}

	// Инициализируем use case создания бронирования
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		clientRepository,
		txmanager.NewManager(),
		admissionMetrics,
		bounds,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelClientBookings := cancelClientBookingsHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	addClient := addClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	updateClientPhone := updateClientPhoneHandler.NewHandler(clientsSvc, log)
	applyDiscount := applyDiscountHandler.NewHandler(clientsSvc, log)
	listHalls := listHallsHandler.NewHandler(catalogSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(catalogSvc, log)
	mostExpensiveHall := mostExpensiveHallHandler.NewHandler(catalogSvc, log)
	getReport := getReportHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/halls/most-expensive", mostExpensiveHall.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/clients", addClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/phone", updateClientPhone.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{clientId}/discount", applyDiscount.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/bookings", cancelClientBookings.Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	api.HandleFunc("/report", getReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

// seedCatalog регистрирует залы и оборудование из конфигурации
func seedCatalog(cfg *config.Config, svc *catalogService.Service, log *logger.Logger) error {
	ctx := context.Background()

	for _, hall := range cfg.Halls {
		err := svc.RegisterHall(ctx, domain.Hall{
			Number:     hall.Number,
			HourlyRate: hall.HourlyRate,
			Capacity:   hall.Capacity,
		})
		if err != nil {
			return fmt.Errorf("hall %d: %w", hall.Number, err)
		}
	}

	for _, item := range cfg.Equipment {
		err := svc.RegisterEquipment(ctx, domain.EquipmentItem{
			Name:       item.Name,
			HourlyRate: item.HourlyRate,
		})
		if err != nil {
			return fmt.Errorf("equipment %q: %w", item.Name, err)
		}
	}

	log.Info("Catalog seeded: %d halls, %d equipment items", len(cfg.Halls), len(cfg.Equipment))
	return nil
}

// admissionBounds собирает границы admission из конфигурации студии
func admissionBounds(cfg *config.Config) (createBookingUC.Bounds, error) {
	openTime, err := types.NewTimeStringFromString(cfg.Studio.OpenTime)
	if err != nil {
		return createBookingUC.Bounds{}, fmt.Errorf("open_time: %w", err)
	}

	closeTime, err := types.NewTimeStringFromString(cfg.Studio.CloseTime)
	if err != nil {
		return createBookingUC.Bounds{}, fmt.Errorf("close_time: %w", err)
	}

	return createBookingUC.Bounds{
		MinDurationHours: cfg.Studio.MinDurationHours,
		MaxDurationHours: cfg.Studio.MaxDurationHours,
		OpenTime:         openTime,
		CloseTime:        closeTime,
	}, nil
}
