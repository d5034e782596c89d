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

	cancelBookingHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_booking"
	getChairBookingsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_chair_bookings"
	getClientBookingsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_client_bookings"
	getCompatibleChairsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_compatible_chairs"
	getScheduleHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_schedule"
	updateBookingStatusHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SLN-BookingService/internal/api/middleware"
	"github.com/m04kA/SLN-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/booking"
	chairRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/chair"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/service"
	"github.com/m04kA/SLN-BookingService/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/SLN-BookingService/internal/service/bookings"
	scheduleService "github.com/m04kA/SLN-BookingService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SLN-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_slots"
	getCompatibleChairsUC "github.com/m04kA/SLN-BookingService/internal/usecase/get_compatible_chairs"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/logger"
	"github.com/m04kA/SLN-BookingService/pkg/metrics"
	"github.com/m04kA/SLN-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SLN-BookingService/pkg/txmanager"
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

	log.Info("Starting SLN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента WhatsApp-шлюза для уведомлений
	var notifier createBookingUC.Notifier
	if cfg.Notifier.Enabled {
		notifier = whatsapp.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("WhatsApp notifier initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		notifier = whatsapp.NopClient{}
		log.Info("WhatsApp notifier disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		serviceRepository  *serviceRepo.Repository
		chairRepository    *chairRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		chairRepository = chairRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		chairRepository = chairRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Бизнес-метрики опциональны: при выключенных метриках передаём nil
	var bookingMetrics createBookingUC.Metrics
	var cancelMetrics bookingsService.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		cancelMetrics = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cancelMetrics,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		chairRepository,
		scheduleRepository,
		txMgr,
		notifier,
		bookingMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		chairRepository,
		scheduleRepository,
		log,
	)

	getCompatibleChairsUseCase := getCompatibleChairsUC.NewUseCase(
		chairRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCompatibleChairs := getCompatibleChairsHandler.NewHandler(getCompatibleChairsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getChairBookings := getChairBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Прокидываем X-Request-ID через все запросы
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов кресла на дату
	api.HandleFunc("/chairs/{chairId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор кресел, поддерживающих все выбранные услуги
	api.HandleFunc("/chairs/compatible",
		getCompatibleChairs.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История записей клиента по телефону
	api.HandleFunc("/clients/{phone}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Текущая конфигурация расписания салона
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, для администраторов)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (подтверждение, завершение)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// Записи кресла (лист дня, выгрузки за период)
	protected.HandleFunc("/chairs/{chairId}/bookings", getChairBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации расписания
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
