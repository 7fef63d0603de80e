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

	cancelAppointmentHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/create_appointment"
	createTimeOffHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/create_time_off"
	deleteTimeOffHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/delete_time_off"
	getAppointmentHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_client_appointments"
	getOccupancyReportHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_occupancy_report"
	getSettingsHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_settings"
	getStaffAppointmentsHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_staff_appointments"
	getWorkingHoursHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/get_working_hours"
	updateAppointmentStatusHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/update_appointment_status"
	updateSettingsHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/update_settings"
	updateWorkingHoursHandler "github.com/akozyrev/barbershop-booking-service/internal/api/handlers/update_working_hours"
	"github.com/akozyrev/barbershop-booking-service/internal/api/middleware"
	"github.com/akozyrev/barbershop-booking-service/internal/config"
	appointmentRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/schedule"
	settingsRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/settings"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
	notifyServiceClient "github.com/akozyrev/barbershop-booking-service/internal/integrations/notifyservice"
	appointmentsService "github.com/akozyrev/barbershop-booking-service/internal/service/appointments"
	scheduleService "github.com/akozyrev/barbershop-booking-service/internal/service/schedule"
	settingsService "github.com/akozyrev/barbershop-booking-service/internal/service/settings"
	createAppointmentUC "github.com/akozyrev/barbershop-booking-service/internal/usecase/create_appointment"
	generateSlotsUC "github.com/akozyrev/barbershop-booking-service/internal/usecase/generate_slots"
	occupancyReportUC "github.com/akozyrev/barbershop-booking-service/internal/usecase/occupancy_report"
	"github.com/akozyrev/barbershop-booking-service/pkg/dbmetrics"
	"github.com/akozyrev/barbershop-booking-service/pkg/logger"
	"github.com/akozyrev/barbershop-booking-service/pkg/metrics"
	"github.com/akozyrev/barbershop-booking-service/pkg/simpletxmanager"
	"github.com/akozyrev/barbershop-booking-service/pkg/txmanager"
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

	log.Info("Starting barbershop-booking-service...")
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

	// Инициализируем клиента сервиса уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		settingsRepository    *settingsRepo.Repository
		catalogRepository     *catalogRepo.Repository
		staffRepository       *staffRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		staffRepository,
		notifyClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		staffRepository,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		staffRepository,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		settingsRepository,
		catalogRepository,
		staffRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		settingsRepository,
		catalogRepository,
		staffRepository,
		notifyClient,
		txMgr,
		log,
	)

	occupancyReportUseCase := occupancyReportUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		staffRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(generateSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getOccupancyReport := getOccupancyReportHandler.NewHandler(occupancyReportUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createTimeOff := createTimeOffHandler.NewHandler(scheduleSvc, log)
	deleteTimeOff := deleteTimeOffHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Получение доступных слотов для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение настроек салона
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Получение недельного расписания барбера
	api.HandleFunc("/staff/{staffId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиентов ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Обновление статуса записи (барбер или менеджер)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Барберы ---
	// Записи барбера с фильтрацией
	protected.HandleFunc("/staff/{staffId}/appointments", getStaffAppointments.Handle).Methods(http.MethodGet)

	// Замена недельного расписания барбера
	protected.HandleFunc("/staff/{staffId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// Создание отгула
	protected.HandleFunc("/staff/{staffId}/time-off", createTimeOff.Handle).Methods(http.MethodPost)

	// Удаление отгула
	protected.HandleFunc("/staff/{staffId}/time-off/{timeOffId}", deleteTimeOff.Handle).Methods(http.MethodDelete)

	// --- Управление салоном (для менеджеров) ---
	// Отчет по занятости барберов
	protected.HandleFunc("/reports/occupancy", getOccupancyReport.Handle).Methods(http.MethodGet)

	// Обновление настроек салона
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
