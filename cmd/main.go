package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/barberhq/scheduling-service/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/barberhq/scheduling-service/internal/api/handlers/create_professional"
	createServiceHandler "github.com/barberhq/scheduling-service/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/barberhq/scheduling-service/internal/api/handlers/delete_appointment"
	deleteProfessionalHandler "github.com/barberhq/scheduling-service/internal/api/handlers/delete_professional"
	deleteServiceHandler "github.com/barberhq/scheduling-service/internal/api/handlers/delete_service"
	getActiveProfessionalsHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_active_professionals"
	getAppointmentHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_appointment"
	getAppointmentStatsHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_appointment_stats"
	getAppointmentsByDateHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_appointments_by_date"
	getAppointmentsByProfessionalHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_appointments_by_professional"
	getDaysWithAppointmentsHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_days_with_appointments"
	getMonthlyRevenueHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_monthly_revenue"
	getProfessionalHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_professional"
	getServiceHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_service"
	getServiceRevenueHandler "github.com/barberhq/scheduling-service/internal/api/handlers/get_service_revenue"
	listAppointmentsHandler "github.com/barberhq/scheduling-service/internal/api/handlers/list_appointments"
	listProfessionalsHandler "github.com/barberhq/scheduling-service/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/barberhq/scheduling-service/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/barberhq/scheduling-service/internal/api/handlers/update_appointment"
	updateProfessionalHandler "github.com/barberhq/scheduling-service/internal/api/handlers/update_professional"
	updateServiceHandler "github.com/barberhq/scheduling-service/internal/api/handlers/update_service"
	"github.com/barberhq/scheduling-service/internal/api/middleware"
	"github.com/barberhq/scheduling-service/internal/config"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
	appointmentsService "github.com/barberhq/scheduling-service/internal/service/appointments"
	catalogService "github.com/barberhq/scheduling-service/internal/service/catalog"
	professionalsService "github.com/barberhq/scheduling-service/internal/service/professionals"
	reportsService "github.com/barberhq/scheduling-service/internal/service/reports"
	createAppointmentUC "github.com/barberhq/scheduling-service/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/barberhq/scheduling-service/internal/usecase/update_appointment"
	"github.com/barberhq/scheduling-service/pkg/dbmetrics"
	"github.com/barberhq/scheduling-service/pkg/logger"
	"github.com/barberhq/scheduling-service/pkg/metrics"
	"github.com/barberhq/scheduling-service/pkg/simpletxmanager"
	"github.com/barberhq/scheduling-service/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
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

	// Применяем миграции схемы
	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(cfg.Database); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		serviceRepository      *serviceRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	reportsSvc := reportsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, appointmentRepository, log)
	professionalSvc := professionalsService.NewService(professionalRepository, txMgr, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		professionalRepository,
		txMgr,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		professionalRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointmentsByDate := getAppointmentsByDateHandler.NewHandler(appointmentSvc, log)
	getAppointmentsByProfessional := getAppointmentsByProfessionalHandler.NewHandler(appointmentSvc, log)
	getDaysWithAppointments := getDaysWithAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentStats := getAppointmentStatsHandler.NewHandler(reportsSvc, log)
	getMonthlyRevenue := getMonthlyRevenueHandler.NewHandler(reportsSvc, log)
	getServiceRevenue := getServiceRevenueHandler.NewHandler(reportsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(professionalSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(professionalSvc, log)
	getActiveProfessionals := getActiveProfessionalsHandler.NewHandler(professionalSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(professionalSvc, log)
	deleteProfessional := deleteProfessionalHandler.NewHandler(professionalSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// --- Записи ---
	// Статические сегменты регистрируются раньше маршрута /{id},
	// иначе mux сматчит "stats" как ID
	r.HandleFunc("/appointments/days-with-appointments", getDaysWithAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/stats", getAppointmentStats.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/revenue/monthly", getMonthlyRevenue.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/revenue/services", getServiceRevenue.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/by-date/{date}", getAppointmentsByDate.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/by-professional/{id:[0-9]+}", getAppointmentsByProfessional.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{id:[0-9]+}", updateAppointment.Handle).Methods(http.MethodPut)
	r.HandleFunc("/appointments/{id:[0-9]+}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	r.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	r.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	r.HandleFunc("/services/{id:[0-9]+}", getService.Handle).Methods(http.MethodGet)
	r.HandleFunc("/services/{id:[0-9]+}", updateService.Handle).Methods(http.MethodPut)
	r.HandleFunc("/services/{id:[0-9]+}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Мастера ---
	r.HandleFunc("/professionals/active", getActiveProfessionals.Handle).Methods(http.MethodGet)
	r.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	r.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	r.HandleFunc("/professionals/{id:[0-9]+}", getProfessional.Handle).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{id:[0-9]+}", updateProfessional.Handle).Methods(http.MethodPut)
	r.HandleFunc("/professionals/{id:[0-9]+}", deleteProfessional.Handle).Methods(http.MethodDelete)

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

// runMigrations применяет недостающие миграции схемы при старте
func runMigrations(cfg config.DatabaseConfig) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.URL())
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}
