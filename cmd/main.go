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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/create_appointment"
	createSessionHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/delete_session"
	getAvailableBlocksHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/get_available_blocks"
	getDoctorAppointmentsHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/get_doctor_appointments"
	getScheduleEventsHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/get_schedule_events"
	replaceScheduleHandler "github.com/m04kA/SMC-DentalScheduling/internal/api/handlers/replace_schedule"
	"github.com/m04kA/SMC-DentalScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-DentalScheduling/internal/config"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	servicesCache "github.com/m04kA/SMC-DentalScheduling/internal/infra/cache/services"
	credentialsRepo "github.com/m04kA/SMC-DentalScheduling/internal/infra/storage/credentials"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/schedulemapper"
	appointmentsService "github.com/m04kA/SMC-DentalScheduling/internal/service/appointments"
	sessionsService "github.com/m04kA/SMC-DentalScheduling/internal/service/sessions"
	buildBookingUC "github.com/m04kA/SMC-DentalScheduling/internal/usecase/build_booking"
	getAvailableBlocksUC "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_available_blocks"
	getScheduleEventsUC "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_schedule_events"
	replaceScheduleUC "github.com/m04kA/SMC-DentalScheduling/internal/usecase/replace_schedule"
	"github.com/m04kA/SMC-DentalScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-DentalScheduling/pkg/logger"
	"github.com/m04kA/SMC-DentalScheduling/pkg/metrics"
)

// sessionStore хранилище сессий: Postgres или память процесса
type sessionStore interface {
	credentialsRepo.Store
	Create(ctx context.Context, session *domain.Session) error
	Touch(ctx context.Context, id string) error
	DeleteIdleSince(ctx context.Context, before time.Time) (int64, error)
}

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

	log.Info("Starting SMC-DentalScheduling gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище сессий
	var sessions sessionStore
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		var observer dbmetrics.QueryObserver
		if cfg.Metrics.Enabled {
			observer = metricsCollector
			log.Info("Database metrics collection started")
		}
		database := dbmetrics.Wrap(db, observer)
		defer database.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err = database.PingContext(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		sessions = credentialsRepo.NewRepository(database)
	} else {
		sessions = credentialsRepo.NewMemoryRepository()
		log.Warn("Database disabled, sessions are kept in memory and lost on restart")
	}

	// Кэш каталога услуг
	var catalogCache servicesCache.Cache = servicesCache.NoopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()

		if err != nil {
			log.Warn("Redis unavailable at %s, service catalog cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			catalogCache = servicesCache.NewRedisCache(redisClient, cfg.Redis.Key, time.Duration(cfg.Redis.TTL)*time.Second)
			log.Info("Service catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Клиент бэкенда клиники; токены сессии приходят через контекст запроса
	clinicClient := clinicapi.NewClient(
		cfg.ClinicAPI.URL,
		time.Duration(cfg.ClinicAPI.Timeout)*time.Second,
		nil,
		log,
	)
	var catalogMetrics servicesCache.Metrics
	if cfg.Metrics.Enabled {
		clinicClient.WithMetrics(metricsCollector)
		catalogMetrics = metricsCollector
	}
	log.Info("Clinic API client initialized (url=%s, timeout=%ds)", cfg.ClinicAPI.URL, cfg.ClinicAPI.Timeout)

	catalog := servicesCache.NewCatalog(clinicClient, catalogCache, catalogMetrics, log)

	// Отображение расписания
	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	scheduleMapper := schedulemapper.NewMapper(domain.EventColors{
		Primary:   cfg.Calendar.PrimaryColor,
		Secondary: cfg.Calendar.SecondaryColor,
	})
	translations := schedulemapper.NewTranslations(cfg.Calendar.Titles, cfg.Calendar.DefaultLanguage)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(clinicClient, sessions, log)
	appointmentSvc := appointmentsService.NewService(clinicClient, log)

	// Инициализируем use cases
	buildBookingUseCase := buildBookingUC.NewUseCase(clinicClient, catalog, log)
	getAvailableBlocksUseCase := getAvailableBlocksUC.NewUseCase(clinicClient, log).
		WithTimeProvider(&getAvailableBlocksUC.RealTimeProvider{Location: location})
	getScheduleEventsUseCase := getScheduleEventsUC.NewUseCase(
		clinicClient,
		scheduleMapper,
		translations,
		&getScheduleEventsUC.RealTimeProvider{Location: location},
		log,
	)
	replaceScheduleUseCase := replaceScheduleUC.NewUseCase(clinicClient, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	getAvailableBlocks := getAvailableBlocksHandler.NewHandler(getAvailableBlocksUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(buildBookingUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getScheduleEvents := getScheduleEventsHandler.NewHandler(getScheduleEventsUseCase, log)
	replaceSchedule := replaceScheduleHandler.NewHandler(replaceScheduleUseCase, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)

	auth := middleware.NewAuth(sessionSvc, sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гости)
	// ============================================================

	// Вход
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Свободные блоки врача
	api.HandleFunc("/doctors/{doctorId}/available-blocks", getAvailableBlocks.Handle).Methods(http.MethodGet)

	// Запись на визит: гость или пациент с сессией
	api.Handle("/appointments", auth.Optional()(http.HandlerFunc(createAppointment.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	// Выход
	api.Handle("/sessions", auth.Require()(http.HandlerFunc(deleteSession.Handle))).Methods(http.MethodDelete)

	// Отмена визита
	api.Handle("/appointments/cancel",
		auth.Require(domain.RolePatient, domain.RoleReceptionist, domain.RoleAdmin)(http.HandlerFunc(cancelAppointment.Handle)),
	).Methods(http.MethodPut)

	// --- Расписание и визиты врача (персонал клиники) ---
	api.Handle("/doctors/{doctorId}/schedule/events",
		auth.Require(domain.RoleDoctor, domain.RoleReceptionist, domain.RoleAdmin)(http.HandlerFunc(getScheduleEvents.Handle)),
	).Methods(http.MethodGet)

	api.Handle("/doctors/{doctorId}/schedule",
		auth.Require(domain.RoleDoctor, domain.RoleAdmin)(http.HandlerFunc(replaceSchedule.Handle)),
	).Methods(http.MethodPut)

	api.Handle("/doctors/{doctorId}/appointments",
		auth.Require(domain.RoleDoctor, domain.RoleReceptionist, domain.RoleAdmin)(http.HandlerFunc(getDoctorAppointments.Handle)),
	).Methods(http.MethodGet)

	// Очистка неактивных сессий
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	if cfg.Sessions.IdleTTL > 0 && cfg.Sessions.CleanupInterval > 0 {
		go runSessionCleanup(cleanupCtx, sessions, cfg.Sessions, log)
		log.Info("Idle session cleanup enabled (idle_ttl=%dm, interval=%dm)", cfg.Sessions.IdleTTL, cfg.Sessions.CleanupInterval)
	}

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
	stopCleanup()

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

// runSessionCleanup периодически удаляет сессии без активности дольше IdleTTL
func runSessionCleanup(ctx context.Context, store sessionStore, cfg config.SessionsConfig, log *logger.Logger) {
	ticker := time.NewTicker(time.Duration(cfg.CleanupInterval) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			before := time.Now().Add(-time.Duration(cfg.IdleTTL) * time.Minute)
			removed, err := store.DeleteIdleSince(ctx, before)
			if err != nil {
				log.Error("Session cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Info("Session cleanup removed %d idle sessions", removed)
			}
		}
	}
}
