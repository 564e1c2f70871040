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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkAvailabilityHandler "github.com/m04kA/SMC-MeetingService/internal/api/handlers/check_availability"
	createEventHandler "github.com/m04kA/SMC-MeetingService/internal/api/handlers/create_event"
	getDaySlotsHandler "github.com/m04kA/SMC-MeetingService/internal/api/handlers/get_day_slots"
	getUpcomingSlotsHandler "github.com/m04kA/SMC-MeetingService/internal/api/handlers/get_upcoming_slots"
	healthHandler "github.com/m04kA/SMC-MeetingService/internal/api/handlers/health"
	"github.com/m04kA/SMC-MeetingService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingService/internal/config"
	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/internal/infra/lock"
	meetingRepo "github.com/m04kA/SMC-MeetingService/internal/infra/storage/meeting"
	"github.com/m04kA/SMC-MeetingService/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-MeetingService/internal/service/slots"
	checkAvailabilityUC "github.com/m04kA/SMC-MeetingService/internal/usecase/check_availability"
	createEventUC "github.com/m04kA/SMC-MeetingService/internal/usecase/create_event"
	getDaySlotsUC "github.com/m04kA/SMC-MeetingService/internal/usecase/get_day_slots"
	getUpcomingSlotsUC "github.com/m04kA/SMC-MeetingService/internal/usecase/get_upcoming_slots"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
	"github.com/m04kA/SMC-MeetingService/pkg/logger"
	"github.com/m04kA/SMC-MeetingService/pkg/metrics"
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

	log.Info("Starting SMC-MeetingService...")

	ctx := context.Background()

	// Метрики (nil *Metrics - no-op)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	zone, err := civiltime.LoadZone(domain.DefaultTimezone)
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	schedule := domain.DefaultWeeklySchedule()

	// Клиент Google Calendar
	calendarClient, err := googlecalendar.NewClient(ctx, googlecalendar.Config{
		CalendarID:  cfg.Calendar.CalendarID,
		ClientEmail: cfg.Calendar.ClientEmail,
		PrivateKey:  cfg.Calendar.PrivateKey,
		Endpoint:    cfg.Calendar.Endpoint,
		Timeout:     time.Duration(cfg.Calendar.Timeout) * time.Second,
	}, zone, log, metricsCollector)
	if err != nil {
		log.Fatal("Failed to initialize calendar client: %v", err)
	}
	log.Info("Calendar client initialized (calendar=%s, timeout=%ds)", cfg.Calendar.CalendarID, cfg.Calendar.Timeout)

	// Журнал встреч (опционально)
	var (
		ledger createEventUC.MeetingLedger = meetingRepo.NopLedger{}
		busy   slots.BusySource            = calendarClient
		db     *sql.DB
	)
	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		repo := meetingRepo.NewRepository(db)
		ledger = repo
		busy = slots.CombineBusy(calendarClient, meetingRepo.NewBusySource(repo, cfg.Calendar.CalendarID, zone.Location()))
		log.Info("Meeting ledger enabled")
	}

	// Блокировка бронирований
	var (
		locker      createEventUC.Locker
		redisClient *redis.Client
	)
	lockWait := time.Duration(cfg.Booking.LockWait) * time.Millisecond
	switch cfg.Booking.LockBackend {
	case config.LockBackendRedis:
		redisClient, err = lock.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, time.Duration(cfg.Booking.LockTTL)*time.Second, lockWait, log)
	default:
		locker = lock.NewMemoryLocker(lockWait)
	}
	log.Info("Booking lock backend: %s", cfg.Booking.LockBackend)

	// Сервис слотов
	slotService := slots.NewService(
		schedule,
		zone.Location(),
		busy,
		slots.NewEngine(slots.RandomShuffler{}),
		domain.SlotDurationMinutes,
		log,
	)

	// Инициализируем use cases
	getUpcomingSlotsUseCase := getUpcomingSlotsUC.NewUseCase(slotService, metricsCollector, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(slotService, zone, metricsCollector, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(slotService, zone, log)
	createEventUseCase := createEventUC.NewUseCase(
		slotService,
		calendarClient,
		locker,
		ledger,
		zone,
		cfg.Calendar.CalendarID,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	getUpcomingSlots := getUpcomingSlotsHandler.NewHandler(getUpcomingSlotsUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют x-api-key)
	// ============================================================

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.APIKey(cfg.Server.APIKey, log))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			10*time.Minute,
			cfg.RateLimit.TrustProxy,
			log,
		)
		protected.Use(limiter.Middleware)
	}

	// Ближайшие свободные слоты
	protected.HandleFunc("/upcoming-free-slots", getUpcomingSlots.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	protected.HandleFunc("/free-slots-day", getDaySlots.Handle).Methods(http.MethodPost)

	// Проверка одного слота
	protected.HandleFunc("/check-availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Создание встречи
	protected.HandleFunc("/create-event", createEvent.Handle).Methods(http.MethodPost)

	handler := middleware.Chain(r,
		middleware.RequestID,
		middleware.Recover(log),
		middleware.AccessLog(log),
		middleware.CORS,
		middleware.SecurityHeaders,
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
