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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/create_court"
	deleteBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/delete_booking"
	deleteCourtHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/delete_court"
	getAdminScheduleHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_admin_schedule"
	getUpcomingBookingsHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_upcoming_bookings"
	healthHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/health"
	listCourtsHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/list_courts"
	setAvailabilityHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/set_availability"
	updateBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/update_booking"
	updateCourtHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/update_court"
	"github.com/m04kA/SMC-CourtBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBooking/internal/config"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/cache/views"
	availabilityRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/court"
	userRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/user"
	accessService "github.com/m04kA/SMC-CourtBooking/internal/service/access"
	bookingsService "github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtBooking/internal/service/courts"
	overlapService "github.com/m04kA/SMC-CourtBooking/internal/service/overlap"
	createBookingUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	getUpcomingBookingsUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_upcoming_bookings"
	setAvailabilityUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/set_availability"
	updateBookingUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("COURTS_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-CourtBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш представлений
	var viewCache views.Store = views.Noop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, views will be rebuilt until it recovers: %v", cfg.Redis.Addr, err)
		}
		cancel()

		viewCache = views.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second, metricsCollector)
		log.Info("View cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		log.Info("View cache disabled")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	accessChecker := accessService.NewChecker(userRepository, log)
	overlapChecker := overlapService.NewChecker(bookingRepository)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		accessChecker,
		viewCache,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		accessChecker,
		viewCache,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		overlapChecker,
		accessChecker,
		txMgr,
		viewCache,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		overlapChecker,
		accessChecker,
		txMgr,
		viewCache,
		metricsCollector,
		log,
	)
	setAvailabilityUseCase := setAvailabilityUC.NewUseCase(
		availabilityRepository,
		accessChecker,
		viewCache,
		log,
	)
	getUpcomingBookingsUseCase := getUpcomingBookingsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		accessChecker,
		viewCache,
		log,
	)

	// Инициализируем handlers
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(getUpcomingBookingsUseCase, log)
	setAvailability := setAvailabilityHandler.NewHandler(setAvailabilityUseCase, accessChecker, log)
	getAdminSchedule := getAdminScheduleHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, accessChecker, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, accessChecker, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, accessChecker, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, accessChecker, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Публичные служебные маршруты
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Пользователь определяется по bearer токену, права проверяют usecase и сервисы
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	api.Use(middleware.Identify(cfg.Auth.JWTSecret, log))

	// ============================================================
	// USER ROUTES (любой авторизованный пользователь)
	// ============================================================

	// Ближайшие игры со статистикой ответов
	api.HandleFunc("/bookings/upcoming", getUpcomingBookings.Handle).Methods(http.MethodGet)

	// Ответ пользователя о вероятности участия
	api.HandleFunc("/bookings/{bookingId}/availability", setAvailability.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (роль admin проверяется при каждом вызове)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Расписание ---
	admin.HandleFunc("/schedule", getAdminSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Корты ---
	admin.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
