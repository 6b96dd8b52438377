package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getHallTimelineHandler "github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers/get_hall_timeline"
	getTableTimelineHandler "github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers/get_table_timeline"
	resolveSlotHandler "github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers/resolve_slot"
	streamNowMarkerHandler "github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers/stream_now_marker"
	"github.com/m04kA/SMC-BilliardTimeline/internal/api/middleware"
	"github.com/m04kA/SMC-BilliardTimeline/internal/config"
	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	bookingsCache "github.com/m04kA/SMC-BilliardTimeline/internal/infra/cache/bookings"
	bookingRepo "github.com/m04kA/SMC-BilliardTimeline/internal/infra/storage/booking"
	tableRepo "github.com/m04kA/SMC-BilliardTimeline/internal/infra/storage/table"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
	getHallTimelineUC "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_hall_timeline"
	getTableTimelineUC "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_table_timeline"
	resolveSlotUC "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/resolve_slot"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/logger"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/metrics"
)

const defaultConfigPath = "config.toml"

// bookingReader источник бронирований для use cases: Postgres или кэш поверх него
type bookingReader interface {
	GetByTablesAndPeriod(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

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

	log.Info("Starting SMC-BilliardTimeline...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Timeline.Location()
	if err != nil {
		log.Fatal("Failed to load hall time zone: %v", err)
	}
	log.Info("Hall time zone: %s, now marker refresh: %s", location, cfg.Timeline.RefreshInterval())

	// Инициализируем метрики. Если они выключены, коллекторы пишут в отдельный registry,
	// который никто не публикует
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry())
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

	// Инициализируем репозитории
	tableRepository := tableRepo.NewRepository(db)
	var bookings bookingReader = bookingRepo.NewRepository(db)

	// Кэш бронирований в Redis (если включен)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, requests will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		bookings = bookingsCache.NewRepository(bookings, redisClient, cfg.Redis.TTL(), metricsCollector, log)
		log.Info("Bookings cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	// Инициализируем use cases
	getTableTimelineUseCase := getTableTimelineUC.NewUseCase(
		tableRepository,
		bookings,
		metricsCollector,
		location,
		log,
	)

	getHallTimelineUseCase := getHallTimelineUC.NewUseCase(
		tableRepository,
		bookings,
		metricsCollector,
		location,
		log,
	)

	resolveSlotUseCase := resolveSlotUC.NewUseCase(
		tableRepository,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	getTableTimeline := getTableTimelineHandler.NewHandler(getTableTimelineUseCase, log, false)
	getHallTimeline := getHallTimelineHandler.NewHandler(getHallTimelineUseCase, log, false)
	staffTableTimeline := getTableTimelineHandler.NewHandler(getTableTimelineUseCase, log, true)
	staffHallTimeline := getHallTimelineHandler.NewHandler(getHallTimelineUseCase, log, true)
	resolveSlot := resolveSlotHandler.NewHandler(resolveSlotUseCase, log)
	streamNowMarker := streamNowMarkerHandler.NewHandler(
		timeline.ClockFunc(time.Now),
		location,
		cfg.Timeline.RefreshInterval(),
		metricsCollector,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, без персональных данных)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Таймлайн всего зала
	public.HandleFunc("/timeline", getHallTimeline.Handle).Methods(http.MethodGet)

	// Поток маркера текущего времени (SSE)
	public.HandleFunc("/timeline/now", streamNowMarker.Handle).Methods(http.MethodGet)

	// Таймлайн одного стола
	public.HandleFunc("/tables/{tableId}/timeline", getTableTimeline.Handle).Methods(http.MethodGet)

	// Клик по дорожке стола -> черновик бронирования
	public.HandleFunc("/tables/{tableId}/timeline/slot", resolveSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-User-ID header)
	// ============================================================

	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.Auth)

	staff.HandleFunc("/timeline", staffHallTimeline.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{tableId}/timeline", staffTableTimeline.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Потоки SSE завершаются вместе с базовым контекстом сервера
	baseCtx, stopStreams := context.WithCancel(context.Background())
	srv.BaseContext = func(_ net.Listener) context.Context { return baseCtx }

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
	stopStreams()

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
