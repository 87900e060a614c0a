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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	calculatePriceHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/cancel_booking"
	checkInHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/check_out"
	confirmBookingHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/get_my_bookings"
	getOwnerBookingsHandler "github.com/m04kA/SMC-ParkingGateway/internal/api/handlers/get_owner_bookings"
	"github.com/m04kA/SMC-ParkingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingGateway/internal/config"
	bookingCacheRepo "github.com/m04kA/SMC-ParkingGateway/internal/infra/storage/bookingcache"
	parkingCoreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	bookingsService "github.com/m04kA/SMC-ParkingGateway/internal/service/bookings"
	syncService "github.com/m04kA/SMC-ParkingGateway/internal/service/sync"
	"github.com/m04kA/SMC-ParkingGateway/internal/state"
	calculatePriceUC "github.com/m04kA/SMC-ParkingGateway/internal/usecase/calculate_price"
	createBookingUC "github.com/m04kA/SMC-ParkingGateway/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ParkingGateway/pkg/logger"
	"github.com/m04kA/SMC-ParkingGateway/pkg/metrics"
)

func main() {
	// .env опционален, в контейнере переменные приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting SMC-ParkingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к локальному зеркалу бронирований
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

	// Инициализируем клиент ParkingCore
	coreClient := parkingCoreClient.NewClient(
		cfg.ParkingCore.URL,
		time.Duration(cfg.ParkingCore.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("ParkingCore client initialized (url=%s, timeout=%ds)",
		cfg.ParkingCore.URL, cfg.ParkingCore.Timeout)

	// Контейнер состояния и кэш котировок
	stateStore := state.NewStore()
	quoteTTL := time.Duration(cfg.ParkingCore.QuoteCacheTTL) * time.Second
	quoteCache := gocache.New(quoteTTL, 2*quoteTTL)

	// Репозиторий локальной истории бронирований
	bookingRepository := bookingCacheRepo.NewRepository(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(coreClient, stateStore, bookingRepository, log)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(coreClient, stateStore, quoteCache, log)
	createBookingUseCase := createBookingUC.NewUseCase(coreClient, stateStore, bookingRepository, log)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	checkIn := checkInHandler.NewHandler(bookingSvc, log)
	checkOut := checkOutHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт цены бронирования
	api.HandleFunc("/bookings/calculate-price", calculatePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования текущего пользователя как арендатора
	protected.HandleFunc("/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// Бронирования площадок текущего пользователя как владельца
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования владельцем
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Заезд и выезд
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)

	// Фоновое обновление активных бронирований
	var cronRunner *cron.Cron
	if cfg.Sync.Enabled {
		syncSvc := syncService.NewService(
			coreClient,
			bookingRepository,
			stateStore,
			cfg.ParkingCore.ServiceToken,
			metricsCollector,
			log,
		)

		cronRunner = cron.New()
		_, err := cronRunner.AddFunc(cfg.Sync.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ParkingCore.Timeout)*time.Second*10)
			defer cancel()
			if err := syncSvc.RefreshActiveBookings(ctx); err != nil {
				log.Error("Booking refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule booking refresh (schedule=%q): %v", cfg.Sync.Schedule, err)
		}
		cronRunner.Start()
		log.Info("Booking refresh scheduled (%s)", cfg.Sync.Schedule)
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

	if cronRunner != nil {
		<-cronRunner.Stop().Done()
		log.Info("Booking refresh stopped")
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
