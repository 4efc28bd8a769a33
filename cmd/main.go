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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_booking"
	getConsoleStateHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_console_state"
	getCourtTypesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_court_types"
	getCourtsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_courts"
	getWeekScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_week_schedule"
	manageConsoleDraftHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/manage_console_draft"
	updateConsoleSelectionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_console_selection"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	courtServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/session"
	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	getWeekScheduleUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

// Переменная окружения с credential сессии оператора для внешней платформы
const courtServiceTokenEnv = "COURTSERVICE_TOKEN"

func main() {
	// Подхватываем .env (если есть) до чтения окружения
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Провайдер credential сессии: токен читается из окружения при каждом вызове,
	// смена токена не требует рестарта сервиса
	tokens := session.NewEnvTokenProvider(courtServiceTokenEnv)
	if _, ok := tokens.Token(); !ok {
		log.Warn("No %s set: court catalog and schedule fetches will be rejected, guest booking is still available", courtServiceTokenEnv)
	}

	// Инициализируем клиента внешней платформы бронирования
	var upstreamMetrics courtServiceClient.MetricsObserver
	if cfg.Metrics.Enabled {
		upstreamMetrics = metricsCollector
	}
	courtClient := courtServiceClient.NewClient(
		cfg.CourtService.URL,
		time.Duration(cfg.CourtService.Timeout)*time.Second,
		tokens,
		upstreamMetrics,
		log,
	)
	log.Info("Integration client initialized (CourtService=%s timeout=%ds)",
		cfg.CourtService.URL, cfg.CourtService.Timeout)

	// Инициализируем use cases
	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(
		courtClient,
		cfg.Schedule.OpenHour,
		cfg.Schedule.CloseHour,
		cfg.Schedule.SlotDurationMinutes,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		courtClient,
		log,
	)

	// Сессия консоли оператора: единственный оператор сервиса — владелец
	// credential из окружения; состояние страницы живет на сервере
	consoleSession := scheduleService.NewSession(courtClient, getWeekScheduleUseCase, createBookingUseCase, log)

	// Инициализируем handlers
	getCourtTypes := getCourtTypesHandler.NewHandler(courtClient, log)
	getCourts := getCourtsHandler.NewHandler(courtClient, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getConsoleState := getConsoleStateHandler.NewHandler(consoleSession, log)
	updateConsoleSelection := updateConsoleSelectionHandler.NewHandler(consoleSession, log)
	manageConsoleDraft := manageConsoleDraftHandler.NewHandler(consoleSession, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог: типы кортов и доступные корты
	api.HandleFunc("/court-types", getCourtTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)

	// Недельная сетка занятости корта
	api.HandleFunc("/courts/{courtId}/week-schedule", getWeekSchedule.Handle).Methods(http.MethodGet)

	// Быстрое бронирование пустого слота
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Консоль оператора: состояние страницы, выбор, жизненный цикл черновика
	api.HandleFunc("/console", getConsoleState.Handle).Methods(http.MethodGet)
	api.HandleFunc("/console", updateConsoleSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/console/draft", manageConsoleDraft.HandleOpen).Methods(http.MethodPost)
	api.HandleFunc("/console/draft", manageConsoleDraft.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/console/draft", manageConsoleDraft.HandleClose).Methods(http.MethodDelete)
	api.HandleFunc("/console/draft/submit", manageConsoleDraft.HandleSubmit).Methods(http.MethodPost)

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
