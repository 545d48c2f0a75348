package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/config"
	"github.com/piresc/nebengjek-nav/internal/pkg/database"
	"github.com/piresc/nebengjek-nav/internal/pkg/health"
	httpclient "github.com/piresc/nebengjek-nav/internal/pkg/http"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/middleware"
	natspkg "github.com/piresc/nebengjek-nav/internal/pkg/nats"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-nav/internal/pkg/requestcontext"
	"github.com/piresc/nebengjek-nav/internal/pkg/retry"
	"github.com/piresc/nebengjek-nav/internal/pkg/server"
	wspkg "github.com/piresc/nebengjek-nav/internal/pkg/websocket"
	navgw "github.com/piresc/nebengjek-nav/services/navigation/gateway"
	navrepo "github.com/piresc/nebengjek-nav/services/navigation/repository"
	"github.com/piresc/nebengjek-nav/services/session"
	sessionhttp "github.com/piresc/nebengjek-nav/services/session/handler/http"
	sessionws "github.com/piresc/nebengjek-nav/services/session/handler/websocket"
	trackgw "github.com/piresc/nebengjek-nav/services/tracking/gateway"
	trackinghttp "github.com/piresc/nebengjek-nav/services/tracking/handler/http"
	trackrepo "github.com/piresc/nebengjek-nav/services/tracking/repository"
	trackuc "github.com/piresc/nebengjek-nav/services/tracking/usecase"
	"go.uber.org/zap"
)

const (
	appName              = "navigation-service"
	navigationStartLimit = 10
)

func main() {
	configs, err := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	producer := natspkg.NewProducer(natsClient)

	// Repositories and gateways
	profileRepo := trackrepo.NewProfileRepository(postgresClient.GetDB())
	historyRepo := trackrepo.NewHistoryRepository(postgresClient.GetDB(), redisClient)
	settingsRepo := navrepo.NewSettingsRepository(postgresClient.GetDB())

	mapboxRetry := retry.DefaultConfig()
	mapboxRetry.MaxRetries = configs.Mapbox.MaxRetries
	mapboxClient := httpclient.NewEnhancedClient(zapLogger,
		time.Duration(configs.Mapbox.TimeoutSec)*time.Second,
		httpclient.WithRetryConfig(mapboxRetry, zapLogger))
	mapbox := navgw.NewMapboxGW(mapboxClient, configs.Mapbox)

	manager := wspkg.NewManager(configs.JWT)
	registry := session.NewRegistry(session.Dependencies{
		Tracking:         configs.Tracking,
		Navigation:       configs.Navigation,
		Channels:         func(driverID string) session.Channel { return manager.Channel(driverID) },
		Profiles:         profileRepo,
		History:          historyRepo,
		TrackingEvents:   trackgw.NewTrackingGW(producer),
		SettingsRepo:     settingsRepo,
		Geocoder:         mapbox,
		Directions:       mapbox,
		NavigationEvents: navgw.NewNavigationGW(producer),
	})

	// Handlers
	deviceManager := sessionws.NewDeviceManager(manager, registry)
	sessionHandler := sessionhttp.NewSessionHandler(registry)
	locationHandler := trackinghttp.NewLocationHandler(trackuc.NewLocationQueryUC(historyRepo))

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("mapbox", mapboxClient)
	healthService.AddChecker("nats", health.CheckerFunc(func(context.Context) error {
		if !natsClient.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	}))

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(requestcontext.Middleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/ws", deviceManager.HandleWebSocket)

	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(configs.JWT))
	sessionHandler.RegisterRoutes(v1, middleware.UserRateLimiter(navigationStartLimit, time.Minute, redisClient))

	internal := e.Group("/internal", middleware.ValidateAPIKey(configs.Internal.APIKey))
	locationHandler.RegisterRoutes(internal)

	shutdownManager := server.NewShutdownManager(zapLogger)
	// runs last registered first: sessions close before their stores
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register("sessions", func(ctx context.Context) error {
		zapLogger.Info("Closing driver sessions",
			zap.Int("connected_devices", manager.ConnectedCount()),
			zap.Int("sessions", registry.Count()))
		return registry.CloseAll(ctx)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
	zapLogger.Info("Service stopped", zap.String("app", appName))
}
