package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adhikara/signon/internal/pkg/config"
	"github.com/adhikara/signon/internal/pkg/database"
	"github.com/adhikara/signon/internal/pkg/health"
	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/middleware"
	natspkg "github.com/adhikara/signon/internal/pkg/nats"
	"github.com/adhikara/signon/internal/pkg/session"
	"github.com/adhikara/signon/internal/pkg/validator"
	"github.com/adhikara/signon/internal/pkg/view"
	"github.com/adhikara/signon/services/onboarding/gateway"
	"github.com/adhikara/signon/services/onboarding/handler"
	httpHandler "github.com/adhikara/signon/services/onboarding/handler/http"
	"github.com/adhikara/signon/services/onboarding/repository"
	"github.com/adhikara/signon/services/onboarding/usecase"
)

func main() {
	appName := "signon"
	configs := config.InitConfig(os.Getenv("SIGNON_CONFIG"))

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	onboardingRepo := repository.NewOnboardingRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	onboardingGW := gateway.NewOnboardingGW(natsClient)

	// Initialize usecase
	onboardingUC := usecase.NewOnboardingUC(onboardingRepo, onboardingGW, configs)

	// Session store for the signup flow
	sessions := session.NewStore(configs.Session)

	// Handlers for HTTP
	signupHandler := httpHandler.NewSignupHandler(onboardingUC)
	verifyHandler := httpHandler.NewVerifyHandler(onboardingUC, sessions)
	onboardingHandler := httpHandler.NewOnboardingHandler(onboardingUC, sessions)

	h := handler.NewHandler(signupHandler, verifyHandler, onboardingHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		zapLogger.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer
	e.Validator = validator.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	addr := fmt.Sprintf(":%d", configs.Server.Port)
	zapLogger.Info("Starting server", zap.String("address", addr))
	if err := e.Start(addr); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
