package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/in/http/middleware"
	"marketplace/internal/adapters/out/postgres/accessrepo"
	"marketplace/internal/adapters/out/postgres/eventrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := logging.Init("marketplace", configs.LogFile)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrateDatabase(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() {
		_ = app.Close()
	}()

	if err := seedAdmin(&app, configs.AdminID); err != nil {
		logger.Error("Failed to seed administrator", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(app.CreateRelayEventsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:     goDotEnvVariable("KAFKA_BROKERS"),
		KafkaEventsTopic: goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		AdminID:          goDotEnvVariable("ADMIN_ID"),
		LogFile:          goDotEnvVariable("LOG_FILE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&accessrepo.RoleDTO{},
		&accessrepo.ValidatorDTO{},
		&eventrepo.EventDTO{},
	)
}

func seedAdmin(app *cmd.CompositionRoot, adminID string) error {
	if adminID == "" {
		return nil
	}

	id, err := kernel.UUIDFromString(adminID)
	if err != nil {
		return fmt.Errorf("ADMIN_ID is not a valid UUID: %w", err)
	}

	return app.SeedAdmin(context.Background(), id)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.HideBanner = true

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := httpin.NewServer(
		app.CreateListProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateValidateOrderCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateConfirmOrderCompletionCommandHandler(),
		app.CreateApproveValidatorCommandHandler(),
		app.CreateAssignRoleCommandHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetRoleQueryHandler(),
		app.CreateIsValidatorQueryHandler(),
		app.CreateGetCountsQueryHandler(),
	)
	server.RegisterRoutes(e, middleware.NewAuth(configs.JWTSecret))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := e.Shutdown(context.Background()); err != nil {
		e.Logger.Error(err)
	}
}
