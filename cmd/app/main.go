package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config := getConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateCleanupEvidenceCommandHandler(),
		config.EvidenceTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config.HTTPPort)
}

func getConfig() cmd.Config {
	ttl := jobs.DefaultEvidenceTTL
	if raw := goDotEnvVariable("EVIDENCE_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("EVIDENCE_TTL_HOURS must be an integer: %v", err)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	machineID := int64(0)
	if raw := goDotEnvVariable("MACHINE_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("MACHINE_ID must be an integer: %v", err)
		}
		machineID = parsed
	}

	return cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		EvidenceRoot: goDotEnvVariable("EVIDENCE_ROOT"),
		EvidenceTTL:  ttl,
		MachineID:    machineID,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateCreatePackageCommandHandler(),
		app.CreateMarkPreparedCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateAdvancePackageStatusCommandHandler(),
		app.CreatePickupOrderCommandHandler(),
		app.CreateArriveWarehouseCommandHandler(),
		app.CreateWarehouseReceiveCommandHandler(),
		app.CreateWarehouseShipCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateRecordOrderActionCommandHandler(),
		app.CreateUploadEvidenceCommandHandler(),
		app.CreateGetPackageQueryHandler(),
		app.CreateListShopPackagesQueryHandler(),
		app.CreateListDriverPackagesQueryHandler(),
		app.CreateListAvailablePackagesQueryHandler(),
		app.CreateListOrderActionsQueryHandler(),
		app.CreateGetLatestOrderActionQueryHandler(),
		app.CreateGetActionFilesQueryHandler(),
		app.CreateGetOrderTimelineQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
