package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parceltrack/cmd"
	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/paymentrepo"
	"parceltrack/internal/adapters/out/postgres/riderrepo"
	"parceltrack/internal/adapters/out/postgres/walletrepo"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	verifier, err := root.CreateIdentityVerifier()
	if err != nil {
		log.Fatalf("Failed to create identity verifier: %v", err)
	}

	gateway, err := root.CreatePaymentGateway()
	if err != nil {
		log.Fatalf("Failed to create payment gateway: %v", err)
	}

	server := httpadapter.NewServer(
		root.CreateCreateParcelCommandHandler(),
		root.CreateDeleteParcelCommandHandler(),
		root.CreateAssignRiderCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateCreateRiderCommandHandler(),
		root.CreateUpdateRiderStatusCommandHandler(),
		root.CreateCreditEarningsCommandHandler(),
		root.CreateRequestCashOutCommandHandler(),
		root.CreateRecordPaymentCommandHandler(),
		root.CreateGetParcelsBySenderQueryHandler(),
		root.CreateGetAdminParcelsQueryHandler(),
		root.CreateGetParcelQueryHandler(),
		root.CreateGetRiderDeliveriesQueryHandler(),
		root.CreateGetWalletBalanceQueryHandler(),
		root.CreateGetRidersByStatusQueryHandler(),
		root.CreateGetTrackingHistoryQueryHandler(),
		gateway,
	)

	if configs.JobsEnabled != "false" {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager := jobs.NewJobManager(root.CreateProcessWithdrawalsCommandHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(server, verifier, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		StripeSecretKey: goDotEnvVariable("STRIPE_SECRET_KEY"),
		JobsEnabled:     goDotEnvVariable("JOBS_ENABLED"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.HistoryEntryDTO{},
		&riderrepo.RiderDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.TransactionDTO{},
		&walletrepo.WithdrawalDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(server *httpadapter.Server, verifier ports.IdentityVerifier, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server.RegisterRoutes(e, verifier)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
