package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"laundry/cmd"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/paymentgw"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	amqpConn, err := amqp.Dial(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()

	publisher, err := rabbitmq.NewPublisher(amqpConn)
	if err != nil {
		log.Fatalf("Failed to create notification publisher: %v", err)
	}
	defer publisher.Close()

	gateway := paymentgw.NewClient(configs.PaymentBaseURL, configs.PaymentAPIKey)

	root := cmd.NewCompositionRoot(configs, gormDB, gateway, publisher, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:           goDotEnvVariable("AMQP_URL"),
		PaymentBaseURL:    goDotEnvVariable("PAYMENT_BASE_URL"),
		PaymentAPIKey:     goDotEnvVariable("PAYMENT_API_KEY"),
		UnpaidRemindAfter: durationEnvVariable("UNPAID_REMIND_AFTER", 24*time.Hour),
		UnpaidCancelAfter: durationEnvVariable("UNPAID_CANCEL_AFTER", 72*time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return d
}

// mustOpenDatabase opens PostgreSQL through lib/pq and hands the connection
// to GORM. TranslateError turns driver unique violations into
// gorm.ErrDuplicatedKey, which the repositories map to domain conflicts.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		root.CreateRequestPickupCommandHandler(),
		root.CreateAcceptPickupCommandHandler(),
		root.CreateCompletePickupCommandHandler(),
		root.CreateAssignWashingCommandHandler(),
		root.CreateProcessStationCommandHandler(),
		root.CreateCompleteStationCommandHandler(),
		root.CreateRequestBypassCommandHandler(),
		root.CreateResolveBypassCommandHandler(),
		root.CreateMarkOrderPaidCommandHandler(),
		root.CreateAcceptDeliveryCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateCheckInCommandHandler(),
		root.CreateCheckOutCommandHandler(),
		root.CreateGetAvailablePickupsQueryHandler(),
		root.CreateGetStationQueueQueryHandler(),
		root.CreateGetPendingBypassesQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
