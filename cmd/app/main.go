package main

import (
	"fmt"
	"log/slog"
	"os"

	"orderflow/cmd"
	httpadapter "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres/customerrepo"
	"orderflow/internal/adapters/out/postgres/logrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/productrepo"
	"orderflow/internal/adapters/out/postgres/ticketrepo"
	"orderflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.OrderRepository(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&logrepo.TransitionLogDTO{},
		&ticketrepo.TicketDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     app.CreateCreateOrderCommandHandler(),
		TransitionOrder: app.CreateTransitionOrderCommandHandler(),
		DeleteOrder:     app.CreateDeleteOrderCommandHandler(),
		CreateCustomer:  app.CreateCreateCustomerCommandHandler(),
		CreateProduct:   app.CreateCreateProductCommandHandler(),

		GetOrders:        app.CreateGetOrdersQueryHandler(),
		GetOrder:         app.CreateGetOrderQueryHandler(),
		GetOrderLogs:     app.CreateGetOrderLogsQueryHandler(),
		GetAllLogs:       app.CreateGetAllLogsQueryHandler(),
		GetAllowedAction: app.CreateGetAllowedActionsQueryHandler(),
		GetTickets:       app.CreateGetTicketsQueryHandler(),
		GetTicket:        app.CreateGetTicketQueryHandler(),
		GetCustomers:     app.CreateGetCustomersQueryHandler(),
		GetCustomer:      app.CreateGetCustomerQueryHandler(),
		GetProducts:      app.CreateGetProductsQueryHandler(),
		GetProduct:       app.CreateGetProductQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
