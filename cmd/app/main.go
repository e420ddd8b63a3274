package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"haulaway/cmd"
	_ "haulaway/docs"
	httpin "haulaway/internal/adapters/in/http"
	"haulaway/internal/adapters/out/notify"
	"haulaway/internal/adapters/out/postgres/bookingrepo"
	"haulaway/internal/adapters/out/postgres/catalogrepo"
	"haulaway/internal/adapters/out/postgres/vehiclerepo"
	"haulaway/internal/adapters/out/routing"
	"haulaway/internal/generated/servers"
	"haulaway/internal/pkg/ratelimit"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title           Haulaway Operations API
// @version         1.0
// @description     Operations backend for bulky-waste pickup scheduling, dispatch and route ordering.

// @BasePath  /api/v1

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	catalogRepo := catalogrepo.NewGormCatalogRepository(gormDB)
	if err := catalogRepo.Seed(context.Background()); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}
	cat, err := catalogRepo.Load(context.Background())
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}

	optimizer, err := routing.NewClient(configs.RouteServiceURL)
	if err != nil {
		log.Fatalf("Error creating routing client: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		cat,
		optimizer,
		notify.NewLogNotifier(logger),
		logger,
	)

	jobManager := app.NewJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RouteServiceURL:    goDotEnvVariable("ROUTE_SERVICE_URL"),
		QuoteRateLimit:     goDotEnvVariable("QUOTE_RATE_LIMIT"),
		QuoteRateWindowSec: goDotEnvVariable("QUOTE_RATE_WINDOW_SEC"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&vehiclerepo.AssignmentDTO{},
		&catalogrepo.ItemDTO{},
		&catalogrepo.AreaRateDTO{},
		&catalogrepo.LadderPriceDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())

	limit := intOrDefault(configs.QuoteRateLimit, 30)
	windowSec := intOrDefault(configs.QuoteRateWindowSec, 60)
	store := ratelimit.NewSlidingWindowStore(limit, time.Duration(windowSec)*time.Second)
	e.Use(httpin.QuoteRateLimiter(store))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, app.NewHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func intOrDefault(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
