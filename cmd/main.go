package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bookprice-service/internal/export"
	"bookprice-service/internal/handler"
	mid "bookprice-service/internal/middleware"
	"bookprice-service/internal/pricetable"
	"bookprice-service/internal/source"
	"bookprice-service/pkg/config"
	"bookprice-service/pkg/logger"
	"bookprice-service/prometheus"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting bookprice-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Record store, upstream fetcher, and spreadsheet exporter
	store := pricetable.NewStore()
	fetcher := source.NewFetcher(appConfig.Source.URL, appConfig.Source.Timeout, store)
	exporter := export.NewExporter(export.XLSXWriter{})

	handler.InitTable(store, appConfig.Table.PageSize)
	handler.InitExport(exporter)
	handler.InitRefresh(fetcher)
	log.Info("Pricing table initialized",
		zap.Int("page_size", appConfig.Table.PageSize),
		zap.String("source_url", appConfig.Source.URL))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Record API routes
	recordAPI := e.Group("/api/records")
	recordAPI.GET("", handler.ListRecords)
	recordAPI.GET("/:id", handler.GetRecord)
	recordAPI.PUT("", handler.LoadRecords)
	recordAPI.POST("/refresh", handler.RefreshRecords)
	recordAPI.POST("/export", handler.ExportRecords)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
