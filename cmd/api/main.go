package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"runtime-report/internal/api/handlers"
	"runtime-report/internal/api/middleware"
	"runtime-report/internal/config"
	"runtime-report/internal/data"
	"runtime-report/internal/export"
	"runtime-report/internal/observability/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}

	// Environment overrides for container deployments.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if path := os.Getenv("RUNTIME_DATA"); path != "" {
		cfg.Dataset.Path = path
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Server.StaticDir = dir
	}

	// The dataset is loaded once and treated as immutable; every request
	// recomputes its response from this copy.
	dataset, err := data.LoadRuntimeJSON(cfg.Dataset.Path)
	if err != nil {
		// Per the degrade-visually policy the server still comes up and
		// serves empty grids; exports become no-ops.
		log.Printf("Dataset not loaded from %s: %v (serving empty report)", cfg.Dataset.Path, err)
		dataset = nil
	} else {
		log.Printf("Loaded dataset: %d sources, %d days", len(dataset.Meta.Sources), len(dataset.Data))
	}

	metrics.Init()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	reportHandler := handlers.NewReportHandler(dataset, export.Options{
		Width:  cfg.Export.Width,
		Height: cfg.Export.Height,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/report/config", reportHandler.GetConfig)
		api.GET("/report/tooltip", reportHandler.GetTooltip)
		api.GET("/report/export", reportHandler.ExportPNG)
		api.GET("/sources", reportHandler.ListSources)
	}

	// Serve the frontend bundle when present (SPA routing).
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
