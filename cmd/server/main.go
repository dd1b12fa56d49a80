package main

import (
	"asistente_legal_go/config"
	"asistente_legal_go/db"
	"asistente_legal_go/handlers"
	"asistente_legal_go/services"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the store
	store, err := db.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Seed demo data on first run
	if cfg.SeedDemoData {
		if err := services.SeedDemoData(store); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	h := handlers.New(store)

	api := e.Group("/api")
	{
		api.GET("/clientes", h.GetClientes)
		api.POST("/clientes", h.CreateCliente)
		api.GET("/clientes/:id", h.GetCliente)
		api.PUT("/clientes/:id", h.UpdateCliente)
		api.DELETE("/clientes/:id", h.DeleteCliente)

		api.GET("/casos", h.GetCasos)
		api.POST("/casos", h.CreateCaso)
		api.GET("/casos/:id", h.GetCaso)
		api.PUT("/casos/:id", h.UpdateCaso)
		api.DELETE("/casos/:id", h.DeleteCaso)
		api.POST("/casos/:id/timeline", h.AddTimelineEvent)

		api.GET("/documentos", h.GetDocumentos)
		api.POST("/documentos", h.CreateDocumento)
		api.DELETE("/documentos/:id", h.DeleteDocumento)

		api.GET("/alertas", h.GetAlertas)
		api.POST("/alertas", h.CreateAlerta)
		api.PUT("/alertas/:id/leida", h.MarkAlertaLeida)
		api.DELETE("/alertas/:id", h.DeleteAlerta)

		api.GET("/estadisticas", h.GetEstadisticas)
		api.GET("/estadisticas/export", h.ExportEstadisticas)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
