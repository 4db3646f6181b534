package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/schemagen/internal/middleware"
	"github.com/dangerclosesec/schemagen/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP API around the schema service
func NewRouter(schemaService *service.SchemaService, logger *slog.Logger) http.Handler {
	schemaHandler := NewSchemaHandler(schemaService)

	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api/schemas", func(r chi.Router) {
		r.With(chimw.AllowContentType("application/json")).Post("/parse", schemaHandler.Parse)
		r.Get("/history", schemaHandler.History)
		r.Get("/history/{id}", schemaHandler.Record)
	})

	return r
}
