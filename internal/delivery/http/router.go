package http

import (
	"net/http"

	"github.com/frontandrew/ferry/internal/delivery/http/middleware"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	simulationHandler *SimulationHandler
	logger            logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(simulationHandler *SimulationHandler, logger logger.Logger) *Router {
	return &Router{
		simulationHandler: simulationHandler,
		logger:            logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulations", rt.simulationHandler.RunSimulation)
	})

	return r
}
