package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/frontandrew/ferry/internal/usecase/simulation"
)

// SimulationService определяет интерфейс для сервиса симуляции
type SimulationService interface {
	Run(ctx context.Context, req *simulation.RunRequest) (*simulation.RunResult, error)
}

// SimulationHandler обрабатывает запросы на запуск симуляции
type SimulationHandler struct {
	simulationService SimulationService
	logger            logger.Logger
}

// NewSimulationHandler создает новый handler
func NewSimulationHandler(simulationService SimulationService, logger logger.Logger) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		logger:            logger,
	}
}

// RunSimulation прогоняет симуляцию до конца и возвращает отчет
// POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	var req simulation.RunRequest

	// Пустое тело - запуск с параметрами по умолчанию
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Failed to decode request", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.simulationService.Run(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to run simulation", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to run simulation")
		return
	}

	h.logger.Info("Simulation finished", map[string]interface{}{
		"run_id": result.Report.RunID.String(),
		"trips":  result.Report.Trips,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}
