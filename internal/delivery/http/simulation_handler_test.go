package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/frontandrew/ferry/internal/usecase/simulation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSimulationService - мок для simulation service
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) Run(ctx context.Context, req *simulation.RunRequest) (*simulation.RunResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulation.RunResult), args.Error(1)
}

func testResult(trips int) *simulation.RunResult {
	return &simulation.RunResult{
		Report: &domain.Report{
			RunID:    uuid.New(),
			Trips:    trips,
			Vehicles: 30,
		},
	}
}

// TestSimulationHandler_RunSimulation тестирует запуск симуляции
func TestSimulationHandler_RunSimulation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockSimulationService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешный запуск",
			body: `{"cars": 3, "trucks": 1, "include_events": true}`,
			mockSetup: func(m *MockSimulationService) {
				m.On("Run", mock.Anything, mock.MatchedBy(func(req *simulation.RunRequest) bool {
					return req.Cars != nil && *req.Cars == 3 &&
						req.Trucks != nil && *req.Trucks == 1 &&
						req.Minibuses == nil && req.IncludeEvents
				})).Return(testResult(7), nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertSuccess(t, resp)
				data, ok := resp["data"].(map[string]interface{})
				if assert.True(t, ok) {
					report := data["report"].(map[string]interface{})
					assert.Equal(t, float64(7), report["trips"])
				}
			},
		},
		{
			name: "пустое тело - параметры по умолчанию",
			body: "",
			mockSetup: func(m *MockSimulationService) {
				m.On("Run", mock.Anything, &simulation.RunRequest{}).Return(testResult(12), nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertSuccess(t, resp)
			},
		},
		{
			name:           "невалидный JSON",
			body:           "invalid",
			mockSetup:      func(m *MockSimulationService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
				assert.Equal(t, "Invalid request body", resp["error"])
			},
		},
		{
			name: "невалидный сценарий",
			body: `{"ferry_capacity": 2}`,
			mockSetup: func(m *MockSimulationService) {
				err := fmt.Errorf("%w: %w", domain.ErrBadRequest, domain.ErrVehicleTooLarge)
				m.On("Run", mock.Anything, mock.Anything).Return(nil, err)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
				assert.Contains(t, resp["error"], "vehicle")
			},
		},
		{
			name: "внутренняя ошибка",
			body: `{}`,
			mockSetup: func(m *MockSimulationService) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				AssertError(t, resp)
				assert.Equal(t, "Failed to run simulation", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSimulationService)
			tt.mockSetup(mockService)

			handler := NewSimulationHandler(mockService, logger.NewNoop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.RunSimulation(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkResponse(t, decodeResponse(t, w))

			mockService.AssertExpectations(t)
		})
	}
}
