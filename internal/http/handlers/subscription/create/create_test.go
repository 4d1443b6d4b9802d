package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummySubscription) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание",
			requestBody: models.DummySubscription{
				ServiceName: "Netflix",
				Amount:      15.99,
				BillingDate: "2024-02-15",
				Status:      "Active",
				Category:    "Entertainment",
			},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return("8d5a7b1e-0000-0000-0000-000000000001", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"id":"8d5a7b1e-0000-0000-0000-000000000001"}}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации - отсутствуют обязательные поля",
			requestBody: models.DummySubscription{
				Category: "Music",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field ServiceName is a required field, field Amount is a required field, field BillingDate is a required field, field Status is a required field"}`,
		},
		{
			name: "ошибка валидации - неизвестный статус",
			requestBody: models.DummySubscription{
				ServiceName: "Netflix",
				Amount:      15.99,
				BillingDate: "2024-02-15",
				Status:      "Paused",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Status must be one of: Active Expired"}`,
		},
		{
			name: "непарсящаяся дата списания",
			requestBody: models.DummySubscription{
				ServiceName: "Netflix",
				Amount:      15.99,
				BillingDate: "15/02/2024",
				Status:      "Active",
			},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return("", errors.New("invalid billing date"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"invalid billing date, expected format 2006-01-02"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
