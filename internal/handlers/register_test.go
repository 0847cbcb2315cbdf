package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockRegisterer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful registration",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Password: "secret123",
				Email:    "john@example.com",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john_doe", "secret123", "john@example.com").
					Return(nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "message",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "user already exists",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Password: "secret123",
				Email:    "john@example.com",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john_doe", "secret123", "john@example.com").
					Return(services.ErrUserAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Password: "secret123",
				Email:    "john@example.com",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john_doe", "secret123", "john@example.com").
					Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRegisterer(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
