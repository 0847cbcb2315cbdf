package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDepositOptionsHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	qrURL := "/media/qr/btc.png"
	options := []models.WalletOption{
		{
			ID:              uuid.New().String(),
			Currency:        "BTC",
			CurrencyDisplay: "Bitcoin",
			Rate:            50000,
			Address:         "bc1qexampleaddress",
			QRCodeURL:       &qrURL,
			IsActive:        true,
		},
	}

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener)
		expectedStatusCode int
		expectedKey        string
		expectedWallets    int
	}{
		{
			name: "successful listing",
			setupMocks: func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListOptions(gomock.Any()).Return(options, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "wallets",
			expectedWallets:    1,
		},
		{
			name: "empty listing returns empty array",
			setupMocks: func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListOptions(gomock.Any()).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "wallets",
			expectedWallets:    0,
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "unauthorized invalid token",
			setupMocks: func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockOptionsLister, mockTokener *MockOptionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListOptions(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockOptionsTokener(ctrl)
			mockSvc := NewMockOptionsLister(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/deposits/options/", nil)
			rr := httptest.NewRecorder()

			handler := NewDepositOptionsHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			val, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)

			if tt.expectedStatusCode == http.StatusOK {
				wallets, ok := val.([]interface{})
				assert.True(t, ok, "wallets should be an array")
				assert.Len(t, wallets, tt.expectedWallets)
			}
		})
	}
}
