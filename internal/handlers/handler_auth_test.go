package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	portssvc "github.com/expensio/invoice_ocr_api/internal/core/ports/services"
	"github.com/expensio/invoice_ocr_api/internal/dto"
	"github.com/expensio/invoice_ocr_api/internal/handlers"
	"github.com/expensio/invoice_ocr_api/internal/platform/config"
	"github.com/expensio/invoice_ocr_api/internal/utils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	clientSecret        string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.clientSecret = "s3cret-value"
	suite.mockCurrencyService = new(MockCurrencyService)

	secretHash, err := utils.HashSecret(suite.clientSecret)
	suite.Require().NoError(err)

	cfg := &config.Config{
		JWTSecret:           "test-secret-key-that-is-long-enough",
		JWTIssuer:           "ioa-test",
		JWTExpiryDuration:   time.Hour,
		APIClientID:         "test-client",
		APIClientSecretHash: secretHash,
		AuthRateLimit:       "100-M",
		IsProduction:        true,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Currency: suite.mockCurrencyService})
}

func (suite *AuthHandlerTestSuite) postToken(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestToken_Success() {
	w := suite.postToken(dto.TokenRequest{ClientID: "test-client", ClientSecret: suite.clientSecret})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
}

func (suite *AuthHandlerTestSuite) TestToken_IssuedTokenGrantsAccess() {
	w := suite.postToken(dto.TokenRequest{ClientID: "test-client", ClientSecret: suite.clientSecret})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	// A protected route must accept the issued token.
	suite.mockCurrencyService.On("ListCurrencies", mock.Anything).
		Return([]domain.Currency{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	probe := httptest.NewRecorder()
	suite.router.ServeHTTP(probe, req)
	suite.Equal(http.StatusOK, probe.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestToken_WrongSecret() {
	w := suite.postToken(dto.TokenRequest{ClientID: "test-client", ClientSecret: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_WrongClientID() {
	w := suite.postToken(dto.TokenRequest{ClientID: "other-client", ClientSecret: suite.clientSecret})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_MissingFields() {
	w := suite.postToken(map[string]string{"clientId": "test-client"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_UnconfiguredClientRejected() {
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         "ioa-test",
		JWTExpiryDuration: time.Hour,
		AuthRateLimit:     "100-M",
		IsProduction:      true,
	}
	router := gin.New()
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{})

	payload, _ := json.Marshal(dto.TokenRequest{ClientID: "any", ClientSecret: "any"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
