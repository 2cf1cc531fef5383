package handlers_test

import (
	"net/http"
	"testing"

	"home-services-backend/internal/api/handlers"
	"home-services-backend/internal/config"
	"home-services-backend/internal/service"
	"home-services-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	handler *handlers.AuthHandler
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@vargas.com",
		AdminPassword: "admin123",
	}
	suite.handler = handlers.NewAuthHandler(service.NewAuthService(cfg, validator.New(), nil))

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/api/login", suite.handler.Login)

	protected := suite.http.Router.Group("/api/v1")
	protected.Use(suite.handler.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/login", service.LoginRequest{
		Email:    "admin@vargas.com",
		Password: "admin123",
	})

	var resp service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Login successful", resp.Message)
	assert.NotEmpty(suite.T(), resp.Token)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/login", service.LoginRequest{
		Email:    "admin@vargas.com",
		Password: "nope",
	})

	var resp service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnauthorized, &resp)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Invalid email or password", resp.Message)
	assert.Empty(suite.T(), resp.Token)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingEmail() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"password": "admin123",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation failed")
}

func (suite *AuthHandlerTestSuite) TestProtectedRoute_MissingToken() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/whoami", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "missing bearer token")
}

func (suite *AuthHandlerTestSuite) TestProtectedRoute_InvalidToken() {
	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/whoami", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid or expired token")
}

func (suite *AuthHandlerTestSuite) TestProtectedRoute_RoundTrip() {
	login := suite.http.MakeRequest(http.MethodPost, "/api/login", service.LoginRequest{
		Email:    "admin@vargas.com",
		Password: "admin123",
	})

	var loginResp service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), login, http.StatusOK, &loginResp)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/whoami", nil, map[string]string{
		"Authorization": "Bearer " + loginResp.Token,
	})

	var whoami map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &whoami)
	assert.Equal(suite.T(), "admin@vargas.com", whoami["email"])
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
