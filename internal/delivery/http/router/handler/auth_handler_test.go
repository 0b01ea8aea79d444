package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/infra/metrics"
	mockUC "rently/internal/mocks/usecase"
	"rently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const registerBody = `{
	"firstName": "John",
	"lastName": "Doe",
	"email": "john@example.com",
	"password": "password123",
	"role": "tenant",
	"privacyConsent": true
}`

type authHandlerFixtures struct {
	echo    *echo.Echo
	authUC  *mockUC.MockAuthUsecase
	metrics *metrics.Metrics
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	authUC := mockUC.NewMockAuthUsecase(t)
	m := metrics.New()

	h := NewAuthHandler(AuthHandlerParams{
		AuthUC:  authUC,
		Metrics: m,
		Logger:  newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return authHandlerFixtures{echo: e, authUC: authUC, metrics: m}
}

func testView() *usecase.AccountView {
	return &usecase.AccountView{
		ID:        uuid.MustParse("0190f3a4-7b1e-7c3a-9d2e-1f2a3b4c5d6e"),
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      entity.RoleTenant,
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:          "john@example.com",
		Password:       "password123",
		FirstName:      "John",
		LastName:       "Doe",
		Role:           entity.RoleTenant,
		PrivacyConsent: true,
	}).Return(&usecase.RegisterOutput{Message: "User successfully registered", User: testView()}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/register", registerBody, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "User successfully registered",
		"user": {
			"id": "0190f3a4-7b1e-7c3a-9d2e-1f2a3b4c5d6e",
			"email": "john@example.com",
			"firstName": "John",
			"lastName": "Doe",
			"role": "tenant"
		}
	}`, string(env.Data))
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="register",outcome="success"} 1`)
}

func TestAuthHandler_Register_LongPasswordReachesUsecase(t *testing.T) {
	fx := createTestAuthHandler(t)
	password := strings.Repeat("é", 50)

	fx.authUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Password == password
		})).
		Return(&usecase.RegisterOutput{Message: "User successfully registered", User: testView()}, nil)

	body := `{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"` + password + `","role":"tenant","privacyConsent":true}`
	rec, _ := doRequest(t, fx.echo, http.MethodPost, "/auth/register", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "register"))

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/register", registerBody, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_ACCOUNT", env.Error.Code)
	assert.Equal(t, "User with this email already exists", env.Error.Message)
	assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="register",outcome="duplicate"} 1`)
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "privacy not accepted", body: `{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"password123","role":"tenant","privacyConsent":false}`},
		{name: "unknown role", body: `{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"password123","role":"owner","privacyConsent":true}`},
		{name: "missing password", body: `{"firstName":"John","lastName":"Doe","email":"john@example.com","role":"tenant","privacyConsent":true}`},
		{name: "malformed email", body: `{"firstName":"John","lastName":"Doe","email":"john","password":"password123","role":"tenant","privacyConsent":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthHandler(t)

			rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/register", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.NotNil(t, env.Error.Details)
			assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="register",outcome="invalid_input"} 1`)
		})
	}
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/register", `{"email":`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAuthHandler_Login_OK(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "john@example.com", Password: "password123"}).
		Return(&usecase.LoginOutput{
			Message:     "Login successful",
			AccessToken: "signed.jwt.token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			User:        testView(),
		}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Message     string               `json:"message"`
		AccessToken string               `json:"access_token"`
		User        *usecase.AccountView `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Login successful", data.Message)
	assert.Equal(t, "signed.jwt.token", data.AccessToken)
	assert.Equal(t, testView(), data.User)
	assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="login",outcome="success"} 1`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"x"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", env.Error.Message)
	assert.Nil(t, env.Error.Details)
	assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="login",outcome="invalid_credentials"} 1`)
}

func TestAuthHandler_Login_StorageErrorHidesCause(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.NewStorageError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "find account by email"))

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORAGE_ERROR", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, scrapeMetrics(t, fx.metrics), `rently_auth_attempts_total{operation="login",outcome="error"} 1`)
}

func TestAuthHandler_WorksWithoutMetrics(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Message: "Login successful", User: testView()}, nil)

	rec, _ := doRequest(t, e, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
