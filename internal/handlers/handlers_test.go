package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/jcallahan/flock-backend/internal/router"
	"github.com/jcallahan/flock-backend/pkg/config"
	"github.com/jcallahan/flock-backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// newTestServer wires the full application against an in-memory database so
// tests exercise routing, validation, auth middleware and handlers together.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = httperr.Handler(zerolog.Nop())

	cfg := &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}
	require.NoError(t, router.SetupRoutes(e, db, cfg, zerolog.Nop()))

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID uint `json:"id"`
	} `json:"user"`
}

func registerUser(t *testing.T, e *echo.Echo, userName, email string) authResponse {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/users", "", map[string]interface{}{
		"userName": userName,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.User.ID)
	require.NotEmpty(t, resp.Token)
	return resp
}

type relationResponse struct {
	User struct {
		ID        uint                 `json:"id"`
		UserName  string               `json:"userName"`
		Followers []models.UserSummary `json:"followers"`
		Following []models.UserSummary `json:"following"`
	} `json:"user"`
}

func listFollowing(t *testing.T, e *echo.Echo, path string) relationResponse {
	t.Helper()

	rec := doJSON(t, e, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp relationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
