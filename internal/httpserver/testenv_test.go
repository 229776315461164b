package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/jewelry_store/internal/httpserver"
	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/Skotchmaster/jewelry_store/internal/repo"
	"github.com/Skotchmaster/jewelry_store/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))

	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		Production:     true,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) request(method, path string, body any, sessionID string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set("x-session-id", sessionID)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	env := decodeEnvelope(t, rec)
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func (env *testEnv) createProduct(id string, price float64, inStock bool) models.Product {
	env.T.Helper()

	p := models.Product{
		ID:          id,
		Name:        "test " + id,
		Description: "test description",
		Price:       price,
		Image:       "https://images.example.com/" + id + ".jpg",
		Category:    "Rings",
		InStock:     inStock,
	}
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}
