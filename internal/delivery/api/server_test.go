package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"personapi/config"
	"personapi/internal/delivery/api/router"
	"personapi/internal/delivery/api/router/handler"
	deliverycontext "personapi/internal/delivery/context"
	"personapi/internal/domain/entity"
	"personapi/internal/infra/metrics"
	"personapi/internal/infra/persistence/gormstore"
	"personapi/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	t    *testing.T
	echo *echo.Echo
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Storage.Driver = config.StorageDriverSQLite
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "persons.db")
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := gormstore.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, gormstore.EnsureSchema(context.Background(), db))
	t.Cleanup(func() { _ = gormstore.Close(db) })

	recorder, err := metrics.New()
	require.NoError(t, err)

	personUC := metrics.InstrumentPersonUsecase(
		impl.NewPersonService(gormstore.NewPersonRepository(db), gormstore.NewTransactionManager(db), logger),
		recorder,
	)

	e := NewEcho(cfg, logger, recorder, router.RouterParams{
		PersonHandler: handler.NewPersonHandler(handler.PersonHandlerParams{PersonUC: personUC, Logger: logger}),
		Config:        cfg,
	})

	return apiFixtures{t: t, echo: e}
}

func (f apiFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f apiFixtures) data(rec *httptest.ResponseRecorder, out any) {
	f.t.Helper()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(f.t, json.Unmarshal(env.Data, out))
}

func TestAPI_PersonLifecycle(t *testing.T) {
	fx := createTestAPI(t)

	var person entity.Person
	rec := fx.do(http.MethodPost, "/api/v1/persons/person", `{"firstName":"John","lastName":"Doe"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &person)
	assert.Equal(t, entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, person)

	rec = fx.do(http.MethodPost, "/api/v1/persons/person", `{"firstName":"Mary","lastName":"Shelly"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &person)
	assert.Equal(t, int64(2), person.ID)

	var count int64
	rec = fx.do(http.MethodGet, "/api/v1/persons/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &count)
	assert.Equal(t, int64(2), count)

	rec = fx.do(http.MethodPut, "/api/v1/persons/person/1", `{"firstName":"Jane"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &person)
	assert.Equal(t, entity.Person{ID: 1, FirstName: "Jane", LastName: "Doe"}, person)

	rec = fx.do(http.MethodDelete, "/api/v1/persons/person/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &person)
	assert.Equal(t, entity.Person{ID: 2, FirstName: "Mary", LastName: "Shelly"}, person)

	rec = fx.do(http.MethodDelete, "/api/v1/persons/person/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/persons/count", "")
	fx.data(rec, &count)
	assert.Equal(t, int64(1), count)

	var persons []entity.Person
	rec = fx.do(http.MethodGet, "/api/v1/persons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	fx.data(rec, &persons)
	assert.Equal(t, []entity.Person{{ID: 1, FirstName: "Jane", LastName: "Doe"}}, persons)
}

func TestAPI_UpdateMissingPersonLeavesStorageUntouched(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/persons/person", `{"firstName":"John","lastName":"Doe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/api/v1/persons/person/100", `{"firstName":"Nobody","lastName":"Home"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No person with the id 100 exists.")

	var persons []entity.Person
	fx.data(fx.do(http.MethodGet, "/api/v1/persons", ""), &persons)
	assert.Equal(t, []entity.Person{{ID: 1, FirstName: "John", LastName: "Doe"}}, persons)
}

func TestAPI_BatchCreate(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/persons/batch",
		`[{"firstName":"John","lastName":"Doe"},{"firstName":"Mary","lastName":"Shelly"},{"firstName":"Patrick","lastName":"Bateman"}]`)
	require.Equal(t, http.StatusOK, rec.Code)

	var persons []entity.Person
	fx.data(rec, &persons)
	require.Len(t, persons, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{persons[0].ID, persons[1].ID, persons[2].ID})
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/v1/persons", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	fx := createTestAPI(t)

	fx.do(http.MethodGet, "/api/v1/persons/person/7", "")

	rec := fx.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `person_operations_total{operation="get",outcome="not_found"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/v1/persons/person/:id",status="404"} 1`)
}

func TestAPI_BodyLimit(t *testing.T) {
	fx := createTestAPI(t)

	body := `{"firstName":"` + strings.Repeat("a", 200*1024) + `","lastName":"Doe"}`
	rec := fx.do(http.MethodPost, "/api/v1/persons/person", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
