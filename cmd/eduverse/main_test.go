package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadhya/eduverse/config"
	"github.com/aadhya/eduverse/internal/app"
	"github.com/aadhya/eduverse/internal/storetest"
)

func newTestApp(t *testing.T) *app.Application {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.Web.Metrics = false
	a := app.NewApplication(cfg)
	a.OverrideDB(storetest.NewDB(t))
	return a
}

func get(t *testing.T, ac app.AppContext, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newServer(ac).Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeWiring(t *testing.T) {
	a := newTestApp(t)

	t.Run("Should seed and serve the catalogue", func(t *testing.T) {
		require.NoError(t, seed(context.Background(), a))

		rec := get(t, a, "/api/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","tables":{"company_info":1,"products":3,"services":6}}`, rec.Body.String())

		rec = get(t, a, "/api/company")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Aadhya Eduverse Private Limited")
	})

	t.Run("Should empty every table on reset", func(t *testing.T) {
		require.NoError(t, resetDatabase(a))

		rec := get(t, a, "/api/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","tables":{"company_info":0,"products":0,"services":0}}`, rec.Body.String())
	})
}
