package webserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadhya/eduverse/config"
)

func testConfig() config.WebConfig {
	return config.WebConfig{
		Host:         "127.0.0.1",
		Port:         0,
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
	}
}

func serve(s *WebServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestWebServer_CORS(t *testing.T) {
	s := NewWebServer(testConfig())
	s.ApiGET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	s.Echo().GET("/about", func(c echo.Context) error { return c.String(http.StatusOK, "about") })

	t.Run("Should allow configured origins on api paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		rec := serve(s, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("Should answer preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:8080")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type, X-Custom")
		rec := serve(s, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:8080", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
		assert.Equal(t, "Content-Type, X-Custom", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	})

	t.Run("Should reject unknown origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		rec := serve(s, req)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("Should not apply to non-api paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		rec := serve(s, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestWebServer_SinglePageFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>spa</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	cfg := testConfig()
	cfg.StaticDir = dir
	s := NewWebServer(cfg)
	s.ApiGET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	t.Run("Should serve assets", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/app.js", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "console.log(1)", rec.Body.String())
	})

	t.Run("Should forward client routes to index.html", func(t *testing.T) {
		for _, p := range []string{"/", "/products", "/services/3"} {
			rec := serve(s, httptest.NewRequest(http.MethodGet, p, nil))
			assert.Equal(t, http.StatusOK, rec.Code, p)
			assert.Contains(t, rec.Body.String(), "spa", p)
		}
	})

	t.Run("Should keep api misses as json 404", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})
}

func TestWebServer_ErrorHandler(t *testing.T) {
	s := NewWebServer(testConfig())
	s.ApiGET("/boom", func(c echo.Context) error { return errors.New("database is down") })
	s.ApiGET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	s.ApiGET("/panic", func(c echo.Context) error { panic("unexpected") })

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/api/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"message":"short and stout"}`, rec.Body.String())

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestJSONSerializer(t *testing.T) {
	s := NewWebServer(testConfig())
	type payload struct {
		Name string `json:"name"`
	}
	s.ApiPOST("/echo", func(c echo.Context) error {
		var p payload
		if err := c.Bind(&p); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"name":"Aadhya"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(s, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Aadhya"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = serve(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidator_FieldErrors(t *testing.T) {
	type form struct {
		Name  string `json:"name" validate:"required,max=5"`
		Email string `json:"email" validate:"required,email"`
	}
	v := NewValidator()

	assert.NoError(t, v.Validate(form{Name: "Ravi", Email: "ravi@example.com"}))

	errs := FieldErrors(v.Validate(form{Name: "Ravishankar", Email: "not-an-email"}))
	assert.Equal(t, map[string]string{
		"name":  "Name must be at most 5 characters",
		"email": "Please provide a valid email address",
	}, errs)

	errs = FieldErrors(v.Validate(form{}))
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])

	assert.Nil(t, FieldErrors(errors.New("plain")))

	type note struct {
		Text string `json:"text" validate:"required,notblank"`
	}
	errs = FieldErrors(v.Validate(note{Text: " \t\n"}))
	assert.Equal(t, map[string]string{"text": "Text is required"}, errs)
	assert.NoError(t, v.Validate(note{Text: " hi "}))
}
