package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = RequestIDFrom(c)
		return c.NoContent(http.StatusOK)
	}, RequestID())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatalf("expected generated request id")
	}
	if got := rec.Header().Get(HeaderRequestID); got != seen {
		t.Fatalf("expected header %q, got %q", seen, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if seen != "req-1" {
		t.Fatalf("expected client request id to be kept, got %q", seen)
	}
}

func TestRecoveryAnswersJSONForAPI(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), Recovery())
	e.GET("/api/boom", func(c echo.Context) error { panic("boom") })
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		t.Fatalf("expected JSON body, got %q", ct)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "Internal server error" {
		t.Fatalf("expected plain text 500, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestLoggerReportsHTTPErrorStatus(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), RequestLogger())
	e.GET("/models/:resource", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "unknown resource")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 to pass through the logger, got %d", rec.Code)
	}
}
