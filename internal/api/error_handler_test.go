package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

func failWith(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestErrorHandlerDomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{domain.ErrUsernameTaken, http.StatusConflict, "CONFLICT", "Username already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"},
		{domain.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND", "Product not found"},
		{domain.ErrEmptyProductPatch, http.StatusBadRequest, "BAD_REQUEST", "At least one field is required"},
	}

	for _, tc := range cases {
		rec, body := failWith(t, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
		if body.Code != tc.code {
			t.Errorf("%v: code = %q, want %q", tc.err, body.Code, tc.code)
		}
		if body.Message != tc.message {
			t.Errorf("%v: message = %q, want %q", tc.err, body.Message, tc.message)
		}
	}
}

func TestErrorHandlerHTTPErrorPassthrough(t *testing.T) {
	rec, body := failWith(t, echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Code != "TOO_MANY_REQUESTS" || body.Message != "Rate limit exceeded" {
		t.Errorf("body = %+v", body)
	}
}

func TestErrorHandlerUnexpectedError(t *testing.T) {
	rec, body := failWith(t, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Message != "Internal server error" {
		t.Errorf("message = %q, internal details may have leaked", body.Message)
	}
}

func TestErrorHandlerIncludesRequestID(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return domain.ErrProductNotFound })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "req-123")
	e.ServeHTTP(rec, req)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.RequestID != "req-123" {
		t.Errorf("requestId = %q", body.RequestID)
	}
}

func TestStatusCode(t *testing.T) {
	cases := map[int]string{
		http.StatusConflict:            "CONFLICT",
		http.StatusTooManyRequests:     "TOO_MANY_REQUESTS",
		http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
		999:                            "UNKNOWN_ERROR",
	}
	for status, want := range cases {
		if got := statusCode(status); got != want {
			t.Errorf("statusCode(%d) = %q, want %q", status, got, want)
		}
	}
}
