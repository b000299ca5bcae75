package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_MapsAppError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_MapsWrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	err := domainerrors.ErrValidationFailed.WrapMessage("quantity must be greater than zero")
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestErrorMiddleware_MapsEchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad input")
}

func TestErrorMiddleware_DefaultsToInternalError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("database on fire"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Raw internals stay out of the response body.
	assert.NotContains(t, rec.Body.String(), "database on fire")
}
