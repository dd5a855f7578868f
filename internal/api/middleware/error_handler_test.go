package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
)

func errorRouter(err error) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func TestErrorHandler_AppError(t *testing.T) {
	r := errorRouter(apperrors.ErrAccountLocked())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeAccountLocked)
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	appErr := apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request").
		WithFieldErrors([]apperrors.FieldError{{Field: "email", Code: "invalid"}})
	r := errorRouter(appErr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "field_errors")
	assert.Contains(t, w.Body.String(), "email")
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	r := errorRouter(errors.New("pq: connection refused to 10.0.3.7"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	// Internal detail stays server-side.
	assert.NotContains(t, w.Body.String(), "10.0.3.7")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("inbound header honored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "rid-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "rid-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "rid-42", w.Body.String())
	})
}
