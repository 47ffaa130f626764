package middlewares

import (
	"konsulin-admin-console/internal/app/config"
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		Session: config.Session{TokenCookieName: "adminToken"},
	})
}

func captureToken(got *string, present *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *present = token.NewContextProvider().GetToken(r.Context())
	})
}

func TestBearerToken(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Cookie", func(t *testing.T) {
		var got string
		var present bool
		req := httptest.NewRequest(http.MethodGet, "/admin/specializations", nil)
		req.AddCookie(&http.Cookie{Name: "adminToken", Value: "from-cookie"})
		req.Header.Set("Authorization", "Bearer from-header")

		m.BearerToken(captureToken(&got, &present)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, present)
		assert.Equal(t, "from-cookie", got)
	})

	t.Run("Authorization Header", func(t *testing.T) {
		var got string
		var present bool
		req := httptest.NewRequest(http.MethodGet, "/admin/specializations", nil)
		req.Header.Set("Authorization", "Bearer from-header")

		m.BearerToken(captureToken(&got, &present)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, present)
		assert.Equal(t, "from-header", got)
	})

	t.Run("Missing Token Passes Through", func(t *testing.T) {
		var got string
		var present bool
		req := httptest.NewRequest(http.MethodGet, "/admin/specializations", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()

		m.BearerToken(captureToken(&got, &present)).ServeHTTP(rec, req)

		assert.False(t, present)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	t.Run("Keeps Client ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-1", seen)
		assert.Equal(t, "client-1", rec.Header().Get("X-Request-ID"))
	})

	t.Run("Generates When Absent", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"there is something wrong with the application"}`, rec.Body.String())
}

func TestLogging(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
