package apiclient

import (
	"context"
	"io"
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseUrl, bearer string) *apiClient {
	return NewAPIClient(Options{BaseUrl: baseUrl}, token.NewStaticProvider(bearer), zap.NewNop()).(*apiClient)
}

func TestAPIClient_Do(t *testing.T) {
	t.Run("Attaches Bearer And Request ID", func(t *testing.T) {
		var gotAuth, gotRequestID, gotMethod, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			w.Write([]byte(`{"message":"ok"}`))
		}))
		defer server.Close()

		ctx := utils.ContextWithRequestID(context.Background(), "req-1")
		resp, err := newTestClient(server.URL, "secret").Do(ctx, constvars.MethodPatch, "/api/specializations/1/toggle-active", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"message":"ok"}`, string(resp.Body))
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "req-1", gotRequestID)
		assert.Equal(t, "PATCH", gotMethod)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("Sends JSON Body", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "secret").Do(context.Background(), constvars.MethodPost, "/x", map[string]string{"name": "Cardiology"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Cardiology"}`, gotBody)
	})

	t.Run("No Token Sends Nothing", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "").Do(context.Background(), constvars.MethodGet, "/api/specializations/all", nil)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindNoToken, exceptions.KindOf(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("Unauthorized Is Soft Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "secret").Do(context.Background(), constvars.MethodGet, "/x", nil)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
	})

	t.Run("Error Detail Surfaced Verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Specialization not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "secret").Do(context.Background(), constvars.MethodDelete, "/x", nil)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindHTTPStatus, exceptions.KindOf(err))
		assert.Equal(t, 404, exceptions.StatusCodeOf(err))
		assert.Equal(t, "Specialization not found", exceptions.ClientMessageOf(err, ""))
	})

	t.Run("Error Message Field Used When No Detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"Specialization is in use"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "secret").Do(context.Background(), constvars.MethodDelete, "/x", nil)
		assert.Equal(t, "Specialization is in use", exceptions.ClientMessageOf(err, ""))
	})

	t.Run("Unparseable Error Falls Back To Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>boom</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "secret").Do(context.Background(), constvars.MethodGet, "/x", nil)
		assert.Equal(t, "Failed: 500", exceptions.ClientMessageOf(err, ""))
	})

	t.Run("Transport Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseUrl := server.URL
		server.Close()

		_, err := newTestClient(baseUrl, "secret").Do(context.Background(), constvars.MethodGet, "/x", nil)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindTransportFailure, exceptions.KindOf(err))
	})
}

func TestAPIClient_Health(t *testing.T) {
	t.Run("Reachable Without Bearer", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "/health", r.URL.Path)
			w.Write([]byte(`{"status":"healthy"}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL, "secret").Health(context.Background())
		require.NoError(t, err)
		assert.True(t, status.Reachable)
		assert.Empty(t, gotAuth)
	})

	t.Run("Unhealthy Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		status, err := newTestClient(server.URL, "").Health(context.Background())
		require.NoError(t, err)
		assert.False(t, status.Reachable)
		assert.Equal(t, "Failed: 503", status.Message)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseUrl := server.URL
		server.Close()

		status, err := newTestClient(baseUrl, "").Health(context.Background())
		require.Error(t, err)
		assert.False(t, status.Reachable)
	})
}

func TestErrorMessageFromBody(t *testing.T) {
	assert.Equal(t, "bad", errorMessageFromBody(400, []byte(`{"detail":"bad","message":"ignored"}`)))
	assert.Equal(t, "Failed: 422", errorMessageFromBody(422, []byte(`{"detail":[{"loc":["body"],"msg":"field required"}]}`)))
	assert.Equal(t, "Failed: 502", errorMessageFromBody(502, nil))
}
