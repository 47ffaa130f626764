package specializations

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/app/services/shared/apiclient"
	"konsulin-admin-console/internal/app/services/shared/locker"
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type stubResponse struct {
	status int
	body   string
}

// fakeBackend answers by "METHOD path" and counts what it was asked.
type fakeBackend struct {
	mu        sync.Mutex
	responses map[string]stubResponse
	calls     map[string]int
	total     int
	server    *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		responses: map[string]stubResponse{},
		calls:     map[string]int{},
	}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.calls[key]++
		b.total++
		resp, ok := b.responses[key]
		b.mu.Unlock()

		if !ok {
			resp = stubResponse{status: http.StatusNotFound, body: `{"detail":"no stub"}`}
		}
		w.WriteHeader(resp.status)
		w.Write([]byte(resp.body))
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) on(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[method+" "+path] = stubResponse{status: status, body: body}
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *fakeBackend) totalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

func newSpecializationAPI(baseUrl, bearer string) contracts.SpecializationAPIClient {
	client := apiclient.NewAPIClient(apiclient.Options{BaseUrl: baseUrl, Timeout: 2 * time.Second}, token.NewStaticProvider(bearer), zap.NewNop())
	return NewSpecializationAPIClient(client, zap.NewNop())
}

type testUsecase struct {
	usecase contracts.SpecializationUsecase
	locker  contracts.LockerService
	tokens  contracts.TokenProvider
}

func newTestUsecase(baseUrl, bearer string) testUsecase {
	tokens := token.NewStaticProvider(bearer)
	lockService := locker.NewMemoryLocker(zap.NewNop())
	client := apiclient.NewAPIClient(apiclient.Options{BaseUrl: baseUrl, Timeout: 2 * time.Second}, tokens, zap.NewNop())
	uc := NewSpecializationUsecase(
		NewSpecializationAPIClient(client, zap.NewNop()),
		tokens,
		token.NewJWTInspector(),
		lockService,
		5*time.Second,
		zap.NewNop(),
	)
	return testUsecase{usecase: uc, locker: lockService, tokens: tokens}
}

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) FetchAll(ctx context.Context) *responses.Notice {
	args := m.Called(ctx)
	notice, _ := args.Get(0).(*responses.Notice)
	return notice
}
