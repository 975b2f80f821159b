package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-books-api/internal/i18n"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/mock"
	"github.com/MKhiriev/go-books-api/internal/ratelimit"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/models"
)

const testToken = "good-token"

var testIdentity = models.Identity{UserID: 1, Username: "alice", Email: "alice@example.com", Enabled: true}

var testCatalog = sync.OnceValue(func() *i18n.Catalog {
	catalog, err := i18n.NewCatalog("en", []string{"en", "fr", "es", "ar"})
	if err != nil {
		panic(err)
	}
	return catalog
})

// newTestHandler returns a Handler with a nop logger and the embedded
// message catalog, for middleware tests that need no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), translator: testCatalog()}
}

type handlerMocks struct {
	auth    *mock.MockAuthService
	books   *mock.MockBookService
	appInfo *mock.MockAppInfoService
	limiter *mock.MockLimiter
}

// newMockedHandler wires gomock services into a Handler. The limiter admits
// everything and testToken authenticates as testIdentity unless a test sets
// stricter expectations first.
func newMockedHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		books:   mock.NewMockBookService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		limiter: mock.NewMockLimiter(ctrl),
	}

	services := &service.Services{
		AuthService:    m.auth,
		BookService:    m.books,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, m.limiter, testCatalog(), logger.Nop()), m
}

func (m handlerMocks) admitAll() {
	m.limiter.EXPECT().Admit(gomock.Any()).
		Return(ratelimit.Decision{Allowed: true, Remaining: 99, Limit: 100}, nil).
		AnyTimes()
}

func (m handlerMocks) acceptTestToken() {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testIdentity, nil).AnyTimes()
}

// serve sends one request through the full router. headers is a flat list
// of name/value pairs.
func serve(t *testing.T, router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be name/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

// decodeEnvelope parses the response body as an APIResponse with raw data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.APIResponse[json.RawMessage] {
	t.Helper()

	var envelope models.APIResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return envelope
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope models.APIResponse[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return envelope.Data
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{}
	limiter := mock.NewMockLimiter(ctrl)
	log := logger.Nop()

	h := NewHandler(services, limiter, testCatalog(), log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, limiter, h.limiter)
	assert.Equal(t, testCatalog(), h.translator)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, testCatalog(), logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, testCatalog(), logger.Nop())

	assert.NotSame(t, h1, h2)
}
