package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/mock"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/models"
)

var (
	up   = models.HealthResponse{Status: service.StatusUp, Storage: service.StatusUp}
	down = models.HealthResponse{Status: service.StatusDown, Storage: service.StatusDown}
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockAppInfoService) {
	t.Helper()

	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	h := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
	return h, appInfo
}

func check(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ServiceName))
}

func TestProbe_FollowsStoreHealth(t *testing.T) {
	h, appInfo := newTestHandler(t)

	appInfo.EXPECT().Health(gomock.Any()).Return(up)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ServiceName))

	appInfo.EXPECT().Health(gomock.Any()).Return(down)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}

func TestWatch_StopsWithContext(t *testing.T) {
	h, appInfo := newTestHandler(t)
	appInfo.EXPECT().Health(gomock.Any()).Return(up).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Watch(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestRegister_ServesHealthOverGRPC(t *testing.T) {
	h, appInfo := newTestHandler(t)
	appInfo.EXPECT().Health(gomock.Any()).Return(up)
	h.Probe(context.Background())

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	h.Shutdown()
	resp, err = healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
