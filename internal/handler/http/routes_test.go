package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/stretchr/testify/assert"
)

// ---- Fake: AppInfoService ----

type fakeAppInfoSvc struct{}

var testServerInfo = models.ServerInfo{
	Version:       "test-version",
	Encryption:    "AES-GCM + LSB steganography",
	Authenticated: true,
	DefaultWidth:  512,
	DefaultHeight: 512,
	MaxSide:       4096,
}

func (f *fakeAppInfoSvc) GetAppVersion(_ context.Context) string {
	return testServerInfo.Version
}

func (f *fakeAppInfoSvc) GetServerInfo(_ context.Context) models.ServerInfo {
	return testServerInfo
}

// ---- Fake: ArtifactService ----

type fakeArtifactSvc struct {
	createFn func(ctx context.Context, req models.EncodeRequest) (models.Artifact, error)
	decodeFn func(ctx context.Context, req models.DecodeRequest) (models.DecodeResponse, error)
	getFn    func(ctx context.Context, id string) (models.Artifact, error)
	openFn   func(ctx context.Context, id string) (models.Artifact, []byte, error)
	listFn   func(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error)
}

func (f *fakeArtifactSvc) Create(ctx context.Context, req models.EncodeRequest) (models.Artifact, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.Artifact{}, nil
}

func (f *fakeArtifactSvc) Decode(ctx context.Context, req models.DecodeRequest) (models.DecodeResponse, error) {
	if f.decodeFn != nil {
		return f.decodeFn(ctx, req)
	}
	return models.DecodeResponse{}, nil
}

func (f *fakeArtifactSvc) Get(ctx context.Context, id string) (models.Artifact, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.Artifact{}, nil
}

func (f *fakeArtifactSvc) Open(ctx context.Context, id string) (models.Artifact, []byte, error) {
	if f.openFn != nil {
		return f.openFn(ctx, id)
	}
	return models.Artifact{}, nil, nil
}

func (f *fakeArtifactSvc) List(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []models.Artifact{}, nil
}

func (f *fakeArtifactSvc) Purge(_ context.Context, _ time.Duration) (int, error) {
	return 0, nil
}

// ---- Helper ----

func newTestHandler(t *testing.T, svc service.ArtifactService) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AppInfoService:  &fakeAppInfoSvc{},
			ArtifactService: svc,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestHandler(t, &fakeArtifactSvc{}).Init()
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		expectStatus int
	}{
		{"version", http.MethodGet, "/api/version", http.StatusOK},
		{"server info", http.MethodGet, "/api/info", http.StatusOK},
		{"list images", http.MethodGet, "/api/images", http.StatusOK},
		{"image with invalid id", http.MethodGet, "/api/images/not-a-uuid", http.StatusNotFound},
		{"encode with empty body", http.MethodPost, "/api/encode", http.StatusBadRequest},
		{"decode without multipart", http.MethodPost, "/api/decode", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
		{"wrong method on version", http.MethodPost, "/api/version", http.StatusNotFound},
		{"wrong method on encode", http.MethodGet, "/api/encode", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

func TestRoutes_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
