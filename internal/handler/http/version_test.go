package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	h := NewHandler(&service.Services{AppInfoService: &fakeAppInfo{version: "1.2.3"}}, "", logger.Nop())

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	rec := serve(newTestRouter(nil, nil), http.MethodGet, "/api/version/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0", rec.Body.String())
}
