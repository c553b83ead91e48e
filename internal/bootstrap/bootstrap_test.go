package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"am-hris/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNewLogger_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hris.log")

	logger, err := NewLogger(config.LogConfig{
		Level:     "debug",
		Format:    "console",
		File:      path,
		MaxSizeMB: 1,
	})
	require.NoError(t, err)

	logger.Info("clock in recorded", zap.String("user_id", "u-1"))
	_ = logger.Sync()

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"msg":"clock in recorded"`)
	assert.Contains(t, string(body), `"user_id":"u-1"`)
}

func TestSetupTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown := SetupTracing(context.Background(), config.OtelConfig{}, zap.NewNop())
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	srv := NewHTTPServer(r, config.ServerConfig{Port: 3001, ReadTimeout: time.Second})
	assert.Equal(t, ":3001", srv.Addr)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
