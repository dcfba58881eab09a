package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ggpradas-dev/blog-project/internal/mocks"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("reports healthy when both backends respond", func(t *testing.T) {
		mockImages := mocks.NewMockImageStorage(t)
		mockImages.EXPECT().Exists(mock.Anything, "healthcheck").Return(false, nil)

		router := healthRouter(NewHealthHandler(&fakePinger{}, mockImages))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
		assert.Equal(t, "healthy", response.Services["storage"])
	})

	t.Run("reports unhealthy database", func(t *testing.T) {
		mockImages := mocks.NewMockImageStorage(t)
		mockImages.EXPECT().Exists(mock.Anything, "healthcheck").Return(false, nil)

		router := healthRouter(NewHealthHandler(&fakePinger{err: errors.New("db down")}, mockImages))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "unhealthy", response.Services["database"])
		assert.Equal(t, "healthy", response.Services["storage"])
	})

	t.Run("reports unhealthy storage", func(t *testing.T) {
		mockImages := mocks.NewMockImageStorage(t)
		mockImages.EXPECT().
			Exists(mock.Anything, "healthcheck").
			Return(false, errors.New("storage unreachable"))

		router := healthRouter(NewHealthHandler(&fakePinger{}, mockImages))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Services["storage"])
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("ready when both backends respond", func(t *testing.T) {
		mockImages := mocks.NewMockImageStorage(t)
		mockImages.EXPECT().Exists(mock.Anything, "healthcheck").Return(false, nil)

		router := healthRouter(NewHealthHandler(&fakePinger{}, mockImages))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready when the database is down", func(t *testing.T) {
		mockImages := mocks.NewMockImageStorage(t)

		router := healthRouter(NewHealthHandler(&fakePinger{err: errors.New("db down")}, mockImages))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHealthHandler_Live(t *testing.T) {
	mockImages := mocks.NewMockImageStorage(t)

	router := healthRouter(NewHealthHandler(&fakePinger{}, mockImages))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
