package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Logger(), Metrics())
	r.GET("/videos/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := newEngine()
	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/videos/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	r := newEngine()
	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecoveryLogsAndReturns500(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	defer logger.Replace(zap.New(core))()

	r := newEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"InternalServerError"`)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}
