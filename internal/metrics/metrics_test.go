package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "error", Result(errors.New("boom")))
}

func TestMiddleware_ObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/probe/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.CollectAndCount(requestDuration)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe/1", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.CollectAndCount(requestDuration))
}

func TestCounters(t *testing.T) {
	c := SiteUpdates.WithLabelValues("test", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
