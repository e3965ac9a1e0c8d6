package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	t.Run("ai outcomes", func(t *testing.T) {
		before := testutil.ToFloat64(aiRequests.WithLabelValues("ok"))
		RecordAIRequest("ok", 0.2)
		assert.Equal(t, before+1, testutil.ToFloat64(aiRequests.WithLabelValues("ok")))
	})
	t.Run("store writes", func(t *testing.T) {
		okBefore := testutil.ToFloat64(storeWrites.WithLabelValues("ok"))
		errBefore := testutil.ToFloat64(storeWrites.WithLabelValues("error"))
		RecordStoreWrite(nil)
		RecordStoreWrite(errors.New("disk full"))
		assert.Equal(t, okBefore+1, testutil.ToFloat64(storeWrites.WithLabelValues("ok")))
		assert.Equal(t, errBefore+1, testutil.ToFloat64(storeWrites.WithLabelValues("error")))
	})
	t.Run("progress gauges", func(t *testing.T) {
		SetProgress(73, 4)
		assert.Equal(t, 73.0, testutil.ToFloat64(lifeScore))
		assert.Equal(t, 4.0, testutil.ToFloat64(streak))
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordRejected("briefing")
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `lifeos_ai_rejected_total{site="briefing"}`))
}
