package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("dental-gateway", reg)

	m.ObserveHTTP("GET", "/api/v1/doctors/{doctorId}/available-blocks", 200, 10*time.Millisecond)
	m.ObserveUpstream("get_time_blocks", 401, time.Millisecond)
	m.ObserveUpstream("get_time_blocks", 200, time.Millisecond)
	m.IncTokenRefresh("success")
	m.IncCacheLookup("hit")
	m.IncCacheLookup("hit")
	m.ObserveQuery("exec", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/doctors/{doctorId}/available-blocks", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequestsTotal.WithLabelValues("get_time_blocks", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokenRefreshTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.dbQueryDuration))
}
