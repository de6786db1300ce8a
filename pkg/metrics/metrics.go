package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов Prometheus для шлюза
type Metrics struct {
	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	tokenRefreshTotal       *prometheus.CounterVec
	dbQueryDuration         *prometheus.HistogramVec
	cacheLookupsTotal       *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре (используется promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the gateway",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests handled by the gateway",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		upstreamRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "clinic_api_requests_total",
			Help:        "Total number of requests sent to the clinic backend",
			ConstLabels: constLabels,
		}, []string{"endpoint", "status"}),
		upstreamRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "clinic_api_request_duration_seconds",
			Help:        "Duration of requests sent to the clinic backend",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"endpoint"}),
		tokenRefreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "clinic_api_token_refresh_total",
			Help:        "Token refresh attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of credential store queries",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		cacheLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "service_catalog_cache_lookups_total",
			Help:        "Service catalog cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// ObserveHTTP учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream учитывает запрос к бэкенду клиники
// status = 0 означает, что ответ не был получен
func (m *Metrics) ObserveUpstream(endpoint string, status int, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// IncTokenRefresh учитывает попытку обновления токена (success, failure)
func (m *Metrics) IncTokenRefresh(outcome string) {
	m.tokenRefreshTotal.WithLabelValues(outcome).Inc()
}

// ObserveQuery учитывает запрос к базе данных (operation: exec, query, query_row)
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// IncCacheLookup учитывает обращение к кэшу каталога услуг (hit, miss, error)
func (m *Metrics) IncCacheLookup(result string) {
	m.cacheLookupsTotal.WithLabelValues(result).Inc()
}
