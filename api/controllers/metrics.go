package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "courtside"

// Metrics holds the collectors exposed on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	bracketsBuilt        prometheus.Counter
	resultsRecorded      *prometheus.CounterVec
	tournamentsCompleted prometheus.Counter
	snapshotOperations   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry())
}

func NewMetricsWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Registry: registry,
		bracketsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "brackets_built_total",
			Help:      "Brackets laid out for new or regenerated tournaments.",
		}),
		resultsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "match_results_total",
			Help:      "Match result submissions by outcome.",
		}, []string{"outcome"}),
		tournamentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tournaments_completed_total",
			Help:      "Tournaments whose final was decided.",
		}),
		snapshotOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "snapshot_operations_total",
			Help:      "Snapshot exports, imports and backups by result.",
		}, []string{"operation", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.bracketsBuilt,
		m.resultsRecorded,
		m.tournamentsCompleted,
		m.snapshotOperations,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) bracketBuilt() {
	if m != nil {
		m.bracketsBuilt.Inc()
	}
}

func (m *Metrics) resultRecorded(outcome string) {
	if m != nil {
		m.resultsRecorded.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) tournamentCompleted() {
	if m != nil {
		m.tournamentsCompleted.Inc()
	}
}

func (m *Metrics) snapshotOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.snapshotOperations.WithLabelValues(operation, result).Inc()
}

// Health reports that the process is up and the database answers.
func (s *Server) Health(c *gin.Context) {
	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
