package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricNotificationCreated = "notification_created"
	MetricMessageSent         = "message_sent"
	MetricLedgerEntryWritten  = "ledger_entry_written"
	MetricWeatherLookup       = "weather_lookup"
	MetricGamePlayed          = "game_played"
	MetricAuthEvent           = "authentication_event"
	MetricCircuitBreakerState = "circuit_breaker_state"
	MetricWeatherDuration     = "weather_lookup_duration"
	MetricLiveConnections     = "live_connections"
)

type PrometheusMetrics struct {
	notificationsTotal        *prometheus.CounterVec
	messagesSentTotal         *prometheus.CounterVec
	ledgerEntriesTotal        *prometheus.CounterVec
	weatherLookupsTotal       *prometheus.CounterVec
	weatherLookupDuration     prometheus.Histogram
	gamesPlayedTotal          *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
	circuitBreakerState       *prometheus.GaugeVec
	liveConnections           prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		notificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_created_total",
				Help: "Total number of notifications written",
			},
			[]string{"kind"},
		),
		messagesSentTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_sent_total",
				Help: "Total number of messages sent by kind (new, reply, forward)",
			},
			[]string{"kind"},
		),
		ledgerEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_written_total",
				Help: "Total number of ledger entry writes",
			},
			[]string{"operation", "category"},
		),
		weatherLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_lookups_total",
				Help: "Total number of weather lookups by outcome",
			},
			[]string{"outcome"},
		),
		weatherLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weather_lookup_duration_milliseconds",
				Help:    "Weather API call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		gamesPlayedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "games_played_total",
				Help: "Total number of game actions",
			},
			[]string{"game"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		liveConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "live_notification_connections",
				Help: "Open websocket notification streams",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricNotificationCreated:
		m.notificationsTotal.WithLabelValues(tags["kind"]).Inc()
	case MetricMessageSent:
		m.messagesSentTotal.WithLabelValues(tags["kind"]).Inc()
	case MetricLedgerEntryWritten:
		m.ledgerEntriesTotal.WithLabelValues(tags["operation"], tags["category"]).Inc()
	case MetricWeatherLookup:
		m.weatherLookupsTotal.WithLabelValues(tags["outcome"]).Inc()
	case MetricGamePlayed:
		m.gamesPlayedTotal.WithLabelValues(tags["game"]).Inc()
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricWeatherDuration:
		m.weatherLookupDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricLiveConnections:
		m.liveConnections.Set(value)
	}
}

// NoopMetrics discards everything. Used where no registry is wired.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}

func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
