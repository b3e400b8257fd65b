package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
)

const (
	ResultOK          = "ok"
	ResultFailed      = "failed"
	ResultUnavailable = "unavailable"
)

// Service holds simulator and api collectors in its own registry.
type Service struct {
	registry *prometheus.Registry

	ticks         prometheus.Counter
	skippedTicks  prometheus.Counter
	tickDuration  prometheus.Histogram
	brews         *prometheus.CounterVec
	publishes     *prometheus.CounterVec
	sinkWrites    *prometheus.CounterVec
	alerts        *prometheus.CounterVec
	authDecisions *prometheus.CounterVec
	liveClients   prometheus.Gauge
}

func NewService() *Service {
	namespace := "coffee_fleet"
	s := &Service{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulator_ticks_total",
			Help:      "Simulation ticks processed.",
		}),
		skippedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulator_skipped_ticks_total",
			Help:      "Simulation ticks skipped because broker was unreachable.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulator_tick_duration_seconds",
			Help:      "Time spent processing one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		brews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_brews_total",
			Help:      "Brewed recipes by type.",
		}, []string{"brew_type"}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "telemetry_publishes_total",
			Help:      "Telemetry publish attempts by result.",
		}, []string{"result"}),
		sinkWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_writes_total",
			Help:      "Analytics sink writes by result.",
		}, []string{"result"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_alerts_total",
			Help:      "Raised machine alerts by type.",
		}, []string{"alert_type"}),
		authDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_decisions_total",
			Help:      "Facility authorization decisions.",
		}, []string{"decision", "reason"}),
		liveClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_clients",
			Help:      "Connected live stream clients.",
		}),
	}

	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		s.ticks,
		s.skippedTicks,
		s.tickDuration,
		s.brews,
		s.publishes,
		s.sinkWrites,
		s.alerts,
		s.authDecisions,
		s.liveClients,
	)

	return s
}

func (s *Service) IncTick() {
	s.ticks.Inc()
}

func (s *Service) IncSkippedTick() {
	s.skippedTicks.Inc()
}

func (s *Service) ObserveTickDuration(duration time.Duration) {
	s.tickDuration.Observe(duration.Seconds())
}

func (s *Service) IncBrew(brewType string) {
	s.brews.WithLabelValues(brewType).Inc()
}

func (s *Service) IncPublish(result string) {
	s.publishes.WithLabelValues(result).Inc()
}

func (s *Service) IncSinkWrite(result string) {
	s.sinkWrites.WithLabelValues(result).Inc()
}

func (s *Service) IncAlert(alertType string) {
	s.alerts.WithLabelValues(alertType).Inc()
}

func (s *Service) IncAuthzDecision(decision, reason string) {
	s.authDecisions.WithLabelValues(decision, reason).Inc()
}

func (s *Service) SetLiveClients(count int) {
	s.liveClients.Set(float64(count))
}

// Registry exposes collectors for tests.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves registry in prometheus text format.
func (s *Service) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(s.registry, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		Registry:          s.registry,
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
		Timeout:           constants.DefaultHTTPReadTimeout,
	}))
}
