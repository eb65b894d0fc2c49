// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the metrics surface used by the usecase layer.
type Collector interface {
	RecordQuizStarted()
	RecordQuizCompleted(winner string)
	RecordDirectorySearch()
	RecordPreferenceCreated()
	RecordPaymentCallback(outcome string)
	RecordAppointmentTransition(status string)
}

// PrometheusCollector implements Collector on a Prometheus registry.
type PrometheusCollector struct {
	quizStarted      prometheus.Counter
	quizCompleted    *prometheus.CounterVec
	directorySearch  prometheus.Counter
	prefCreated      prometheus.Counter
	paymentCallback  *prometheus.CounterVec
	appointmentMoves *prometheus.CounterVec
}

// NewCollector registers the application metrics on the given registry.
func NewCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		quizStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "encontrapsi_quiz_started_total",
			Help: "Quiz attempts started",
		}),
		quizCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encontrapsi_quiz_completed_total",
			Help: "Quiz attempts completed, by winning approach",
		}, []string{"approach"}),
		directorySearch: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "encontrapsi_directory_searches_total",
			Help: "Directory filter queries served",
		}),
		prefCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "encontrapsi_payment_preferences_total",
			Help: "Payment preferences created",
		}),
		paymentCallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encontrapsi_payment_callbacks_total",
			Help: "Payment return callbacks, by outcome",
		}, []string{"outcome"}),
		appointmentMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encontrapsi_appointment_transitions_total",
			Help: "Appointment status transitions, by target status",
		}, []string{"status"}),
	}

	reg.MustRegister(
		c.quizStarted,
		c.quizCompleted,
		c.directorySearch,
		c.prefCreated,
		c.paymentCallback,
		c.appointmentMoves,
	)

	return c
}

func (c *PrometheusCollector) RecordQuizStarted() {
	c.quizStarted.Inc()
}

func (c *PrometheusCollector) RecordQuizCompleted(winner string) {
	c.quizCompleted.WithLabelValues(winner).Inc()
}

func (c *PrometheusCollector) RecordDirectorySearch() {
	c.directorySearch.Inc()
}

func (c *PrometheusCollector) RecordPreferenceCreated() {
	c.prefCreated.Inc()
}

func (c *PrometheusCollector) RecordPaymentCallback(outcome string) {
	c.paymentCallback.WithLabelValues(outcome).Inc()
}

func (c *PrometheusCollector) RecordAppointmentTransition(status string) {
	c.appointmentMoves.WithLabelValues(status).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
