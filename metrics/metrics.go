// Package metrics exposes Prometheus counters for the registration flow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics decouples callers from the Prometheus implementation so tests can
// pass a no-op recorder.
type Metrics interface {
	IncEventsCreated()
	IncRegistrationsAccepted()
	IncRegistrationsRejected(reason string)
	IncChargesCreated()
	IncResolutionFailures()
}

var _ Metrics = (*Service)(nil)

type Service struct {
	eventsCreated         prometheus.Counter
	registrationsAccepted prometheus.Counter
	registrationsRejected *prometheus.CounterVec
	chargesCreated        prometheus.Counter
	resolutionFailures    prometheus.Counter
}

// NewService creates and registers the collectors. If no registerer is
// provided the default one is used.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		eventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dinkpass_events_created_total",
			Help: "The total number of events created.",
		}),
		registrationsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dinkpass_registrations_accepted_total",
			Help: "The total number of registrations accepted into the ledger.",
		}),
		registrationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dinkpass_registrations_rejected_total",
			Help: "The total number of rejected registration attempts, by reason.",
		}, []string{"reason"}),
		chargesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dinkpass_charges_created_total",
			Help: "The total number of charge records created.",
		}),
		resolutionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dinkpass_name_resolution_failures_total",
			Help: "The total number of registration attempts with an unresolvable player identifier.",
		}),
	}

	reg.MustRegister(
		s.eventsCreated,
		s.registrationsAccepted,
		s.registrationsRejected,
		s.chargesCreated,
		s.resolutionFailures,
	)
	return s
}

// NewHandler returns an http.Handler for the given Gatherer, defaulting to
// the global one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

func (s *Service) IncEventsCreated()         { s.eventsCreated.Inc() }
func (s *Service) IncRegistrationsAccepted() { s.registrationsAccepted.Inc() }
func (s *Service) IncRegistrationsRejected(reason string) {
	s.registrationsRejected.WithLabelValues(reason).Inc()
}
func (s *Service) IncChargesCreated()     { s.chargesCreated.Inc() }
func (s *Service) IncResolutionFailures() { s.resolutionFailures.Inc() }

// Noop discards all observations. Used in tests.
type Noop struct{}

var _ Metrics = Noop{}

func (Noop) IncEventsCreated()               {}
func (Noop) IncRegistrationsAccepted()       {}
func (Noop) IncRegistrationsRejected(string) {}
func (Noop) IncChargesCreated()              {}
func (Noop) IncResolutionFailures()          {}
