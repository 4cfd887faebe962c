// Package metrics exposes Prometheus collectors for person operations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "personapi/internal/domain/errors"
	"personapi/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes recorded on person_operations_total.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeFault    = "fault"
	OutcomeError    = "error"
)

// Recorder owns a private registry and the collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Recorder backed by a fresh registry that also carries the Go runtime
// and process collectors.
func New() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	rec := &Recorder{
		registry: registry,
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "person_operations_total",
			Help: "Person operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "person_operation_duration_seconds",
			Help:    "Latency of person operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		rec.operationsTotal,
		rec.operationDuration,
		rec.httpRequestsTotal,
		rec.httpRequestDuration,
	} {
		if err := registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return rec, nil
}

// Registry returns the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveOperation records one completed person operation.
func (r *Recorder) ObserveOperation(operation string, start time.Time, err error) {
	r.operationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	r.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Outcome classifies the result of a person operation.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domainerrors.ErrPersonNotFound):
		return OutcomeNotFound
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return OutcomeInvalid
	case domainerrors.IsStorageFault(err):
		return OutcomeFault
	default:
		return OutcomeError
	}
}

// EchoMiddleware counts requests per registered route template, so ids never become labels.
func (r *Recorder) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
					status = appErr.HTTPCode()
				} else if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
					status = httpErr.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			r.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			r.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
